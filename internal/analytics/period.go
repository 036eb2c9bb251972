package analytics

import "time"

// Period is a named reporting window granularity.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod maps a request parameter to a Period. Unrecognized values fall
// back to month rather than erroring, matching what the mobile client expects.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodWeek:
		return PeriodWeek
	case PeriodYear:
		return PeriodYear
	default:
		return PeriodMonth
	}
}

// PeriodRange pairs a current reporting window with the immediately preceding
// one of the same length.
type PeriodRange struct {
	Period        Period
	CurrentStart  time.Time
	CurrentEnd    time.Time
	PreviousStart time.Time
	PreviousEnd   time.Time
}

// ResolvePeriod computes the current and previous windows for a period
// relative to ref. Month and year are calendar-aligned; week is a rolling
// seven-day window ending at ref.
func ResolvePeriod(p Period, ref time.Time) PeriodRange {
	loc := ref.Location()

	switch p {
	case PeriodWeek:
		start := ref.AddDate(0, 0, -7)

		return PeriodRange{
			Period:        PeriodWeek,
			CurrentStart:  start,
			CurrentEnd:    ref,
			PreviousStart: start.AddDate(0, 0, -7),
			PreviousEnd:   start,
		}
	case PeriodYear:
		return PeriodRange{
			Period:        PeriodYear,
			CurrentStart:  time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, loc),
			CurrentEnd:    time.Date(ref.Year(), time.December, 31, 0, 0, 0, 0, loc),
			PreviousStart: time.Date(ref.Year()-1, time.January, 1, 0, 0, 0, 0, loc),
			PreviousEnd:   time.Date(ref.Year()-1, time.December, 31, 0, 0, 0, 0, loc),
		}
	default:
		// time.Date normalizes day 0 to the last day of the prior month and
		// month 0 to December of the prior year, so January rolls over cleanly.
		year, month := ref.Year(), ref.Month()

		return PeriodRange{
			Period:        PeriodMonth,
			CurrentStart:  time.Date(year, month, 1, 0, 0, 0, 0, loc),
			CurrentEnd:    time.Date(year, month+1, 0, 0, 0, 0, 0, loc),
			PreviousStart: time.Date(year, month-1, 1, 0, 0, 0, 0, loc),
			PreviousEnd:   time.Date(year, month, 0, 0, 0, 0, 0, loc),
		}
	}
}
