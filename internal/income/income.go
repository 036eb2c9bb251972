package income

import (
	"time"

	"github.com/google/uuid"
)

// Frequency describes how often an income source pays out.
type Frequency string

const (
	FrequencyOneTime   Frequency = "one-time"
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiWeekly  Frequency = "bi-weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// monthlyMultipliers normalizes an amount to a per-month rate.
// One-time income contributes nothing to recurring totals.
var monthlyMultipliers = map[Frequency]float64{
	FrequencyDaily:     30,
	FrequencyWeekly:    4.33,
	FrequencyBiWeekly:  2.17,
	FrequencyMonthly:   1,
	FrequencyQuarterly: 1.0 / 3,
	FrequencyYearly:    1.0 / 12,
	FrequencyOneTime:   0,
}

var annualMultipliers = map[Frequency]float64{
	FrequencyDaily:     365,
	FrequencyWeekly:    52,
	FrequencyBiWeekly:  26,
	FrequencyMonthly:   12,
	FrequencyQuarterly: 4,
	FrequencyYearly:    1,
	FrequencyOneTime:   0,
}

// Income represents a recurring or one-time income source.
type Income struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Source           string
	Amount           float64
	Frequency        Frequency
	Category         string
	IsActive         bool
	NextExpectedDate *time.Time
	CreatedAt        time.Time
}

// MonthlyEquivalent returns the amount normalized to a per-month rate.
// Unknown frequencies contribute 0.
func (i *Income) MonthlyEquivalent() float64 {
	return i.Amount * monthlyMultipliers[i.Frequency]
}

// AnnualEquivalent returns the amount normalized to a per-year rate.
func (i *Income) AnnualEquivalent() float64 {
	return i.Amount * annualMultipliers[i.Frequency]
}
