package analytics

import (
	"math"

	"github.com/aria-finance/analytics/internal/bill"
	"github.com/aria-finance/analytics/internal/transaction"
)

// TypeTotal is an amount sum grouped by transaction type.
type TypeTotal struct {
	Type  transaction.Type
	Total float64
	Count int
}

// CategorySpend is expense spending grouped by category, ordered by
// descending total when produced for top-category reports.
type CategorySpend struct {
	Category transaction.Category
	Total    float64
	Count    int
	Avg      float64
}

// DailyTotal is spending grouped by calendar day, chronological.
type DailyTotal struct {
	Year  int
	Month int
	Day   int
	Total float64
	Count int
}

// MonthlyTypeTotal is an amount sum grouped by calendar month and type.
type MonthlyTypeTotal struct {
	Year  int
	Month int
	Type  transaction.Type
	Total float64
	Count int
}

// MonthlyTotal is an amount sum grouped by calendar month.
type MonthlyTotal struct {
	Year  int
	Month int
	Total float64
}

// StatusCount is a bill count and amount sum grouped by status.
type StatusCount struct {
	Status      bill.Status
	Count       int
	TotalAmount float64
}

// totalForType returns the total for t, or 0 when the type is absent from
// the aggregate. Missing groups and zero totals are deliberately equivalent.
func totalForType(rows []TypeTotal, t transaction.Type) float64 {
	for _, r := range rows {
		if r.Type == t {
			return r.Total
		}
	}

	return 0
}

// countForStatus returns the bill count for s, or 0 when absent.
func countForStatus(rows []StatusCount, s bill.Status) int {
	for _, r := range rows {
		if r.Status == s {
			return r.Count
		}
	}

	return 0
}

// spendForCategory returns the spent total for c, or 0 when absent.
func spendForCategory(rows []CategorySpend, c transaction.Category) float64 {
	for _, r := range rows {
		if r.Category == c {
			return r.Total
		}
	}

	return 0
}

func sumTotals(rows []CategorySpend) float64 {
	var sum float64
	for _, r := range rows {
		sum += r.Total
	}

	return sum
}

// round2 rounds to two decimal places, half away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
