package analytics

import (
	"fmt"
	"math"
)

// FactorStatus is the qualitative band for a health factor or overall rating.
type FactorStatus string

const (
	StatusExcellent FactorStatus = "excellent"
	StatusGood      FactorStatus = "good"
	StatusFair      FactorStatus = "fair"
	StatusPoor      FactorStatus = "poor"
)

// Factor names double as keys for the recommendation table.
const (
	factorSavingsRate     = "Savings Rate"
	factorBillPayments    = "Bill Payments"
	factorConsistency     = "Spending Consistency"
	factorDiversification = "Income Diversification"
	factorTracking        = "Tracking Activity"
)

var recommendationsByFactor = map[string]string{
	factorSavingsRate:     "Consider reducing unnecessary expenses to improve your savings rate",
	factorBillPayments:    "Set up automatic bill payments to avoid late fees and improve your payment history",
	factorConsistency:     "Create a monthly budget to maintain consistent spending patterns",
	factorDiversification: "Consider developing additional income streams to reduce financial risk",
	factorTracking:        "Record your transactions regularly to maintain better financial awareness",
}

// HealthFactor is one independently-scored dimension of the health score.
type HealthFactor struct {
	Name   string
	Score  int
	Status FactorStatus
	Value  string
}

// HealthReport is the financial health score payload.
type HealthReport struct {
	Score           int
	Rating          FactorStatus
	Factors         []HealthFactor
	Recommendations []string
}

// HealthInputs are the current aggregates the score is recomputed from on
// every invocation. Nothing is persisted between calls.
type HealthInputs struct {
	// Current calendar month transaction totals.
	Income   float64
	Expenses float64

	// Active bill counts by status.
	TotalBills   int
	PaidBills    int
	OverdueBills int

	// Expense totals per calendar month over the last three months; the
	// consistency factor needs at least three entries.
	MonthlyExpenses []float64

	// Count of active income sources.
	IncomeSources int

	// Count of transactions in the last 30 days.
	RecentTransactions int
}

// ComputeHealthScore evaluates the five weighted factors in a fixed order.
// A factor whose precondition is unmet (no income, no bills, under three
// months of expense history) is absent from the result entirely rather than
// scored as zero.
func ComputeHealthScore(in HealthInputs) HealthReport {
	var (
		score   int
		factors []HealthFactor
	)

	add := func(f HealthFactor) {
		score += f.Score
		factors = append(factors, f)
	}

	// 1. Savings rate (30 points).
	if in.Income > 0 {
		rate := (in.Income - in.Expenses) / in.Income * 100
		value := fmt.Sprintf("%d%%", int(math.Round(rate)))

		switch {
		case rate >= 20:
			add(HealthFactor{Name: factorSavingsRate, Score: 30, Status: StatusExcellent, Value: value})
		case rate >= 10:
			add(HealthFactor{Name: factorSavingsRate, Score: 20, Status: StatusGood, Value: value})
		case rate >= 0:
			add(HealthFactor{Name: factorSavingsRate, Score: 10, Status: StatusFair, Value: value})
		default:
			add(HealthFactor{Name: factorSavingsRate, Score: 0, Status: StatusPoor, Value: value})
		}
	}

	// 2. Bill payment history (25 points).
	if in.TotalBills > 0 {
		paymentRate := float64(in.PaidBills) / float64(in.TotalBills) * 100
		value := fmt.Sprintf("%d overdue", in.OverdueBills)

		switch {
		case in.OverdueBills == 0 && paymentRate >= 90:
			add(HealthFactor{Name: factorBillPayments, Score: 25, Status: StatusExcellent, Value: value})
		case in.OverdueBills <= 1:
			add(HealthFactor{Name: factorBillPayments, Score: 15, Status: StatusGood, Value: value})
		case in.OverdueBills <= 3:
			add(HealthFactor{Name: factorBillPayments, Score: 8, Status: StatusFair, Value: value})
		default:
			add(HealthFactor{Name: factorBillPayments, Score: 0, Status: StatusPoor, Value: value})
		}
	}

	// 3. Spending consistency (20 points).
	if len(in.MonthlyExpenses) >= 3 {
		consistency := consistencyScore(in.MonthlyExpenses)
		value := fmt.Sprintf("%d%%", int(math.Round(consistency)))

		switch {
		case consistency >= 80:
			add(HealthFactor{Name: factorConsistency, Score: 20, Status: StatusExcellent, Value: value})
		case consistency >= 60:
			add(HealthFactor{Name: factorConsistency, Score: 15, Status: StatusGood, Value: value})
		case consistency >= 40:
			add(HealthFactor{Name: factorConsistency, Score: 8, Status: StatusFair, Value: value})
		default:
			add(HealthFactor{Name: factorConsistency, Score: 0, Status: StatusPoor, Value: value})
		}
	}

	// 4. Income diversification (15 points). Always present.
	switch {
	case in.IncomeSources >= 3:
		add(HealthFactor{Name: factorDiversification, Score: 15, Status: StatusExcellent, Value: fmt.Sprintf("%d sources", in.IncomeSources)})
	case in.IncomeSources == 2:
		add(HealthFactor{Name: factorDiversification, Score: 10, Status: StatusGood, Value: "2 sources"})
	case in.IncomeSources == 1:
		add(HealthFactor{Name: factorDiversification, Score: 5, Status: StatusFair, Value: "1 source"})
	default:
		add(HealthFactor{Name: factorDiversification, Score: 0, Status: StatusPoor, Value: "No income sources"})
	}

	// 5. Tracking activity (10 points). Always present.
	switch {
	case in.RecentTransactions >= 10:
		add(HealthFactor{Name: factorTracking, Score: 10, Status: StatusExcellent, Value: fmt.Sprintf("%d recent transactions", in.RecentTransactions)})
	case in.RecentTransactions >= 5:
		add(HealthFactor{Name: factorTracking, Score: 7, Status: StatusGood, Value: fmt.Sprintf("%d recent transactions", in.RecentTransactions)})
	case in.RecentTransactions >= 1:
		add(HealthFactor{Name: factorTracking, Score: 3, Status: StatusFair, Value: fmt.Sprintf("%d recent transactions", in.RecentTransactions)})
	default:
		add(HealthFactor{Name: factorTracking, Score: 0, Status: StatusPoor, Value: "No recent activity"})
	}

	return HealthReport{
		Score:           score,
		Rating:          rating(score),
		Factors:         factors,
		Recommendations: recommendations(factors),
	}
}

// consistencyScore is (1 - stdDev/mean) * 100 over monthly expense totals,
// using population variance (divide by N). Zero when the mean is zero.
func consistencyScore(amounts []float64) float64 {
	var sum float64
	for _, a := range amounts {
		sum += a
	}

	mean := sum / float64(len(amounts))
	if mean <= 0 {
		return 0
	}

	var variance float64
	for _, a := range amounts {
		variance += (a - mean) * (a - mean)
	}

	variance /= float64(len(amounts))
	stdDev := math.Sqrt(variance)

	return (1 - stdDev/mean) * 100
}

func rating(score int) FactorStatus {
	switch {
	case score >= 80:
		return StatusExcellent
	case score >= 60:
		return StatusGood
	case score >= 40:
		return StatusFair
	default:
		return StatusPoor
	}
}

// recommendations maps every poor or fair factor to its fixed advisory
// string, in factor evaluation order.
func recommendations(factors []HealthFactor) []string {
	var recs []string

	for _, f := range factors {
		if f.Status != StatusPoor && f.Status != StatusFair {
			continue
		}

		if rec, ok := recommendationsByFactor[f.Name]; ok {
			recs = append(recs, rec)
		}
	}

	return recs
}
