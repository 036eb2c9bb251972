package analytics

// Comparison combines two periods' spending aggregates into totals and deltas.
type Comparison struct {
	CurrentTotal  float64
	PreviousTotal float64
	Change        float64
	ChangePercent float64
}

// Compare computes period-over-period spending movement. ChangePercent is 0
// whenever the previous total is 0, regardless of current spending.
func Compare(current, previous []CategorySpend) Comparison {
	currentTotal := sumTotals(current)
	previousTotal := sumTotals(previous)
	change := currentTotal - previousTotal

	var changePercent float64
	if previousTotal > 0 {
		changePercent = round2(change / previousTotal * 100)
	}

	return Comparison{
		CurrentTotal:  currentTotal,
		PreviousTotal: previousTotal,
		Change:        change,
		ChangePercent: changePercent,
	}
}

// SpendingReport is the spending analytics payload. PreviousSpending and
// Comparison are nil unless comparison was requested.
type SpendingReport struct {
	Period           Period
	CurrentSpending  []CategorySpend
	PreviousSpending []CategorySpend
	Comparison       *Comparison
	DailySpending    []DailyTotal
}
