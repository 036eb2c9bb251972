package analytics

import (
	"sort"

	"github.com/aria-finance/analytics/internal/transaction"
)

// TrendRow is one calendar month of income vs expense totals with derived
// balance and savings-rate fields.
type TrendRow struct {
	Year                int
	Month               int
	Income              float64
	Expense             float64
	IncomeTransactions  int
	ExpenseTransactions int
	Balance             float64
	SavingsRate         float64
}

// TrendAverages are arithmetic means over all trend rows, rounded to two
// decimals. All zero when there are no rows.
type TrendAverages struct {
	AvgIncome      float64
	AvgExpense     float64
	AvgBalance     float64
	AvgSavingsRate float64
}

// TrendReport is the income-vs-expense trends payload.
type TrendReport struct {
	Trends      []TrendRow
	Averages    TrendAverages
	TotalMonths int
}

// BuildTrend folds per-type monthly totals into one row per calendar month,
// sorted ascending by (year, month). Months without transactions are absent,
// not zero-filled.
func BuildTrend(rows []MonthlyTypeTotal) []TrendRow {
	type monthKey struct {
		Year  int
		Month int
	}

	byMonth := make(map[monthKey]*TrendRow)

	for _, r := range rows {
		k := monthKey{Year: r.Year, Month: r.Month}

		row, ok := byMonth[k]
		if !ok {
			row = &TrendRow{Year: r.Year, Month: r.Month}
			byMonth[k] = row
		}

		switch r.Type {
		case transaction.TypeIncome:
			row.Income += r.Total
			row.IncomeTransactions += r.Count
		case transaction.TypeExpense:
			row.Expense += r.Total
			row.ExpenseTransactions += r.Count
		}
	}

	trends := make([]TrendRow, 0, len(byMonth))

	for _, row := range byMonth {
		row.Balance = row.Income - row.Expense

		if row.Income > 0 {
			row.SavingsRate = (row.Income - row.Expense) / row.Income * 100
		}

		trends = append(trends, *row)
	}

	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Year != trends[j].Year {
			return trends[i].Year < trends[j].Year
		}

		return trends[i].Month < trends[j].Month
	})

	return trends
}

// AverageTrends computes the per-row means. Zero rows yield zero averages.
func AverageTrends(trends []TrendRow) TrendAverages {
	if len(trends) == 0 {
		return TrendAverages{}
	}

	var avg TrendAverages

	for _, row := range trends {
		avg.AvgIncome += row.Income
		avg.AvgExpense += row.Expense
		avg.AvgBalance += row.Balance
		avg.AvgSavingsRate += row.SavingsRate
	}

	n := float64(len(trends))
	avg.AvgIncome = round2(avg.AvgIncome / n)
	avg.AvgExpense = round2(avg.AvgExpense / n)
	avg.AvgBalance = round2(avg.AvgBalance / n)
	avg.AvgSavingsRate = round2(avg.AvgSavingsRate / n)

	return avg
}
