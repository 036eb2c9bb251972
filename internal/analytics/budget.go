package analytics

import (
	"math"

	"github.com/aria-finance/analytics/internal/transaction"
)

// CategoryLimit is a user-configured spending cap for one category.
type CategoryLimit struct {
	Category transaction.Category
	Limit    float64
}

// BudgetLimits is the budget subset of a user's preferences.
type BudgetLimits struct {
	Monthly    float64
	Categories []CategoryLimit
}

// HasLimits reports whether any limit is configured. When false, budget
// analysis short-circuits before issuing any spend aggregation query.
func (l BudgetLimits) HasLimits() bool {
	return l.Monthly > 0 || len(l.Categories) > 0
}

// BudgetLine is spend measured against a single limit. Percentage stays 0
// when the limit is 0 even if spend is positive; see DESIGN.md.
type BudgetLine struct {
	Limit      float64
	Spent      float64
	Remaining  float64
	Percentage float64
}

// CategoryBudgetLine is a BudgetLine for one configured category.
type CategoryBudgetLine struct {
	Category transaction.Category
	BudgetLine
}

// BudgetReport is the budget analysis payload.
type BudgetReport struct {
	HasLimits  bool
	Monthly    BudgetLine
	Categories []CategoryBudgetLine
}

func budgetLine(limit, spent float64) BudgetLine {
	line := BudgetLine{
		Limit:     limit,
		Spent:     spent,
		Remaining: math.Max(0, limit-spent),
	}

	if limit > 0 {
		line.Percentage = spent / limit * 100
	}

	return line
}

// AnalyzeBudget compares the current month's spending against configured
// limits. Only categories explicitly present in limits produce entries;
// unconfigured categories with spend are omitted from the budget view.
func AnalyzeBudget(limits BudgetLimits, totalSpent float64, categorySpend []CategorySpend) BudgetReport {
	report := BudgetReport{
		HasLimits: true,
		Monthly:   budgetLine(limits.Monthly, totalSpent),
	}

	for _, cl := range limits.Categories {
		report.Categories = append(report.Categories, CategoryBudgetLine{
			Category:   cl.Category,
			BudgetLine: budgetLine(cl.Limit, spendForCategory(categorySpend, cl.Category)),
		})
	}

	return report
}
