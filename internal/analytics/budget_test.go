package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aria-finance/analytics/internal/analytics"
	"github.com/aria-finance/analytics/internal/transaction"
)

func TestBudgetLimits_HasLimits(t *testing.T) {
	assert.False(t, analytics.BudgetLimits{}.HasLimits())
	assert.True(t, analytics.BudgetLimits{Monthly: 500}.HasLimits())
	assert.True(t, analytics.BudgetLimits{
		Categories: []analytics.CategoryLimit{{Category: transaction.CategoryFood, Limit: 100}},
	}.HasLimits())
}

func TestAnalyzeBudget(t *testing.T) {
	t.Run("MonthlyLimit", func(t *testing.T) {
		report := analytics.AnalyzeBudget(analytics.BudgetLimits{Monthly: 1000}, 400, nil)

		assert.True(t, report.HasLimits)
		assert.InDelta(t, 1000.0, report.Monthly.Limit, 1e-9)
		assert.InDelta(t, 400.0, report.Monthly.Spent, 1e-9)
		assert.InDelta(t, 600.0, report.Monthly.Remaining, 1e-9)
		assert.InDelta(t, 40.0, report.Monthly.Percentage, 1e-9)
		assert.Empty(t, report.Categories)
	})

	t.Run("OverBudgetCategoryClampsRemaining", func(t *testing.T) {
		spend := []analytics.CategorySpend{{Category: transaction.CategoryFood, Total: 120}}
		limits := analytics.BudgetLimits{
			Categories: []analytics.CategoryLimit{{Category: transaction.CategoryFood, Limit: 100}},
		}

		report := analytics.AnalyzeBudget(limits, 120, spend)
		require.Len(t, report.Categories, 1)

		food := report.Categories[0]
		assert.Equal(t, transaction.CategoryFood, food.Category)
		assert.InDelta(t, 0.0, food.Remaining, 1e-9)
		assert.InDelta(t, 120.0, food.Percentage, 1e-9)
	})

	t.Run("ZeroLimitLeavesPercentageZero", func(t *testing.T) {
		spend := []analytics.CategorySpend{{Category: transaction.CategoryShopping, Total: 75}}
		limits := analytics.BudgetLimits{
			Monthly:    500,
			Categories: []analytics.CategoryLimit{{Category: transaction.CategoryShopping, Limit: 0}},
		}

		report := analytics.AnalyzeBudget(limits, 75, spend)
		require.Len(t, report.Categories, 1)

		shopping := report.Categories[0]
		assert.InDelta(t, 75.0, shopping.Spent, 1e-9)
		assert.InDelta(t, 0.0, shopping.Percentage, 1e-9)
		assert.InDelta(t, 0.0, shopping.Remaining, 1e-9)
	})

	t.Run("UnconfiguredCategoriesOmitted", func(t *testing.T) {
		spend := []analytics.CategorySpend{
			{Category: transaction.CategoryFood, Total: 80},
			{Category: transaction.CategoryTravel, Total: 300},
		}
		limits := analytics.BudgetLimits{
			Categories: []analytics.CategoryLimit{{Category: transaction.CategoryFood, Limit: 200}},
		}

		report := analytics.AnalyzeBudget(limits, 380, spend)
		require.Len(t, report.Categories, 1)
		assert.Equal(t, transaction.CategoryFood, report.Categories[0].Category)
	})

	t.Run("ConfiguredCategoryWithoutSpend", func(t *testing.T) {
		limits := analytics.BudgetLimits{
			Categories: []analytics.CategoryLimit{{Category: transaction.CategoryUtilities, Limit: 150}},
		}

		report := analytics.AnalyzeBudget(limits, 0, nil)
		require.Len(t, report.Categories, 1)

		utilities := report.Categories[0]
		assert.InDelta(t, 0.0, utilities.Spent, 1e-9)
		assert.InDelta(t, 150.0, utilities.Remaining, 1e-9)
		assert.InDelta(t, 0.0, utilities.Percentage, 1e-9)
	})
}
