package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aria-finance/analytics/internal/analytics"
	"github.com/aria-finance/analytics/internal/transaction"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		current  []analytics.CategorySpend
		previous []analytics.CategorySpend
		want     analytics.Comparison
	}{
		{
			name: "SpendingIncreased",
			current: []analytics.CategorySpend{
				{Category: transaction.CategoryFood, Total: 250},
				{Category: transaction.CategoryTravel, Total: 150},
			},
			previous: []analytics.CategorySpend{
				{Category: transaction.CategoryFood, Total: 300},
			},
			want: analytics.Comparison{CurrentTotal: 400, PreviousTotal: 300, Change: 100, ChangePercent: 33.33},
		},
		{
			name:    "SpendingDecreased",
			current: []analytics.CategorySpend{{Category: transaction.CategoryFood, Total: 50}},
			previous: []analytics.CategorySpend{
				{Category: transaction.CategoryFood, Total: 100},
			},
			want: analytics.Comparison{CurrentTotal: 50, PreviousTotal: 100, Change: -50, ChangePercent: -50},
		},
		{
			name:     "ZeroPreviousGuardsPercent",
			current:  []analytics.CategorySpend{{Category: transaction.CategoryFood, Total: 500}},
			previous: nil,
			want:     analytics.Comparison{CurrentTotal: 500, PreviousTotal: 0, Change: 500, ChangePercent: 0},
		},
		{
			name:     "BothEmpty",
			current:  nil,
			previous: nil,
			want:     analytics.Comparison{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analytics.Compare(tt.current, tt.previous)

			assert.InDelta(t, tt.want.CurrentTotal, got.CurrentTotal, 1e-9)
			assert.InDelta(t, tt.want.PreviousTotal, got.PreviousTotal, 1e-9)
			assert.InDelta(t, tt.want.Change, got.Change, 1e-9)
			assert.InDelta(t, tt.want.ChangePercent, got.ChangePercent, 1e-9)
		})
	}
}
