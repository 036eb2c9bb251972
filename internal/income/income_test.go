package income_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aria-finance/analytics/internal/income"
)

func TestIncome_Equivalents(t *testing.T) {
	tests := []struct {
		name        string
		amount      float64
		frequency   income.Frequency
		wantMonthly float64
		wantAnnual  float64
	}{
		{name: "Daily", amount: 10, frequency: income.FrequencyDaily, wantMonthly: 300, wantAnnual: 3650},
		{name: "Weekly", amount: 100, frequency: income.FrequencyWeekly, wantMonthly: 433, wantAnnual: 5200},
		{name: "BiWeekly", amount: 100, frequency: income.FrequencyBiWeekly, wantMonthly: 217, wantAnnual: 2600},
		{name: "Monthly", amount: 1200, frequency: income.FrequencyMonthly, wantMonthly: 1200, wantAnnual: 14400},
		{name: "Quarterly", amount: 300, frequency: income.FrequencyQuarterly, wantMonthly: 100, wantAnnual: 1200},
		{name: "Yearly", amount: 1200, frequency: income.FrequencyYearly, wantMonthly: 100, wantAnnual: 1200},
		{name: "OneTimeContributesNothing", amount: 5000, frequency: income.FrequencyOneTime, wantMonthly: 0, wantAnnual: 0},
		{name: "UnknownFrequencyContributesNothing", amount: 100, frequency: income.Frequency("hourly"), wantMonthly: 0, wantAnnual: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := income.Income{Amount: tt.amount, Frequency: tt.frequency}

			assert.InDelta(t, tt.wantMonthly, i.MonthlyEquivalent(), 1e-9)
			assert.InDelta(t, tt.wantAnnual, i.AnnualEquivalent(), 1e-9)
		})
	}
}
