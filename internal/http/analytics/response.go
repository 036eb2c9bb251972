package analytics

import (
	"time"

	"github.com/google/uuid"

	"github.com/aria-finance/analytics/internal/analytics"
	"github.com/aria-finance/analytics/internal/bill"
	"github.com/aria-finance/analytics/internal/transaction"
)

// Field names mirror what the mobile client already consumes.

type typeTotalResponse struct {
	Type  transaction.Type `json:"type"`
	Total float64          `json:"total"`
	Count int              `json:"count"`
}

type statusCountResponse struct {
	Status      bill.Status `json:"status"`
	Count       int         `json:"count"`
	TotalAmount float64     `json:"totalAmount"`
}

type incomeSummaryResponse struct {
	TotalMonthly float64 `json:"totalMonthly"`
	Count        int     `json:"count"`
}

type transactionResponse struct {
	ID          uuid.UUID            `json:"id"`
	Type        transaction.Type     `json:"type"`
	Category    transaction.Category `json:"category"`
	Amount      float64              `json:"amount"`
	Description string               `json:"description"`
	Date        time.Time            `json:"date"`
}

type billResponse struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Amount      float64       `json:"amount"`
	Category    bill.Category `json:"category"`
	CustomLabel string        `json:"customLabel,omitempty"`
	DueDate     time.Time     `json:"dueDate"`
	Status      bill.Status   `json:"status"`
}

type dashboardResponse struct {
	MonthlyTransactions []typeTotalResponse   `json:"monthlyTransactions"`
	BillsSummary        []statusCountResponse `json:"billsSummary"`
	ActiveIncome        incomeSummaryResponse `json:"activeIncome"`
	NetIncome           float64               `json:"netIncome"`
	RecentTransactions  []transactionResponse `json:"recentTransactions"`
	UpcomingBills       []billResponse        `json:"upcomingBills"`
}

func toDashboardResponse(d *analytics.Dashboard) dashboardResponse {
	resp := dashboardResponse{
		MonthlyTransactions: make([]typeTotalResponse, 0, len(d.MonthlyTransactions)),
		BillsSummary:        make([]statusCountResponse, 0, len(d.BillsSummary)),
		ActiveIncome: incomeSummaryResponse{
			TotalMonthly: d.ActiveIncome.TotalMonthly,
			Count:        d.ActiveIncome.Count,
		},
		NetIncome:          d.NetIncome,
		RecentTransactions: make([]transactionResponse, 0, len(d.RecentTransactions)),
		UpcomingBills:      make([]billResponse, 0, len(d.UpcomingBills)),
	}

	for _, t := range d.MonthlyTransactions {
		resp.MonthlyTransactions = append(resp.MonthlyTransactions, typeTotalResponse{Type: t.Type, Total: t.Total, Count: t.Count})
	}

	for _, s := range d.BillsSummary {
		resp.BillsSummary = append(resp.BillsSummary, statusCountResponse{Status: s.Status, Count: s.Count, TotalAmount: s.TotalAmount})
	}

	for _, tx := range d.RecentTransactions {
		resp.RecentTransactions = append(resp.RecentTransactions, transactionResponse{
			ID:          tx.ID,
			Type:        tx.Type,
			Category:    tx.Category,
			Amount:      tx.Amount,
			Description: tx.Description,
			Date:        tx.Date,
		})
	}

	for _, b := range d.UpcomingBills {
		resp.UpcomingBills = append(resp.UpcomingBills, billResponse{
			ID:          b.ID,
			Title:       b.Title,
			Amount:      b.Amount,
			Category:    b.Category,
			CustomLabel: b.CustomLabel,
			DueDate:     b.DueDate,
			Status:      b.Status,
		})
	}

	return resp
}

type categorySpendResponse struct {
	Category  transaction.Category `json:"category"`
	Total     float64              `json:"total"`
	Count     int                  `json:"count"`
	AvgAmount float64              `json:"avgAmount"`
}

type dailyTotalResponse struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Day   int     `json:"day"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type comparisonResponse struct {
	CurrentTotal  float64 `json:"currentTotal"`
	PreviousTotal float64 `json:"previousTotal"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

type spendingResponse struct {
	Period           analytics.Period        `json:"period"`
	CurrentSpending  []categorySpendResponse `json:"currentSpending"`
	PreviousSpending []categorySpendResponse `json:"previousSpending"`
	Comparison       *comparisonResponse     `json:"comparison"`
	DailySpending    []dailyTotalResponse    `json:"dailySpending"`
}

func toCategorySpendResponses(spend []analytics.CategorySpend) []categorySpendResponse {
	out := make([]categorySpendResponse, 0, len(spend))
	for _, c := range spend {
		out = append(out, categorySpendResponse{Category: c.Category, Total: c.Total, Count: c.Count, AvgAmount: c.Avg})
	}

	return out
}

func toSpendingResponse(r *analytics.SpendingReport) spendingResponse {
	resp := spendingResponse{
		Period:          r.Period,
		CurrentSpending: toCategorySpendResponses(r.CurrentSpending),
		DailySpending:   make([]dailyTotalResponse, 0, len(r.DailySpending)),
	}

	// previousSpending and comparison stay null unless comparison was requested.
	if r.PreviousSpending != nil {
		resp.PreviousSpending = toCategorySpendResponses(r.PreviousSpending)
	}

	if r.Comparison != nil {
		resp.Comparison = &comparisonResponse{
			CurrentTotal:  r.Comparison.CurrentTotal,
			PreviousTotal: r.Comparison.PreviousTotal,
			Change:        r.Comparison.Change,
			ChangePercent: r.Comparison.ChangePercent,
		}
	}

	for _, d := range r.DailySpending {
		resp.DailySpending = append(resp.DailySpending, dailyTotalResponse{
			Year:  d.Year,
			Month: d.Month,
			Day:   d.Day,
			Total: d.Total,
			Count: d.Count,
		})
	}

	return resp
}

type trendRowResponse struct {
	Year                int     `json:"year"`
	Month               int     `json:"month"`
	Income              float64 `json:"income"`
	Expense             float64 `json:"expense"`
	IncomeTransactions  int     `json:"incomeTransactions"`
	ExpenseTransactions int     `json:"expenseTransactions"`
	Balance             float64 `json:"balance"`
	SavingsRate         float64 `json:"savingsRate"`
}

type trendAveragesResponse struct {
	AvgIncome      float64 `json:"avgIncome"`
	AvgExpense     float64 `json:"avgExpense"`
	AvgBalance     float64 `json:"avgBalance"`
	AvgSavingsRate float64 `json:"avgSavingsRate"`
}

type trendResponse struct {
	Trends      []trendRowResponse    `json:"trends"`
	Averages    trendAveragesResponse `json:"averages"`
	TotalMonths int                   `json:"totalMonths"`
}

func toTrendResponse(r *analytics.TrendReport) trendResponse {
	resp := trendResponse{
		Trends: make([]trendRowResponse, 0, len(r.Trends)),
		Averages: trendAveragesResponse{
			AvgIncome:      r.Averages.AvgIncome,
			AvgExpense:     r.Averages.AvgExpense,
			AvgBalance:     r.Averages.AvgBalance,
			AvgSavingsRate: r.Averages.AvgSavingsRate,
		},
		TotalMonths: r.TotalMonths,
	}

	for _, t := range r.Trends {
		resp.Trends = append(resp.Trends, trendRowResponse{
			Year:                t.Year,
			Month:               t.Month,
			Income:              t.Income,
			Expense:             t.Expense,
			IncomeTransactions:  t.IncomeTransactions,
			ExpenseTransactions: t.ExpenseTransactions,
			Balance:             t.Balance,
			SavingsRate:         t.SavingsRate,
		})
	}

	return resp
}

type budgetLineResponse struct {
	Limit      float64 `json:"limit"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

type categoryBudgetResponse struct {
	Category transaction.Category `json:"category"`
	budgetLineResponse
}

type budgetResponse struct {
	HasLimits  bool                     `json:"hasLimits"`
	Monthly    *budgetLineResponse      `json:"monthly,omitempty"`
	Categories []categoryBudgetResponse `json:"categories,omitempty"`
}

func toBudgetResponse(r *analytics.BudgetReport) budgetResponse {
	if !r.HasLimits {
		return budgetResponse{HasLimits: false}
	}

	resp := budgetResponse{
		HasLimits: true,
		Monthly: &budgetLineResponse{
			Limit:      r.Monthly.Limit,
			Spent:      r.Monthly.Spent,
			Remaining:  r.Monthly.Remaining,
			Percentage: r.Monthly.Percentage,
		},
		Categories: make([]categoryBudgetResponse, 0, len(r.Categories)),
	}

	for _, c := range r.Categories {
		resp.Categories = append(resp.Categories, categoryBudgetResponse{
			Category: c.Category,
			budgetLineResponse: budgetLineResponse{
				Limit:      c.Limit,
				Spent:      c.Spent,
				Remaining:  c.Remaining,
				Percentage: c.Percentage,
			},
		})
	}

	return resp
}

type healthFactorResponse struct {
	Name   string                 `json:"name"`
	Score  int                    `json:"score"`
	Status analytics.FactorStatus `json:"status"`
	Value  string                 `json:"value"`
}

type healthResponse struct {
	Score           int                    `json:"score"`
	Rating          analytics.FactorStatus `json:"rating"`
	Factors         []healthFactorResponse `json:"factors"`
	Recommendations []string               `json:"recommendations"`
}

func toHealthResponse(r *analytics.HealthReport) healthResponse {
	resp := healthResponse{
		Score:           r.Score,
		Rating:          r.Rating,
		Factors:         make([]healthFactorResponse, 0, len(r.Factors)),
		Recommendations: r.Recommendations,
	}

	if resp.Recommendations == nil {
		resp.Recommendations = []string{}
	}

	for _, f := range r.Factors {
		resp.Factors = append(resp.Factors, healthFactorResponse{
			Name:   f.Name,
			Score:  f.Score,
			Status: f.Status,
			Value:  f.Value,
		})
	}

	return resp
}
