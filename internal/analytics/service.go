package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/aria-finance/analytics/internal/bill"
	"github.com/aria-finance/analytics/internal/income"
	"github.com/aria-finance/analytics/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=analytics

// Repository is the read-only query surface the analytics pipeline needs from
// the record store. Every method is scoped to a single user; bill and income
// queries see only active records.
type Repository interface {
	TotalsByType(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]TypeTotal, error)
	SpendingByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]CategorySpend, error)
	DailySpending(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]DailyTotal, error)
	MonthlyTotalsByType(ctx context.Context, userID uuid.UUID, since time.Time) ([]MonthlyTypeTotal, error)
	MonthlyExpenseTotals(ctx context.Context, userID uuid.UUID, since time.Time) ([]MonthlyTotal, error)
	CountTransactionsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	RecentTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*transaction.Transaction, error)
	BillStatusCounts(ctx context.Context, userID uuid.UUID) ([]StatusCount, error)
	UpcomingBills(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]*bill.Bill, error)
	ActiveIncomes(ctx context.Context, userID uuid.UUID) ([]*income.Income, error)
	BudgetLimits(ctx context.Context, userID uuid.UUID) (BudgetLimits, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

const (
	recentTransactionsLimit = 5
	upcomingBillsLimit      = 5
	upcomingBillsWindowDays = 7
	trackingWindowDays      = 30
	defaultTrendMonths      = 12
	maxTrendMonths          = 60
)

// IncomeSummary is the active income sources rollup for the dashboard.
type IncomeSummary struct {
	TotalMonthly float64
	Count        int
}

// Dashboard is the dashboard analytics payload.
type Dashboard struct {
	MonthlyTransactions []TypeTotal
	BillsSummary        []StatusCount
	ActiveIncome        IncomeSummary
	NetIncome           float64
	RecentTransactions  []*transaction.Transaction
	UpcomingBills       []*bill.Bill
}

// Dashboard assembles the current-month overview. The five reads are
// independent, so they run concurrently; the payload is assembled only after
// all complete and the first failure fails the whole report.
func (s *Service) Dashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	now := time.Now()
	month := ResolvePeriod(PeriodMonth, now)

	var (
		monthly  []TypeTotal
		bills    []StatusCount
		incomes  []*income.Income
		recent   []*transaction.Transaction
		upcoming []*bill.Bill
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		monthly, err = s.repo.TotalsByType(gctx, userID, month.CurrentStart, month.CurrentEnd)
		return err
	})
	g.Go(func() (err error) {
		bills, err = s.repo.BillStatusCounts(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		incomes, err = s.repo.ActiveIncomes(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.repo.RecentTransactions(gctx, userID, recentTransactionsLimit)
		return err
	})
	g.Go(func() (err error) {
		upcoming, err = s.repo.UpcomingBills(gctx, userID, now, now.AddDate(0, 0, upcomingBillsWindowDays), upcomingBillsLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard queries: %w", err)
	}

	summary := IncomeSummary{Count: len(incomes)}
	for _, i := range incomes {
		summary.TotalMonthly += i.MonthlyEquivalent()
	}

	return &Dashboard{
		MonthlyTransactions: monthly,
		BillsSummary:        bills,
		ActiveIncome:        summary,
		NetIncome:           totalForType(monthly, transaction.TypeIncome) - totalForType(monthly, transaction.TypeExpense),
		RecentTransactions:  recent,
		UpcomingBills:       upcoming,
	}, nil
}

// Spending reports current-period expense aggregates by category and day.
// Previous-period data and the comparison are computed only when compare is
// set; otherwise both stay nil.
func (s *Service) Spending(ctx context.Context, userID uuid.UUID, period Period, compare bool) (*SpendingReport, error) {
	pr := ResolvePeriod(period, time.Now())

	current, err := s.repo.SpendingByCategory(ctx, userID, pr.CurrentStart, pr.CurrentEnd)
	if err != nil {
		return nil, fmt.Errorf("current spending: %w", err)
	}

	report := &SpendingReport{
		Period:          pr.Period,
		CurrentSpending: current,
	}

	if compare {
		previous, err := s.repo.SpendingByCategory(ctx, userID, pr.PreviousStart, pr.PreviousEnd)
		if err != nil {
			return nil, fmt.Errorf("previous spending: %w", err)
		}

		if previous == nil {
			previous = []CategorySpend{}
		}

		comparison := Compare(current, previous)
		report.PreviousSpending = previous
		report.Comparison = &comparison
	}

	daily, err := s.repo.DailySpending(ctx, userID, pr.CurrentStart, pr.CurrentEnd)
	if err != nil {
		return nil, fmt.Errorf("daily spending: %w", err)
	}

	report.DailySpending = daily

	return report, nil
}

// Trends reports monthly income vs expense rows over the last months
// calendar months. Invalid month counts fall back to the default window.
func (s *Service) Trends(ctx context.Context, userID uuid.UUID, months int) (*TrendReport, error) {
	if months < 1 {
		months = defaultTrendMonths
	}

	if months > maxTrendMonths {
		months = maxTrendMonths
	}

	since := time.Now().AddDate(0, -months, 0)

	rows, err := s.repo.MonthlyTotalsByType(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("monthly totals: %w", err)
	}

	trends := BuildTrend(rows)

	return &TrendReport{
		Trends:      trends,
		Averages:    AverageTrends(trends),
		TotalMonths: len(trends),
	}, nil
}

// Budget reports current-month spending against the user's configured limits.
// When no limits are set it returns hasLimits=false without issuing any spend
// aggregation query.
func (s *Service) Budget(ctx context.Context, userID uuid.UUID) (*BudgetReport, error) {
	limits, err := s.repo.BudgetLimits(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("budget limits: %w", err)
	}

	if !limits.HasLimits() {
		return &BudgetReport{HasLimits: false}, nil
	}

	month := ResolvePeriod(PeriodMonth, time.Now())

	spend, err := s.repo.SpendingByCategory(ctx, userID, month.CurrentStart, month.CurrentEnd)
	if err != nil {
		return nil, fmt.Errorf("monthly spending: %w", err)
	}

	report := AnalyzeBudget(limits, sumTotals(spend), spend)

	return &report, nil
}

// HealthScore recomputes the five-factor financial health score from current
// aggregates.
func (s *Service) HealthScore(ctx context.Context, userID uuid.UUID) (*HealthReport, error) {
	now := time.Now()
	month := ResolvePeriod(PeriodMonth, now)

	totals, err := s.repo.TotalsByType(ctx, userID, month.CurrentStart, month.CurrentEnd)
	if err != nil {
		return nil, fmt.Errorf("monthly totals: %w", err)
	}

	bills, err := s.repo.BillStatusCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("bill status counts: %w", err)
	}

	// First of the month two months back, so the window covers the last
	// three calendar months including the current one.
	consistencySince := time.Date(now.Year(), now.Month()-2, 1, 0, 0, 0, 0, now.Location())

	monthlyExpenses, err := s.repo.MonthlyExpenseTotals(ctx, userID, consistencySince)
	if err != nil {
		return nil, fmt.Errorf("monthly expense totals: %w", err)
	}

	incomes, err := s.repo.ActiveIncomes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("active incomes: %w", err)
	}

	recent, err := s.repo.CountTransactionsSince(ctx, userID, now.AddDate(0, 0, -trackingWindowDays))
	if err != nil {
		return nil, fmt.Errorf("recent transaction count: %w", err)
	}

	var totalBills int
	for _, b := range bills {
		totalBills += b.Count
	}

	expenses := make([]float64, len(monthlyExpenses))
	for i, m := range monthlyExpenses {
		expenses[i] = m.Total
	}

	report := ComputeHealthScore(HealthInputs{
		Income:             totalForType(totals, transaction.TypeIncome),
		Expenses:           totalForType(totals, transaction.TypeExpense),
		TotalBills:         totalBills,
		PaidBills:          countForStatus(bills, bill.StatusPaid),
		OverdueBills:       countForStatus(bills, bill.StatusOverdue),
		MonthlyExpenses:    expenses,
		IncomeSources:      len(incomes),
		RecentTransactions: recent,
	})

	return &report, nil
}
