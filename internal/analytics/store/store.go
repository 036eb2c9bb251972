package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aria-finance/analytics/internal/analytics"
	"github.com/aria-finance/analytics/internal/bill"
	"github.com/aria-finance/analytics/internal/income"
	"github.com/aria-finance/analytics/internal/transaction"
)

// Store implements analytics.Repository with explicit typed GROUP BY queries
// instead of a generic aggregation pipeline.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) TotalsByType(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]analytics.TypeTotal, error) {
	query := `
		SELECT type, COALESCE(SUM(amount), 0), COUNT(*)
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		GROUP BY type
		ORDER BY type
	`

	rows, err := s.db.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying totals by type: %w", err)
	}
	defer rows.Close()

	var totals []analytics.TypeTotal

	for rows.Next() {
		var t analytics.TypeTotal
		if err := rows.Scan(&t.Type, &t.Total, &t.Count); err != nil {
			return nil, fmt.Errorf("scanning type total: %w", err)
		}

		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating type totals: %w", err)
	}

	return totals, nil
}

func (s *Store) SpendingByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]analytics.CategorySpend, error) {
	query := `
		SELECT category, SUM(amount), COUNT(*), AVG(amount)
		FROM transactions
		WHERE user_id = $1 AND type = 'expense' AND date >= $2 AND date <= $3
		GROUP BY category
		ORDER BY SUM(amount) DESC, category
	`

	rows, err := s.db.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying spending by category: %w", err)
	}
	defer rows.Close()

	var spending []analytics.CategorySpend

	for rows.Next() {
		var c analytics.CategorySpend
		if err := rows.Scan(&c.Category, &c.Total, &c.Count, &c.Avg); err != nil {
			return nil, fmt.Errorf("scanning category spend: %w", err)
		}

		spending = append(spending, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category spending: %w", err)
	}

	return spending, nil
}

func (s *Store) DailySpending(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]analytics.DailyTotal, error) {
	query := `
		SELECT EXTRACT(YEAR FROM date)::int, EXTRACT(MONTH FROM date)::int, EXTRACT(DAY FROM date)::int,
			SUM(amount), COUNT(*)
		FROM transactions
		WHERE user_id = $1 AND type = 'expense' AND date >= $2 AND date <= $3
		GROUP BY 1, 2, 3
		ORDER BY 1, 2, 3
	`

	rows, err := s.db.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying daily spending: %w", err)
	}
	defer rows.Close()

	var daily []analytics.DailyTotal

	for rows.Next() {
		var d analytics.DailyTotal
		if err := rows.Scan(&d.Year, &d.Month, &d.Day, &d.Total, &d.Count); err != nil {
			return nil, fmt.Errorf("scanning daily total: %w", err)
		}

		daily = append(daily, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily spending: %w", err)
	}

	return daily, nil
}

func (s *Store) MonthlyTotalsByType(ctx context.Context, userID uuid.UUID, since time.Time) ([]analytics.MonthlyTypeTotal, error) {
	query := `
		SELECT EXTRACT(YEAR FROM date)::int, EXTRACT(MONTH FROM date)::int, type, SUM(amount), COUNT(*)
		FROM transactions
		WHERE user_id = $1 AND date >= $2
		GROUP BY 1, 2, 3
		ORDER BY 1, 2, 3
	`

	rows, err := s.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("querying monthly totals by type: %w", err)
	}
	defer rows.Close()

	var totals []analytics.MonthlyTypeTotal

	for rows.Next() {
		var t analytics.MonthlyTypeTotal
		if err := rows.Scan(&t.Year, &t.Month, &t.Type, &t.Total, &t.Count); err != nil {
			return nil, fmt.Errorf("scanning monthly type total: %w", err)
		}

		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating monthly totals: %w", err)
	}

	return totals, nil
}

func (s *Store) MonthlyExpenseTotals(ctx context.Context, userID uuid.UUID, since time.Time) ([]analytics.MonthlyTotal, error) {
	query := `
		SELECT EXTRACT(YEAR FROM date)::int, EXTRACT(MONTH FROM date)::int, SUM(amount)
		FROM transactions
		WHERE user_id = $1 AND type = 'expense' AND date >= $2
		GROUP BY 1, 2
		ORDER BY 1, 2
	`

	rows, err := s.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("querying monthly expense totals: %w", err)
	}
	defer rows.Close()

	var totals []analytics.MonthlyTotal

	for rows.Next() {
		var t analytics.MonthlyTotal
		if err := rows.Scan(&t.Year, &t.Month, &t.Total); err != nil {
			return nil, fmt.Errorf("scanning monthly expense total: %w", err)
		}

		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating monthly expense totals: %w", err)
	}

	return totals, nil
}

func (s *Store) CountTransactionsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE user_id = $1 AND date >= $2`

	var count int
	if err := s.db.QueryRowContext(ctx, query, userID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting transactions: %w", err)
	}

	return count, nil
}

func (s *Store) RecentTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*transaction.Transaction, error) {
	query := `
		SELECT id, user_id, type, category, amount, description, date, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		var tx transaction.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Category, &tx.Amount, &tx.Description, &tx.Date, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recent transactions: %w", err)
	}

	return txs, nil
}

func (s *Store) BillStatusCounts(ctx context.Context, userID uuid.UUID) ([]analytics.StatusCount, error) {
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(amount), 0)
		FROM bills
		WHERE user_id = $1 AND is_active
		GROUP BY status
		ORDER BY status
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying bill status counts: %w", err)
	}
	defer rows.Close()

	var counts []analytics.StatusCount

	for rows.Next() {
		var c analytics.StatusCount
		if err := rows.Scan(&c.Status, &c.Count, &c.TotalAmount); err != nil {
			return nil, fmt.Errorf("scanning status count: %w", err)
		}

		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bill status counts: %w", err)
	}

	return counts, nil
}

func (s *Store) UpcomingBills(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]*bill.Bill, error) {
	query := `
		SELECT id, user_id, title, amount, category, COALESCE(custom_label, ''), due_date, status, is_active, created_at
		FROM bills
		WHERE user_id = $1 AND is_active AND status = 'pending' AND due_date >= $2 AND due_date <= $3
		ORDER BY due_date ASC
		LIMIT $4
	`

	rows, err := s.db.QueryContext(ctx, query, userID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("querying upcoming bills: %w", err)
	}
	defer rows.Close()

	var bills []*bill.Bill

	for rows.Next() {
		var b bill.Bill
		if err := rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Amount, &b.Category, &b.CustomLabel, &b.DueDate, &b.Status, &b.IsActive, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning bill: %w", err)
		}

		bills = append(bills, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating upcoming bills: %w", err)
	}

	return bills, nil
}

func (s *Store) ActiveIncomes(ctx context.Context, userID uuid.UUID) ([]*income.Income, error) {
	query := `
		SELECT id, user_id, source, amount, frequency, category, is_active, next_expected_date, created_at
		FROM incomes
		WHERE user_id = $1 AND is_active
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying active incomes: %w", err)
	}
	defer rows.Close()

	var incomes []*income.Income

	for rows.Next() {
		var (
			i    income.Income
			next sql.NullTime
		)

		if err := rows.Scan(&i.ID, &i.UserID, &i.Source, &i.Amount, &i.Frequency, &i.Category, &i.IsActive, &next, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning income: %w", err)
		}

		if next.Valid {
			i.NextExpectedDate = &next.Time
		}

		incomes = append(incomes, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating active incomes: %w", err)
	}

	return incomes, nil
}

func (s *Store) BudgetLimits(ctx context.Context, userID uuid.UUID) (analytics.BudgetLimits, error) {
	var limits analytics.BudgetLimits

	query := `SELECT COALESCE(budget_monthly_limit, 0) FROM users WHERE id = $1`
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&limits.Monthly); err != nil {
		if err == sql.ErrNoRows {
			return limits, nil
		}

		return limits, fmt.Errorf("querying monthly budget limit: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT category, limit_amount FROM budget_category_limits WHERE user_id = $1 ORDER BY category`, userID)
	if err != nil {
		return limits, fmt.Errorf("querying category budget limits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cl analytics.CategoryLimit
		if err := rows.Scan(&cl.Category, &cl.Limit); err != nil {
			return limits, fmt.Errorf("scanning category limit: %w", err)
		}

		limits.Categories = append(limits.Categories, cl)
	}

	if err := rows.Err(); err != nil {
		return limits, fmt.Errorf("iterating category limits: %w", err)
	}

	return limits, nil
}
