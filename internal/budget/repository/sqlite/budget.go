package sqlite

import (
	"context"
	"strings"

	"github.com/google/uuid"

	repo "finbook/internal/budget/repository"
	"finbook/internal/model"
)

// CreateBudget inserts a new budget row. The (user_id, category, month)
// unique constraint surfaces as ErrDuplicate.
func (r *implRepository) CreateBudget(ctx context.Context, opt repo.CreateBudgetOptions) (model.Budget, error) {
	id := uuid.NewString()

	const query = `
		INSERT INTO budgets (id, user_id, category, amount, month, is_recurring)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		id, opt.UserID, opt.Category, opt.Amount, opt.Month, boolToInt(opt.IsRecurring),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return model.Budget{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBudget"), err)
		return model.Budget{}, repo.ErrFailedToInsert
	}

	const selectQuery = `
		SELECT id, user_id, category, amount, month, is_recurring, created_at
		FROM budgets WHERE id = ?`

	var b model.Budget
	err = r.db.QueryRowContext(ctx, selectQuery, id).Scan(
		&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Month, &b.IsRecurring, &b.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s select: %v", r.dsn("CreateBudget"), err)
		return model.Budget{}, repo.ErrFailedToInsert
	}
	return b, nil
}

// ListBudgets returns budgets for one user, optionally limited to a month.
func (r *implRepository) ListBudgets(ctx context.Context, opt repo.ListBudgetsOptions) ([]model.Budget, error) {
	query := `
		SELECT id, user_id, category, amount, month, is_recurring, created_at
		FROM budgets WHERE user_id = ?`
	args := []any{opt.UserID}
	if opt.Month != "" {
		query += " AND month = ?"
		args = append(args, opt.Month)
	}
	query += " ORDER BY month DESC, category ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBudgets"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Month, &b.IsRecurring, &b.CreatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		budgets = append(budgets, b)
	}
	return budgets, nil
}

// DeleteBudget removes one budget. Returns false when no row matched.
func (r *implRepository) DeleteBudget(ctx context.Context, id, userID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM budgets WHERE id = ? AND user_id = ?", id, userID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteBudget"), err)
		return false, repo.ErrFailedToDelete
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// RolloverRecurring copies recurring budgets of prevMonth into month for
// every user, skipping (user, category) pairs that already have one.
func (r *implRepository) RolloverRecurring(ctx context.Context, prevMonth, month string) (int, error) {
	const query = `
		INSERT INTO budgets (id, user_id, category, amount, month, is_recurring)
		SELECT ?, user_id, category, amount, ?, 1
		FROM budgets b
		WHERE b.month = ? AND b.is_recurring = 1
		  AND NOT EXISTS (
			SELECT 1 FROM budgets e
			WHERE e.user_id = b.user_id AND e.category = b.category AND e.month = ?
		  )
		LIMIT 1`

	// SQLite cannot generate a fresh UUID per copied row in one INSERT
	// SELECT, so rows are copied one at a time.
	total := 0
	for {
		res, err := r.db.ExecContext(ctx, query, uuid.NewString(), month, prevMonth, month)
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("RolloverRecurring"), err)
			return total, repo.ErrFailedToInsert
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			return total, nil
		}
		total += int(n)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
