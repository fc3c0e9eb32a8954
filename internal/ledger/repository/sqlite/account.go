package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	repo "finbook/internal/ledger/repository"
	"finbook/internal/model"
)

const accountColumns = `id, user_id, name, type, balance, currency, created_at, updated_at`

// CreateAccount inserts a new account row and returns the created entity.
func (r *implRepository) CreateAccount(ctx context.Context, opt repo.CreateAccountOptions) (model.Account, error) {
	id := uuid.NewString()

	const query = `
		INSERT INTO accounts (id, user_id, name, type, balance, currency)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, id, opt.UserID, opt.Name, opt.Type, opt.Balance, opt.Currency)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateAccount"), err)
		return model.Account{}, repo.ErrFailedToInsert
	}

	return r.GetOneAccount(ctx, repo.GetOneAccountOptions{ID: id})
}

// GetOneAccount retrieves a single account. Returns zero-value account
// (ID == "") when not found.
func (r *implRepository) GetOneAccount(ctx context.Context, opt repo.GetOneAccountOptions) (model.Account, error) {
	var (
		conds []string
		args  []any
	)
	if opt.ID != "" {
		conds = append(conds, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.UserID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, opt.UserID)
	}
	if len(conds) == 0 {
		return model.Account{}, nil
	}

	query := fmt.Sprintf("SELECT %s FROM accounts WHERE %s LIMIT 1", accountColumns, strings.Join(conds, " AND "))

	var a model.Account
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&a.ID, &a.UserID, &a.Name, &a.Type, &a.Balance, &a.Currency, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Account{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneAccount"), err)
		return model.Account{}, repo.ErrFailedToGet
	}
	return a, nil
}

// ListAccounts returns all accounts of one user.
func (r *implRepository) ListAccounts(ctx context.Context, userID string) ([]model.Account, error) {
	query := fmt.Sprintf("SELECT %s FROM accounts WHERE user_id = ? ORDER BY created_at ASC", accountColumns)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAccounts"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.Balance, &a.Currency, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}
