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

// CreateRecord books one manual record and shifts the account balance in
// a single transaction.
func (r *implRepository) CreateRecord(ctx context.Context, opt repo.CreateRecordOptions) (model.Record, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateRecord"), err)
		return model.Record{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	var accountID string
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM accounts WHERE id = ? AND user_id = ?", opt.AccountID, opt.UserID,
	).Scan(&accountID)
	if err == sql.ErrNoRows {
		return model.Record{}, repo.ErrNoSuchAccount
	}
	if err != nil {
		r.l.Errorf(ctx, "%s account: %v", r.dsn("CreateRecord"), err)
		return model.Record{}, repo.ErrFailedToInsert
	}

	id := uuid.NewString()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO records (id, user_id, account_id, type, amount, category, description, date, is_automatic)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0)`,
		id, opt.UserID, opt.AccountID, string(opt.Type), opt.Amount, opt.Category, opt.Description, opt.Date,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s record: %v", r.dsn("CreateRecord"), err)
		return model.Record{}, repo.ErrFailedToInsert
	}

	if opt.BalanceDelta != 0 {
		_, err = tx.ExecContext(ctx,
			"UPDATE accounts SET balance = balance + ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
			opt.BalanceDelta, opt.AccountID,
		)
		if err != nil {
			r.l.Errorf(ctx, "%s balance: %v", r.dsn("CreateRecord"), err)
			return model.Record{}, repo.ErrFailedToInsert
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateRecord"), err)
		return model.Record{}, repo.ErrFailedToInsert
	}

	return model.Record{
		ID:          id,
		UserID:      opt.UserID,
		AccountID:   opt.AccountID,
		Type:        opt.Type,
		Amount:      opt.Amount,
		Category:    opt.Category,
		Description: opt.Description,
		Date:        opt.Date,
		IsAutomatic: false,
	}, nil
}

// ListRecords returns a filtered, paginated record list and the total count.
func (r *implRepository) ListRecords(ctx context.Context, opt repo.ListRecordsOptions) ([]model.Record, int, error) {
	conds := []string{"user_id = ?"}
	args := []any{opt.UserID}
	if opt.AccountID != "" {
		conds = append(conds, "account_id = ?")
		args = append(args, opt.AccountID)
	}
	if opt.From != nil {
		conds = append(conds, "date >= ?")
		args = append(args, *opt.From)
	}
	if opt.To != nil {
		conds = append(conds, "date <= ?")
		args = append(args, *opt.To)
	}
	where := strings.Join(conds, " AND ")

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM records WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListRecords"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, account_id, type, amount, category, description, date, is_automatic, created_at
		FROM records WHERE %s
		ORDER BY date DESC
		LIMIT ? OFFSET ?`, where)
	args = append(args, opt.Limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecords"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		var rec model.Record
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.AccountID, &rec.Type, &rec.Amount,
			&rec.Category, &rec.Description, &rec.Date, &rec.IsAutomatic, &rec.CreatedAt); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		records = append(records, rec)
	}
	return records, total, nil
}
