package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"

	"finbook/internal/model"
	repo "finbook/internal/parsing/repository"
)

// Append inserts one audit row. Audit rows are append-only.
func (r *implRepository) Append(ctx context.Context, opt repo.AppendAuditOptions) error {
	const query = `
		INSERT INTO ai_audit_logs (id, user_id, user_region, provider, status, duration_ms, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		uuid.NewString(), opt.UserID, string(opt.UserRegion), opt.Provider,
		string(opt.Status), opt.DurationMs, opt.ErrorMessage,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Append"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// List returns a user's audit rows, newest first, and the total count.
func (r *implRepository) List(ctx context.Context, opt repo.ListAuditOptions) ([]model.AIAuditLog, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM ai_audit_logs WHERE user_id = ?", opt.UserID,
	).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("List"), err)
		return nil, 0, repo.ErrFailedToList
	}

	const query = `
		SELECT id, user_id, user_region, provider, status, duration_ms, error_message, created_at
		FROM ai_audit_logs
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, opt.Limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var logs []model.AIAuditLog
	for rows.Next() {
		var entry model.AIAuditLog
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.UserRegion, &entry.Provider,
			&entry.Status, &entry.DurationMs, &entry.ErrorMessage, &entry.CreatedAt); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		logs = append(logs, entry)
	}
	return logs, total, nil
}

// PurgeBefore deletes audit rows older than cutoff.
func (r *implRepository) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM ai_audit_logs WHERE created_at < ?", cutoff,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("PurgeBefore"), err)
		return 0, repo.ErrFailedToDelete
	}
	n, _ := res.RowsAffected()
	return n, nil
}
