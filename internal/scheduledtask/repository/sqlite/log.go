package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"

	"finbook/internal/model"
	repo "finbook/internal/scheduledtask/repository"
)

// AppendLog appends one execution log row. Used for failed runs; success
// logs are written inside ApplyRun.
func (r *implRepository) AppendLog(ctx context.Context, opt repo.AppendLogOptions) error {
	const query = `
		INSERT INTO scheduled_task_logs (id, task_id, record_id, status, message, executed_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		uuid.NewString(), opt.TaskID, opt.RecordID, string(opt.Status), opt.Message, opt.ExecutedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AppendLog"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// ListLogs returns a paginated list of execution logs for one task,
// newest first, and the total count.
func (r *implRepository) ListLogs(ctx context.Context, opt repo.ListLogsOptions) ([]model.ScheduledTaskLog, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM scheduled_task_logs WHERE task_id = ?", opt.TaskID,
	).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListLogs"), err)
		return nil, 0, repo.ErrFailedToList
	}

	const query = `
		SELECT id, task_id, COALESCE(record_id, ''), status, message, executed_at
		FROM scheduled_task_logs
		WHERE task_id = ?
		ORDER BY executed_at DESC
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, opt.TaskID, opt.Limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLogs"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var logs []model.ScheduledTaskLog
	for rows.Next() {
		var entry model.ScheduledTaskLog
		if err := rows.Scan(&entry.ID, &entry.TaskID, &entry.RecordID, &entry.Status, &entry.Message, &entry.ExecutedAt); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		logs = append(logs, entry)
	}
	return logs, total, nil
}

// PurgeLogsBefore deletes execution logs older than cutoff and returns
// the number of rows removed.
func (r *implRepository) PurgeLogsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM scheduled_task_logs WHERE executed_at < ?", cutoff,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("PurgeLogsBefore"), err)
		return 0, repo.ErrFailedToDelete
	}
	n, _ := res.RowsAffected()
	return n, nil
}
