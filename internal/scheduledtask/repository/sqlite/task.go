package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"finbook/internal/model"
	repo "finbook/internal/scheduledtask/repository"
)

// CreateTask inserts a new scheduled task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.ScheduledTask, error) {
	id := uuid.NewString()

	const query = `
		INSERT INTO scheduled_tasks (
			id, user_id, name, type, amount, category, account_id, frequency,
			day_of_month, day_of_week, month_of_year, execute_time,
			start_date, end_date, is_enabled, next_run_at, run_count, description
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?, 0, ?)`

	_, err := r.db.ExecContext(ctx, query,
		id, opt.UserID, opt.Name, string(opt.Type), opt.Amount, opt.Category,
		opt.AccountID, string(opt.Frequency), opt.DayOfMonth, opt.DayOfWeek,
		opt.MonthOfYear, opt.ExecuteTime, opt.StartDate, opt.EndDate,
		opt.NextRunAt, opt.Description,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.ScheduledTask{}, repo.ErrFailedToInsert
	}

	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
}

// GetOneTask retrieves a single task by the provided filters (AND condition).
// Returns zero-value task (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.ScheduledTask, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM scheduled_tasks WHERE %s LIMIT 1", taskColumns, mods)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.ScheduledTask{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.ScheduledTask{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns a paginated list of the user's tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.ScheduledTask, int, error) {
	mods, args := r.buildListQuery(opt)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM scheduled_tasks WHERE %s", mods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(
		"SELECT %s FROM scheduled_tasks WHERE %s ORDER BY created_at DESC LIMIT ? OFFSET ?",
		taskColumns, mods,
	)
	args = append(args, opt.Limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.ScheduledTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	return tasks, total, nil
}

// ListDueTasks returns enabled tasks whose next run time has arrived and
// whose end date has not passed.
func (r *implRepository) ListDueTasks(ctx context.Context, opt repo.ListDueTasksOptions) ([]model.ScheduledTask, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM scheduled_tasks
		WHERE is_enabled = 1
		  AND next_run_at IS NOT NULL
		  AND next_run_at <= ?
		  AND (end_date IS NULL OR end_date >= ?)
		ORDER BY next_run_at ASC
		LIMIT ?`, taskColumns)

	rows, err := r.db.QueryContext(ctx, query, opt.Now, opt.Now, opt.Limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDueTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.ScheduledTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// UpdateTask updates a task by ID and returns the updated entity.
// Returns zero-value task when no row matched.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.ScheduledTask, error) {
	sets, args := r.buildUpdateQuery(opt)
	query := fmt.Sprintf("UPDATE scheduled_tasks SET %s WHERE id = ? AND user_id = ?", sets)
	args = append(args, opt.ID, opt.UserID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.ScheduledTask{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ScheduledTask{}, nil
	}

	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
}

// DeleteTask permanently removes a task and its execution logs.
func (r *implRepository) DeleteTask(ctx context.Context, id, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "DELETE FROM scheduled_tasks WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM scheduled_task_logs WHERE task_id = ?", id); err != nil {
		r.l.Errorf(ctx, "%s logs: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ApplyRun commits one task execution in a single transaction: the
// generated record, the account balance shift, the task cursor advance
// and the success log. Any failure rolls back the whole unit.
func (r *implRepository) ApplyRun(ctx context.Context, opt repo.ApplyRunOptions) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("ApplyRun"), err)
		return repo.ErrFailedToApply
	}
	defer tx.Rollback()

	// The account must exist before any money moves.
	var accountID string
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM accounts WHERE id = ?", opt.Task.AccountID,
	).Scan(&accountID)
	if err == sql.ErrNoRows {
		return repo.ErrNoSuchAccount
	}
	if err != nil {
		r.l.Errorf(ctx, "%s account: %v", r.dsn("ApplyRun"), err)
		return repo.ErrFailedToApply
	}

	rec := opt.Record
	_, err = tx.ExecContext(ctx, `
		INSERT INTO records (id, user_id, account_id, type, amount, category, description, date, is_automatic)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1)`,
		rec.ID, rec.UserID, rec.AccountID, string(rec.Type), rec.Amount,
		rec.Category, rec.Description, rec.Date,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s record: %v", r.dsn("ApplyRun"), err)
		return repo.ErrFailedToApply
	}

	if opt.BalanceDelta != 0 {
		_, err = tx.ExecContext(ctx,
			"UPDATE accounts SET balance = balance + ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
			opt.BalanceDelta, opt.Task.AccountID,
		)
		if err != nil {
			r.l.Errorf(ctx, "%s balance: %v", r.dsn("ApplyRun"), err)
			return repo.ErrFailedToApply
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE scheduled_tasks
		SET next_run_at = ?, last_run_at = ?, run_count = run_count + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		opt.NextRunAt, opt.ExecutedAt, opt.Task.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s cursor: %v", r.dsn("ApplyRun"), err)
		return repo.ErrFailedToApply
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO scheduled_task_logs (id, task_id, record_id, status, message, executed_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), opt.Task.ID, rec.ID, string(model.TaskLogSuccess), opt.LogMessage, opt.ExecutedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s log: %v", r.dsn("ApplyRun"), err)
		return repo.ErrFailedToApply
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("ApplyRun"), err)
		return repo.ErrFailedToApply
	}
	return nil
}
