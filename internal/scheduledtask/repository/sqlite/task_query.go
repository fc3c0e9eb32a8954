package sqlite

import (
	"fmt"
	"strings"

	"finbook/internal/model"
	repo "finbook/internal/scheduledtask/repository"
)

const taskColumns = `id, user_id, name, type, amount, category, account_id, frequency,
	day_of_month, day_of_week, month_of_year, execute_time, start_date, end_date,
	is_enabled, next_run_at, last_run_at, run_count, description, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.ScheduledTask, error) {
	var t model.ScheduledTask
	err := row.Scan(
		&t.ID, &t.UserID, &t.Name, &t.Type, &t.Amount, &t.Category, &t.AccountID,
		&t.Frequency, &t.DayOfMonth, &t.DayOfWeek, &t.MonthOfYear, &t.ExecuteTime,
		&t.StartDate, &t.EndDate, &t.IsEnabled, &t.NextRunAt, &t.LastRunAt,
		&t.RunCount, &t.Description, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// buildGetOneQuery returns the WHERE clause and args for GetOneTask.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
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
		conds = append(conds, "1 = 0")
	}
	return strings.Join(conds, " AND "), args
}

// buildListQuery returns the WHERE clause and args for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	conds := []string{"user_id = ?"}
	args := []any{opt.UserID}
	if opt.Enabled != nil {
		conds = append(conds, "is_enabled = ?")
		args = append(args, boolToInt(*opt.Enabled))
	}
	return strings.Join(conds, " AND "), args
}

// buildUpdateQuery returns the SET clause and args for UpdateTask.
// updated_at is always touched.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateTaskOptions) (string, []any) {
	sets := []string{"updated_at = CURRENT_TIMESTAMP"}
	var args []any

	set := func(col string, v any) {
		sets = append(sets, fmt.Sprintf("%s = ?", col))
		args = append(args, v)
	}

	if opt.Name != nil {
		set("name", *opt.Name)
	}
	if opt.Amount != nil {
		set("amount", *opt.Amount)
	}
	if opt.Category != nil {
		set("category", *opt.Category)
	}
	if opt.Frequency != nil {
		set("frequency", string(*opt.Frequency))
	}
	if opt.DayOfMonth != nil {
		set("day_of_month", *opt.DayOfMonth)
	}
	if opt.DayOfWeek != nil {
		set("day_of_week", *opt.DayOfWeek)
	}
	if opt.MonthOfYear != nil {
		set("month_of_year", *opt.MonthOfYear)
	}
	if opt.ExecuteTime != nil {
		set("execute_time", *opt.ExecuteTime)
	}
	if opt.StartDate != nil {
		set("start_date", *opt.StartDate)
	}
	if opt.EndDate != nil {
		set("end_date", *opt.EndDate)
	}
	if opt.IsEnabled != nil {
		set("is_enabled", boolToInt(*opt.IsEnabled))
	}
	if opt.NextRunAt != nil {
		set("next_run_at", *opt.NextRunAt)
	}
	if opt.Description != nil {
		set("description", *opt.Description)
	}

	return strings.Join(sets, ", "), args
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
