package repository

import (
	"time"

	"finbook/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new scheduled task.
type CreateTaskOptions struct {
	UserID      string
	Name        string
	Type        model.TaskType
	Amount      float64
	Category    string
	AccountID   string
	Frequency   model.TaskFrequency
	DayOfMonth  *int
	DayOfWeek   *int
	MonthOfYear *int
	ExecuteTime string
	StartDate   time.Time
	EndDate     *time.Time
	NextRunAt   time.Time
	Description string
}

// GetOneTaskOptions holds filter parameters for fetching a single task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing tasks.
type ListTasksOptions struct {
	UserID  string
	Enabled *bool
	Limit   int
	Offset  int
}

// ListDueTasksOptions selects tasks ready to execute: enabled, next run
// time at or before Now, and not past their end date.
type ListDueTasksOptions struct {
	Now   time.Time
	Limit int
}

// UpdateTaskOptions holds parameters for updating a task. Nil pointers
// leave the column untouched. ClearEndDate nulls end_date explicitly.
type UpdateTaskOptions struct {
	ID          string
	UserID      string
	Name        *string
	Amount      *float64
	Category    *string
	Frequency   *model.TaskFrequency
	DayOfMonth  *int
	DayOfWeek   *int
	MonthOfYear *int
	ExecuteTime *string
	StartDate   *time.Time
	EndDate     *time.Time
	IsEnabled   *bool
	NextRunAt   *time.Time
	Description *string
}

// ApplyRunOptions is the atomic execution unit for one task run: insert
// the generated record, shift the account balance by BalanceDelta,
// advance the task cursor and append the success log — all in one
// transaction.
type ApplyRunOptions struct {
	Task         model.ScheduledTask
	Record       model.Record
	BalanceDelta float64
	NextRunAt    time.Time
	ExecutedAt   time.Time
	LogMessage   string
}

// AppendLogOptions appends one execution log row outside doomed
// transactions, used for failed runs.
type AppendLogOptions struct {
	TaskID     string
	RecordID   *string
	Status     model.TaskLogStatus
	Message    string
	ExecutedAt time.Time
}

// ListLogsOptions holds filter and pagination parameters for task logs.
type ListLogsOptions struct {
	TaskID string
	Limit  int
	Offset int
}
