package repository

import (
	"context"
	"time"

	"finbook/internal/model"
)

// Repository is the composed interface for the scheduled task data store.
type Repository interface {
	TaskRepository
	LogRepository
}

// TaskRepository defines data access methods for scheduled tasks.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.ScheduledTask, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.ScheduledTask, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.ScheduledTask, int, error)
	ListDueTasks(ctx context.Context, opt ListDueTasksOptions) ([]model.ScheduledTask, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.ScheduledTask, error)
	DeleteTask(ctx context.Context, id, userID string) error

	// ApplyRun commits a task execution atomically. The account row is
	// verified inside the transaction; a missing account fails the whole
	// unit with ErrNoSuchAccount.
	ApplyRun(ctx context.Context, opt ApplyRunOptions) error
}

// LogRepository defines data access methods for execution logs.
type LogRepository interface {
	AppendLog(ctx context.Context, opt AppendLogOptions) error
	ListLogs(ctx context.Context, opt ListLogsOptions) ([]model.ScheduledTaskLog, int, error)
	PurgeLogsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
