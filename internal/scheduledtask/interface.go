package scheduledtask

import (
	"context"
	"time"

	"finbook/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	Toggle(ctx context.Context, sc model.Scope, id string, enabled bool) (ToggleOutput, error)
	ListLogs(ctx context.Context, sc model.Scope, input ListLogsInput) (ListLogsOutput, error)

	// ExecuteNow runs one task immediately on the user's request,
	// regardless of its next-run time.
	ExecuteNow(ctx context.Context, sc model.Scope, id string) (ExecuteOutput, error)

	// Poller-facing operations. These run without a user scope.
	ListDue(ctx context.Context, now time.Time, limit int) ([]model.ScheduledTask, error)
	Execute(ctx context.Context, task model.ScheduledTask, now time.Time) (ExecuteOutput, error)
	PurgeLogsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
