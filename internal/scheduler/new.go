package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"finbook/internal/model"
	"finbook/internal/scheduledtask"
	"finbook/pkg/log"
)

// TaskSource is the slice of the scheduled task use case the poller needs.
type TaskSource interface {
	ListDue(ctx context.Context, now time.Time, limit int) ([]model.ScheduledTask, error)
	Execute(ctx context.Context, task model.ScheduledTask, now time.Time) (scheduledtask.ExecuteOutput, error)
	PurgeLogsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// AuditPurger removes old AI audit log rows during housekeeping.
type AuditPurger interface {
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// BudgetRoller copies recurring budgets into the new month during
// housekeeping.
type BudgetRoller interface {
	RolloverRecurring(ctx context.Context, month string) (int, error)
}

// Config drives the poller cadence.
type Config struct {
	PollInterval         time.Duration
	HousekeepingInterval time.Duration
	LogRetentionDays     int
}

// Poller drives scheduled task execution and daily housekeeping.
type Poller struct {
	tasks   TaskSource
	audits  AuditPurger
	budgets BudgetRoller
	cfg     Config
	l       log.Logger

	running atomic.Bool
	now     func() time.Time
}

// New creates a new Poller. audits and budgets may be nil, in which case
// the corresponding housekeeping step is skipped.
func New(l log.Logger, tasks TaskSource, audits AuditPurger, budgets BudgetRoller, cfg Config) *Poller {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Minute
	}
	if cfg.HousekeepingInterval <= 0 {
		cfg.HousekeepingInterval = 24 * time.Hour
	}
	if cfg.LogRetentionDays <= 0 {
		cfg.LogRetentionDays = 30
	}

	return &Poller{
		tasks:   tasks,
		audits:  audits,
		budgets: budgets,
		cfg:     cfg,
		l:       l,
		now:     time.Now,
	}
}
