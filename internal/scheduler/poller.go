package scheduler

import (
	"context"
	"time"
)

// Run blocks until ctx is cancelled, firing the execution tick every
// PollInterval and housekeeping every HousekeepingInterval.
func (p *Poller) Run(ctx context.Context) {
	p.l.Infof(ctx, "scheduler: polling every %s, housekeeping every %s",
		p.cfg.PollInterval, p.cfg.HousekeepingInterval)

	pollTicker := time.NewTicker(p.cfg.PollInterval)
	defer pollTicker.Stop()
	houseTicker := time.NewTicker(p.cfg.HousekeepingInterval)
	defer houseTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.l.Infof(ctx, "scheduler: stopped")
			return
		case <-pollTicker.C:
			p.Tick(ctx)
		case <-houseTicker.C:
			p.Housekeeping(ctx)
		}
	}
}

// Tick executes all due tasks once. Overlapping ticks are skipped: if a
// previous tick is still running the new one returns immediately.
// Failures are isolated per task.
func (p *Poller) Tick(ctx context.Context) {
	if !p.running.CompareAndSwap(false, true) {
		p.l.Warnf(ctx, "scheduler: previous tick still running, skipping")
		return
	}
	defer p.running.Store(false)

	now := p.now()
	due, err := p.tasks.ListDue(ctx, now, 0)
	if err != nil {
		p.l.Errorf(ctx, "scheduler: listing due tasks: %v", err)
		return
	}
	if len(due) == 0 {
		return
	}

	p.l.Infof(ctx, "scheduler: executing %d due task(s)", len(due))
	for _, task := range due {
		if ctx.Err() != nil {
			return
		}
		if _, err := p.tasks.Execute(ctx, task, now); err != nil {
			p.l.Errorf(ctx, "scheduler: task %s failed: %v", task.ID, err)
			continue
		}
	}
}

// Housekeeping purges old execution and audit logs and rolls recurring
// budgets into the current month.
func (p *Poller) Housekeeping(ctx context.Context) {
	now := p.now()
	cutoff := now.AddDate(0, 0, -p.cfg.LogRetentionDays)

	if n, err := p.tasks.PurgeLogsBefore(ctx, cutoff); err != nil {
		p.l.Errorf(ctx, "scheduler: purging task logs: %v", err)
	} else if n > 0 {
		p.l.Infof(ctx, "scheduler: purged %d task log(s)", n)
	}

	if p.audits != nil {
		if n, err := p.audits.PurgeBefore(ctx, cutoff); err != nil {
			p.l.Errorf(ctx, "scheduler: purging audit logs: %v", err)
		} else if n > 0 {
			p.l.Infof(ctx, "scheduler: purged %d audit log(s)", n)
		}
	}

	if p.budgets != nil {
		month := now.Format("2006-01")
		if n, err := p.budgets.RolloverRecurring(ctx, month); err != nil {
			p.l.Errorf(ctx, "scheduler: budget rollover: %v", err)
		} else if n > 0 {
			p.l.Infof(ctx, "scheduler: rolled over %d budget(s) into %s", n, month)
		}
	}
}
