package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"finbook/internal/model"
	"finbook/internal/scheduledtask"
	repo "finbook/internal/scheduledtask/repository"
	"finbook/pkg/recurrence"
)

const defaultDueLimit = 100

// ListDue returns tasks ready to execute at now.
func (uc *implUseCase) ListDue(ctx context.Context, now time.Time, limit int) ([]model.ScheduledTask, error) {
	if limit <= 0 {
		limit = defaultDueLimit
	}
	tasks, err := uc.repo.ListDueTasks(ctx, repo.ListDueTasksOptions{Now: now, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListDue ListDueTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

// Execute runs one due task: it creates the automatic record, shifts the
// account balance, advances the task cursor and writes the success log in
// a single transaction. A failed run leaves task and account untouched
// and appends a FAILED log instead.
func (uc *implUseCase) Execute(ctx context.Context, task model.ScheduledTask, now time.Time) (scheduledtask.ExecuteOutput, error) {
	delta := balanceDelta(task)
	if task.Type == model.TaskTypeTransfer {
		// Transfers have no counterparty account yet, so the run only
		// produces the record.
		uc.l.Warnf(ctx, "uc.Execute: task %s is TRANSFER, balance unchanged", task.ID)
	}

	record := model.Record{
		ID:          uuid.NewString(),
		UserID:      task.UserID,
		AccountID:   task.AccountID,
		Type:        task.Type,
		Amount:      task.Amount,
		Category:    task.Category,
		Description: task.Name,
		Date:        now,
		IsAutomatic: true,
	}

	nextRunAt := recurrence.Next(now, scheduleOf(task))

	err := uc.repo.ApplyRun(ctx, repo.ApplyRunOptions{
		Task:         task,
		Record:       record,
		BalanceDelta: delta,
		NextRunAt:    nextRunAt,
		ExecutedAt:   now,
		LogMessage:   fmt.Sprintf("executed %s %s %.2f", task.Type, task.Category, task.Amount),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Execute ApplyRun task %s: %v", task.ID, err)
		uc.logFailure(ctx, task.ID, now, err)
		if errors.Is(err, repo.ErrNoSuchAccount) {
			return scheduledtask.ExecuteOutput{}, scheduledtask.ErrAccountNotFound
		}
		return scheduledtask.ExecuteOutput{}, err
	}

	task.NextRunAt = &nextRunAt
	task.LastRunAt = &now
	task.RunCount++

	return scheduledtask.ExecuteOutput{Task: task, Record: record}, nil
}

// ExecuteNow runs one task on the user's request regardless of its
// next-run time. The run advances the schedule exactly like a polled run.
func (uc *implUseCase) ExecuteNow(ctx context.Context, sc model.Scope, id string) (scheduledtask.ExecuteOutput, error) {
	task, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExecuteNow GetOneTask: %v", err)
		return scheduledtask.ExecuteOutput{}, err
	}
	if task.ID == "" {
		return scheduledtask.ExecuteOutput{}, scheduledtask.ErrTaskNotFound
	}

	return uc.Execute(ctx, task, uc.now())
}

// PurgeLogsBefore removes execution logs older than cutoff.
func (uc *implUseCase) PurgeLogsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := uc.repo.PurgeLogsBefore(ctx, cutoff)
	if err != nil {
		uc.l.Errorf(ctx, "uc.PurgeLogsBefore: %v", err)
		return 0, err
	}
	return n, nil
}

// logFailure appends a FAILED log outside the rolled-back transaction.
// A failed log write is not allowed to mask the execution error.
func (uc *implUseCase) logFailure(ctx context.Context, taskID string, at time.Time, cause error) {
	if err := uc.repo.AppendLog(ctx, repo.AppendLogOptions{
		TaskID:     taskID,
		Status:     model.TaskLogFailed,
		Message:    cause.Error(),
		ExecutedAt: at,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Execute AppendLog task %s: %v", taskID, err)
	}
}

func balanceDelta(task model.ScheduledTask) float64 {
	switch task.Type {
	case model.TaskTypeIncome:
		return task.Amount
	case model.TaskTypeExpense:
		return -task.Amount
	default:
		return 0
	}
}
