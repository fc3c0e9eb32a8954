package usecase

import (
	"context"

	"finbook/internal/model"
	"finbook/internal/scheduledtask"
	repo "finbook/internal/scheduledtask/repository"
	"finbook/pkg/recurrence"
)

// Update applies a partial update to a task owned by the user. Any change
// to a schedule-affecting field recomputes the next run time from now.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input scheduledtask.UpdateInput) (scheduledtask.UpdateOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return scheduledtask.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return scheduledtask.UpdateOutput{}, scheduledtask.ErrTaskNotFound
	}

	opt := repo.UpdateTaskOptions{
		ID:          input.ID,
		UserID:      sc.UserID,
		Name:        input.Name,
		Amount:      input.Amount,
		Category:    input.Category,
		Frequency:   input.Frequency,
		DayOfMonth:  input.DayOfMonth,
		DayOfWeek:   input.DayOfWeek,
		MonthOfYear: input.MonthOfYear,
		ExecuteTime: input.ExecuteTime,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Description: input.Description,
	}

	if scheduleChanged(input) {
		merged := scheduleOf(existing)
		if input.Frequency != nil {
			merged.Frequency = recurrence.Frequency(*input.Frequency)
		}
		if input.DayOfMonth != nil {
			merged.DayOfMonth = input.DayOfMonth
		}
		if input.DayOfWeek != nil {
			merged.DayOfWeek = input.DayOfWeek
		}
		if input.MonthOfYear != nil {
			merged.MonthOfYear = input.MonthOfYear
		}
		if input.ExecuteTime != nil {
			merged.ExecuteTime = *input.ExecuteTime
		}
		if input.StartDate != nil {
			merged.StartDate = *input.StartDate
		}

		next := recurrence.First(uc.now(), merged)
		opt.NextRunAt = &next
	}

	task, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return scheduledtask.UpdateOutput{}, err
	}
	if task.ID == "" {
		return scheduledtask.UpdateOutput{}, scheduledtask.ErrTaskNotFound
	}

	return scheduledtask.UpdateOutput{Task: task}, nil
}

// Delete permanently removes a task owned by the user.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return scheduledtask.ErrTaskNotFound
	}

	if err := uc.repo.DeleteTask(ctx, id, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}

// Toggle enables or disables a task. Re-enabling reseeds the next run
// time from now so a long-disabled task does not fire a backlog.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, id string, enabled bool) (scheduledtask.ToggleOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle GetOneTask: %v", err)
		return scheduledtask.ToggleOutput{}, err
	}
	if existing.ID == "" {
		return scheduledtask.ToggleOutput{}, scheduledtask.ErrTaskNotFound
	}

	opt := repo.UpdateTaskOptions{
		ID:        id,
		UserID:    sc.UserID,
		IsEnabled: &enabled,
	}
	if enabled && !existing.IsEnabled {
		next := recurrence.First(uc.now(), scheduleOf(existing))
		opt.NextRunAt = &next
	}

	task, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle UpdateTask: %v", err)
		return scheduledtask.ToggleOutput{}, err
	}

	return scheduledtask.ToggleOutput{Task: task}, nil
}

func scheduleChanged(input scheduledtask.UpdateInput) bool {
	return input.Frequency != nil ||
		input.DayOfMonth != nil ||
		input.DayOfWeek != nil ||
		input.MonthOfYear != nil ||
		input.ExecuteTime != nil ||
		input.StartDate != nil
}
