package usecase

import (
	"context"

	"finbook/internal/model"
	"finbook/internal/scheduledtask"
	repo "finbook/internal/scheduledtask/repository"
	"finbook/pkg/recurrence"
)

// Create creates a new scheduled task and seeds its next run time from
// the schedule parameters.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input scheduledtask.CreateInput) (scheduledtask.CreateOutput, error) {
	executeTime := input.ExecuteTime
	if executeTime == "" {
		executeTime = recurrence.DefaultExecuteTime
	}

	nextRunAt := recurrence.First(uc.now(), recurrence.Schedule{
		Frequency:   recurrence.Frequency(input.Frequency),
		DayOfMonth:  input.DayOfMonth,
		DayOfWeek:   input.DayOfWeek,
		MonthOfYear: input.MonthOfYear,
		ExecuteTime: executeTime,
		StartDate:   input.StartDate,
	})

	task, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:      sc.UserID,
		Name:        input.Name,
		Type:        input.Type,
		Amount:      input.Amount,
		Category:    input.Category,
		AccountID:   input.AccountID,
		Frequency:   input.Frequency,
		DayOfMonth:  input.DayOfMonth,
		DayOfWeek:   input.DayOfWeek,
		MonthOfYear: input.MonthOfYear,
		ExecuteTime: executeTime,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		NextRunAt:   nextRunAt,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return scheduledtask.CreateOutput{}, err
	}

	return scheduledtask.CreateOutput{Task: task}, nil
}

// scheduleOf maps a task's stored frequency parameters into a schedule.
func scheduleOf(task model.ScheduledTask) recurrence.Schedule {
	return recurrence.Schedule{
		Frequency:   recurrence.Frequency(task.Frequency),
		DayOfMonth:  task.DayOfMonth,
		DayOfWeek:   task.DayOfWeek,
		MonthOfYear: task.MonthOfYear,
		ExecuteTime: task.ExecuteTime,
		StartDate:   task.StartDate,
	}
}
