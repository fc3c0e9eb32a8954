package usecase

import (
	"context"

	"finbook/internal/model"
	"finbook/internal/scheduledtask"
	repo "finbook/internal/scheduledtask/repository"
)

// List returns a paginated list of the user's scheduled tasks.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input scheduledtask.ListInput) (scheduledtask.ListOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:  sc.UserID,
		Enabled: input.Enabled,
		Limit:   input.Limit,
		Offset:  input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return scheduledtask.ListOutput{}, err
	}

	return scheduledtask.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Detail returns a single task owned by the user.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (scheduledtask.DetailOutput, error) {
	task, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return scheduledtask.DetailOutput{}, err
	}
	if task.ID == "" {
		return scheduledtask.DetailOutput{}, scheduledtask.ErrTaskNotFound
	}

	return scheduledtask.DetailOutput{Task: task}, nil
}

// ListLogs returns the execution history of one task owned by the user.
func (uc *implUseCase) ListLogs(ctx context.Context, sc model.Scope, input scheduledtask.ListLogsInput) (scheduledtask.ListLogsOutput, error) {
	task, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.TaskID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListLogs GetOneTask: %v", err)
		return scheduledtask.ListLogsOutput{}, err
	}
	if task.ID == "" {
		return scheduledtask.ListLogsOutput{}, scheduledtask.ErrTaskNotFound
	}

	logs, total, err := uc.repo.ListLogs(ctx, repo.ListLogsOptions{
		TaskID: input.TaskID,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListLogs ListLogs: %v", err)
		return scheduledtask.ListLogsOutput{}, err
	}

	return scheduledtask.ListLogsOutput{
		Logs:   logs,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
