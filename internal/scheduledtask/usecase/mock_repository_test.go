package usecase

import (
	"context"
	"time"

	"finbook/internal/model"
	repo "finbook/internal/scheduledtask/repository"
)

// mockRepository is a hand-rolled in-memory Repository for use case tests.
type mockRepository struct {
	tasks map[string]model.ScheduledTask
	logs  []repo.AppendLogOptions

	appliedRuns []repo.ApplyRunOptions
	applyErr    error

	createErr error
	getErr    error
	updateErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{tasks: make(map[string]model.ScheduledTask)}
}

func (m *mockRepository) CreateTask(_ context.Context, opt repo.CreateTaskOptions) (model.ScheduledTask, error) {
	if m.createErr != nil {
		return model.ScheduledTask{}, m.createErr
	}
	task := model.ScheduledTask{
		ID:          "task-" + opt.Name,
		UserID:      opt.UserID,
		Name:        opt.Name,
		Type:        opt.Type,
		Amount:      opt.Amount,
		Category:    opt.Category,
		AccountID:   opt.AccountID,
		Frequency:   opt.Frequency,
		DayOfMonth:  opt.DayOfMonth,
		DayOfWeek:   opt.DayOfWeek,
		MonthOfYear: opt.MonthOfYear,
		ExecuteTime: opt.ExecuteTime,
		StartDate:   opt.StartDate,
		EndDate:     opt.EndDate,
		IsEnabled:   true,
		NextRunAt:   &opt.NextRunAt,
		Description: opt.Description,
	}
	m.tasks[task.ID] = task
	return task, nil
}

func (m *mockRepository) GetOneTask(_ context.Context, opt repo.GetOneTaskOptions) (model.ScheduledTask, error) {
	if m.getErr != nil {
		return model.ScheduledTask{}, m.getErr
	}
	task, ok := m.tasks[opt.ID]
	if !ok || (opt.UserID != "" && task.UserID != opt.UserID) {
		return model.ScheduledTask{}, nil
	}
	return task, nil
}

func (m *mockRepository) ListTasks(_ context.Context, opt repo.ListTasksOptions) ([]model.ScheduledTask, int, error) {
	var out []model.ScheduledTask
	for _, t := range m.tasks {
		if t.UserID != opt.UserID {
			continue
		}
		if opt.Enabled != nil && t.IsEnabled != *opt.Enabled {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *mockRepository) ListDueTasks(_ context.Context, opt repo.ListDueTasksOptions) ([]model.ScheduledTask, error) {
	var out []model.ScheduledTask
	for _, t := range m.tasks {
		if !t.IsEnabled || t.NextRunAt == nil || t.NextRunAt.After(opt.Now) {
			continue
		}
		if t.EndDate != nil && t.EndDate.Before(opt.Now) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepository) UpdateTask(_ context.Context, opt repo.UpdateTaskOptions) (model.ScheduledTask, error) {
	if m.updateErr != nil {
		return model.ScheduledTask{}, m.updateErr
	}
	task, ok := m.tasks[opt.ID]
	if !ok || task.UserID != opt.UserID {
		return model.ScheduledTask{}, nil
	}
	if opt.Name != nil {
		task.Name = *opt.Name
	}
	if opt.Amount != nil {
		task.Amount = *opt.Amount
	}
	if opt.Frequency != nil {
		task.Frequency = *opt.Frequency
	}
	if opt.ExecuteTime != nil {
		task.ExecuteTime = *opt.ExecuteTime
	}
	if opt.IsEnabled != nil {
		task.IsEnabled = *opt.IsEnabled
	}
	if opt.NextRunAt != nil {
		task.NextRunAt = opt.NextRunAt
	}
	m.tasks[opt.ID] = task
	return task, nil
}

func (m *mockRepository) DeleteTask(_ context.Context, id, userID string) error {
	delete(m.tasks, id)
	return nil
}

func (m *mockRepository) ApplyRun(_ context.Context, opt repo.ApplyRunOptions) error {
	if m.applyErr != nil {
		return m.applyErr
	}
	m.appliedRuns = append(m.appliedRuns, opt)

	task := m.tasks[opt.Task.ID]
	task.NextRunAt = &opt.NextRunAt
	task.LastRunAt = &opt.ExecutedAt
	task.RunCount++
	m.tasks[opt.Task.ID] = task
	return nil
}

func (m *mockRepository) AppendLog(_ context.Context, opt repo.AppendLogOptions) error {
	m.logs = append(m.logs, opt)
	return nil
}

func (m *mockRepository) ListLogs(_ context.Context, opt repo.ListLogsOptions) ([]model.ScheduledTaskLog, int, error) {
	var out []model.ScheduledTaskLog
	for _, l := range m.logs {
		if l.TaskID == opt.TaskID {
			out = append(out, model.ScheduledTaskLog{
				TaskID:     l.TaskID,
				Status:     l.Status,
				Message:    l.Message,
				ExecutedAt: l.ExecutedAt,
			})
		}
	}
	return out, len(out), nil
}

func (m *mockRepository) PurgeLogsBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var kept []repo.AppendLogOptions
	var purged int64
	for _, l := range m.logs {
		if l.ExecutedAt.Before(cutoff) {
			purged++
			continue
		}
		kept = append(kept, l)
	}
	m.logs = kept
	return purged, nil
}
