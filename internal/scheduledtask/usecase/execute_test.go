package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"finbook/internal/model"
	"finbook/internal/scheduledtask"
	repo "finbook/internal/scheduledtask/repository"
	"finbook/pkg/log"
)

func newTestUseCase(m *mockRepository, now time.Time) *implUseCase {
	uc := New(m, log.Init(log.ZapConfig{}))
	uc.now = func() time.Time { return now }
	return uc
}

func fixedTask(taskType model.TaskType) model.ScheduledTask {
	next := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return model.ScheduledTask{
		ID:          "task-1",
		UserID:      "user-1",
		Name:        "Monthly rent",
		Type:        taskType,
		Amount:      1500,
		Category:    "housing",
		AccountID:   "acc-1",
		Frequency:   model.FrequencyMonthly,
		DayOfMonth:  intPtr(10),
		ExecuteTime: "09:00",
		StartDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		IsEnabled:   true,
		NextRunAt:   &next,
	}
}

func intPtr(v int) *int { return &v }

func TestExecute_Expense(t *testing.T) {
	m := newMockRepository()
	task := fixedTask(model.TaskTypeExpense)
	m.tasks[task.ID] = task

	now := time.Date(2026, 3, 10, 9, 1, 0, 0, time.UTC)
	uc := newTestUseCase(m, now)

	out, err := uc.Execute(context.Background(), task, now)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(m.appliedRuns) != 1 {
		t.Fatalf("ApplyRun called %d times, want 1", len(m.appliedRuns))
	}
	run := m.appliedRuns[0]

	if run.BalanceDelta != -1500 {
		t.Errorf("BalanceDelta = %v, want -1500", run.BalanceDelta)
	}
	if !run.Record.IsAutomatic {
		t.Error("record should be automatic")
	}
	if run.Record.Type != model.TaskTypeExpense {
		t.Errorf("record type = %s, want EXPENSE", run.Record.Type)
	}

	wantNext := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)
	if !run.NextRunAt.Equal(wantNext) {
		t.Errorf("NextRunAt = %v, want %v", run.NextRunAt, wantNext)
	}
	if out.Task.RunCount != task.RunCount+1 {
		t.Errorf("RunCount = %d, want %d", out.Task.RunCount, task.RunCount+1)
	}
}

func TestExecute_IncomeDelta(t *testing.T) {
	m := newMockRepository()
	task := fixedTask(model.TaskTypeIncome)
	m.tasks[task.ID] = task

	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(m, now)

	if _, err := uc.Execute(context.Background(), task, now); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := m.appliedRuns[0].BalanceDelta; got != 1500 {
		t.Errorf("BalanceDelta = %v, want 1500", got)
	}
}

func TestExecute_TransferKeepsBalance(t *testing.T) {
	m := newMockRepository()
	task := fixedTask(model.TaskTypeTransfer)
	m.tasks[task.ID] = task

	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(m, now)

	if _, err := uc.Execute(context.Background(), task, now); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := m.appliedRuns[0].BalanceDelta; got != 0 {
		t.Errorf("BalanceDelta = %v, want 0 for TRANSFER", got)
	}
	if got := m.appliedRuns[0].Record.Amount; got != 1500 {
		t.Errorf("record amount = %v, want 1500", got)
	}
}

func TestExecuteNow(t *testing.T) {
	m := newMockRepository()
	task := fixedTask(model.TaskTypeExpense)
	m.tasks[task.ID] = task

	now := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(m, now)

	out, err := uc.ExecuteNow(context.Background(), model.Scope{UserID: "user-1"}, task.ID)
	if err != nil {
		t.Fatalf("ExecuteNow() error = %v", err)
	}
	if len(m.appliedRuns) != 1 {
		t.Fatalf("ApplyRun called %d times, want 1", len(m.appliedRuns))
	}
	if out.Record.Date != now {
		t.Errorf("record date = %v, want %v", out.Record.Date, now)
	}
	// Even an early manual run advances the cursor past now.
	if out.Task.NextRunAt == nil || !out.Task.NextRunAt.After(now) {
		t.Errorf("NextRunAt = %v, want after %v", out.Task.NextRunAt, now)
	}
}

func TestExecuteNow_NotFound(t *testing.T) {
	m := newMockRepository()
	task := fixedTask(model.TaskTypeExpense)
	m.tasks[task.ID] = task

	uc := newTestUseCase(m, time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC))

	if _, err := uc.ExecuteNow(context.Background(), model.Scope{UserID: "someone-else"}, task.ID); !errors.Is(err, scheduledtask.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if len(m.appliedRuns) != 0 {
		t.Fatalf("ApplyRun called %d times, want 0", len(m.appliedRuns))
	}
}

func TestExecute_MissingAccount(t *testing.T) {
	m := newMockRepository()
	task := fixedTask(model.TaskTypeExpense)
	m.tasks[task.ID] = task
	m.applyErr = repo.ErrNoSuchAccount

	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(m, now)

	_, err := uc.Execute(context.Background(), task, now)
	if !errors.Is(err, scheduledtask.ErrAccountNotFound) {
		t.Fatalf("Execute() error = %v, want ErrAccountNotFound", err)
	}

	if len(m.logs) != 1 {
		t.Fatalf("failure log count = %d, want 1", len(m.logs))
	}
	if m.logs[0].Status != model.TaskLogFailed {
		t.Errorf("log status = %s, want FAILED", m.logs[0].Status)
	}

	// Nothing else must change on failure.
	if got := m.tasks[task.ID].RunCount; got != 0 {
		t.Errorf("RunCount after failed run = %d, want 0", got)
	}
}

func TestListDue_FiltersDisabledAndEnded(t *testing.T) {
	m := newMockRepository()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	due := fixedTask(model.TaskTypeExpense)
	m.tasks[due.ID] = due

	disabled := fixedTask(model.TaskTypeExpense)
	disabled.ID = "task-disabled"
	disabled.IsEnabled = false
	m.tasks[disabled.ID] = disabled

	ended := fixedTask(model.TaskTypeExpense)
	ended.ID = "task-ended"
	past := now.AddDate(0, -1, 0)
	ended.EndDate = &past
	m.tasks[ended.ID] = ended

	uc := newTestUseCase(m, now)
	tasks, err := uc.ListDue(context.Background(), now, 0)
	if err != nil {
		t.Fatalf("ListDue() error = %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != due.ID {
		t.Errorf("ListDue() = %v, want only %s", tasks, due.ID)
	}
}
