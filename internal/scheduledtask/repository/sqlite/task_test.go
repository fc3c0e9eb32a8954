package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"finbook/internal/db"
	"finbook/internal/model"
	repo "finbook/internal/scheduledtask/repository"
	"finbook/pkg/log"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func insertAccount(t *testing.T, database *sql.DB, id, userID string, balance float64) {
	t.Helper()
	_, err := database.Exec(
		"INSERT INTO accounts (id, user_id, name, balance) VALUES (?, ?, ?, ?)",
		id, userID, "main", balance,
	)
	if err != nil {
		t.Fatalf("insert account: %v", err)
	}
}

func accountBalance(t *testing.T, database *sql.DB, id string) float64 {
	t.Helper()
	var balance float64
	if err := database.QueryRow("SELECT balance FROM accounts WHERE id = ?", id).Scan(&balance); err != nil {
		t.Fatalf("read balance: %v", err)
	}
	return balance
}

func createTestTask(t *testing.T, r repo.Repository, userID, accountID string, amount float64) model.ScheduledTask {
	t.Helper()
	task, err := r.CreateTask(context.Background(), repo.CreateTaskOptions{
		UserID:      userID,
		Name:        "Salary",
		Type:        model.TaskTypeIncome,
		Amount:      amount,
		Category:    "INCOME_SALARY",
		AccountID:   accountID,
		Frequency:   model.FrequencyMonthly,
		ExecuteTime: "09:00",
		StartDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		NextRunAt:   time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

func TestApplyRun(t *testing.T) {
	database := openTestDB(t)
	r := New(database, log.Init(log.ZapConfig{Mode: "test"}))

	insertAccount(t, database, "acc-1", "user-1", 500)
	task := createTestTask(t, r, "user-1", "acc-1", 100)

	now := time.Date(2026, 3, 10, 9, 1, 0, 0, time.UTC)
	next := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)
	rec := model.Record{
		ID:          "rec-1",
		UserID:      "user-1",
		AccountID:   "acc-1",
		Type:        model.TaskTypeIncome,
		Amount:      100,
		Category:    "INCOME_SALARY",
		Description: task.Name,
		Date:        now,
	}

	err := r.ApplyRun(context.Background(), repo.ApplyRunOptions{
		Task:         task,
		Record:       rec,
		BalanceDelta: 100,
		NextRunAt:    next,
		ExecutedAt:   now,
		LogMessage:   "executed INCOME INCOME_SALARY 100.00",
	})
	if err != nil {
		t.Fatalf("ApplyRun() error = %v", err)
	}

	if got := accountBalance(t, database, "acc-1"); got != 600 {
		t.Errorf("balance = %v, want 600", got)
	}

	updated, err := r.GetOneTask(context.Background(), repo.GetOneTaskOptions{ID: task.ID})
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if updated.RunCount != 1 {
		t.Errorf("run_count = %d, want 1", updated.RunCount)
	}
	if updated.NextRunAt == nil || !updated.NextRunAt.Equal(next) {
		t.Errorf("next_run_at = %v, want %v", updated.NextRunAt, next)
	}
	if updated.LastRunAt == nil || !updated.LastRunAt.Equal(now) {
		t.Errorf("last_run_at = %v, want %v", updated.LastRunAt, now)
	}

	var isAutomatic int
	if err := database.QueryRow("SELECT is_automatic FROM records WHERE id = ?", rec.ID).Scan(&isAutomatic); err != nil {
		t.Fatalf("read record: %v", err)
	}
	if isAutomatic != 1 {
		t.Errorf("is_automatic = %d, want 1", isAutomatic)
	}

	var status, recordID string
	err = database.QueryRow(
		"SELECT status, record_id FROM scheduled_task_logs WHERE task_id = ?", task.ID,
	).Scan(&status, &recordID)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if status != string(model.TaskLogSuccess) {
		t.Errorf("log status = %q, want SUCCESS", status)
	}
	if recordID != rec.ID {
		t.Errorf("log record_id = %q, want %q", recordID, rec.ID)
	}
}

func TestApplyRun_MissingAccount(t *testing.T) {
	database := openTestDB(t)
	r := New(database, log.Init(log.ZapConfig{Mode: "test"}))

	task := createTestTask(t, r, "user-1", "acc-missing", 100)

	err := r.ApplyRun(context.Background(), repo.ApplyRunOptions{
		Task:       task,
		Record:     model.Record{ID: "rec-1", UserID: "user-1", AccountID: "acc-missing", Type: model.TaskTypeIncome, Amount: 100, Date: time.Now()},
		NextRunAt:  time.Now().AddDate(0, 1, 0),
		ExecutedAt: time.Now(),
	})
	if !errors.Is(err, repo.ErrNoSuchAccount) {
		t.Fatalf("expected ErrNoSuchAccount, got %v", err)
	}

	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM records").Scan(&count); err != nil {
		t.Fatalf("count records: %v", err)
	}
	if count != 0 {
		t.Errorf("records = %d, want 0", count)
	}

	updated, err := r.GetOneTask(context.Background(), repo.GetOneTaskOptions{ID: task.ID})
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if updated.RunCount != 0 {
		t.Errorf("run_count = %d, want 0", updated.RunCount)
	}
}

func TestApplyRun_FailedStepRollsBack(t *testing.T) {
	database := openTestDB(t)
	r := New(database, log.Init(log.ZapConfig{Mode: "test"}))

	insertAccount(t, database, "acc-1", "user-1", 500)
	task := createTestTask(t, r, "user-1", "acc-1", 100)

	// A record with this ID already exists, so the insert inside the run
	// fails and the whole unit must roll back.
	_, err := database.Exec(
		"INSERT INTO records (id, user_id, account_id, type, amount, date) VALUES (?, ?, ?, ?, ?, ?)",
		"rec-dup", "user-1", "acc-1", "INCOME", 1, time.Now(),
	)
	if err != nil {
		t.Fatalf("seed record: %v", err)
	}

	err = r.ApplyRun(context.Background(), repo.ApplyRunOptions{
		Task:         task,
		Record:       model.Record{ID: "rec-dup", UserID: "user-1", AccountID: "acc-1", Type: model.TaskTypeIncome, Amount: 100, Date: time.Now()},
		BalanceDelta: 100,
		NextRunAt:    time.Now().AddDate(0, 1, 0),
		ExecutedAt:   time.Now(),
	})
	if err == nil {
		t.Fatal("expected error for duplicate record")
	}

	if got := accountBalance(t, database, "acc-1"); got != 500 {
		t.Errorf("balance = %v, want 500 after rollback", got)
	}

	updated, err := r.GetOneTask(context.Background(), repo.GetOneTaskOptions{ID: task.ID})
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if updated.RunCount != 0 {
		t.Errorf("run_count = %d, want 0 after rollback", updated.RunCount)
	}

	var logs int
	if err := database.QueryRow("SELECT COUNT(*) FROM scheduled_task_logs").Scan(&logs); err != nil {
		t.Fatalf("count logs: %v", err)
	}
	if logs != 0 {
		t.Errorf("logs = %d, want 0 after rollback", logs)
	}
}
