package model

import "time"

// TaskType is the financial effect of a scheduled task.
type TaskType string

const (
	TaskTypeIncome   TaskType = "INCOME"
	TaskTypeExpense  TaskType = "EXPENSE"
	TaskTypeTransfer TaskType = "TRANSFER"
)

// TaskFrequency is how often a scheduled task recurs.
type TaskFrequency string

const (
	FrequencyDaily   TaskFrequency = "DAILY"
	FrequencyWeekly  TaskFrequency = "WEEKLY"
	FrequencyMonthly TaskFrequency = "MONTHLY"
	FrequencyYearly  TaskFrequency = "YEARLY"
)

// ScheduledTask is a recurring financial instruction owned by a user.
// NextRunAt always holds the soonest due occurrence consistent with the
// frequency parameters and the validity window [StartDate, EndDate].
type ScheduledTask struct {
	ID          string
	UserID      string
	Name        string
	Type        TaskType
	Amount      float64
	Category    string
	AccountID   string
	Frequency   TaskFrequency
	DayOfMonth  *int // 1-31, meaning depends on Frequency
	DayOfWeek   *int // 0-6, Sunday = 0
	MonthOfYear *int // 1-12
	ExecuteTime string
	StartDate   time.Time
	EndDate     *time.Time
	IsEnabled   bool
	NextRunAt   *time.Time
	LastRunAt   *time.Time
	RunCount    int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskLogStatus is the outcome of one execution attempt.
type TaskLogStatus string

const (
	TaskLogSuccess TaskLogStatus = "SUCCESS"
	TaskLogFailed  TaskLogStatus = "FAILED"
)

// ScheduledTaskLog is an immutable audit record of one execution attempt.
type ScheduledTaskLog struct {
	ID         string
	TaskID     string
	RecordID   string // set on success
	Status     TaskLogStatus
	Message    string
	ExecutedAt time.Time
}
