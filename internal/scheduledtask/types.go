package scheduledtask

import (
	"time"

	"finbook/internal/model"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Name        string
	Type        model.TaskType
	Amount      float64
	Category    string
	AccountID   string
	Frequency   model.TaskFrequency
	DayOfMonth  *int
	DayOfWeek   *int
	MonthOfYear *int
	ExecuteTime string
	StartDate   time.Time
	EndDate     *time.Time
	Description string
}

type ListInput struct {
	Enabled *bool
	Limit   int
	Offset  int
}

// UpdateInput carries a partial update. Nil pointers leave the field
// unchanged; schedule-affecting changes recompute the next run time.
type UpdateInput struct {
	ID          string
	Name        *string
	Amount      *float64
	Category    *string
	Frequency   *model.TaskFrequency
	DayOfMonth  *int
	DayOfWeek   *int
	MonthOfYear *int
	ExecuteTime *string
	StartDate   *time.Time
	EndDate     *time.Time
	Description *string
}

type ListLogsInput struct {
	TaskID string
	Limit  int
	Offset int
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.ScheduledTask
}

type ListOutput struct {
	Tasks  []model.ScheduledTask
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.ScheduledTask
}

type UpdateOutput struct {
	Task model.ScheduledTask
}

type ToggleOutput struct {
	Task model.ScheduledTask
}

type ExecuteOutput struct {
	Task   model.ScheduledTask
	Record model.Record
}

type ListLogsOutput struct {
	Logs   []model.ScheduledTaskLog
	Total  int
	Limit  int
	Offset int
}
