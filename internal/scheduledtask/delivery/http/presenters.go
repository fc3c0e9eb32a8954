package http

import (
	"fmt"
	"regexp"
	"time"

	"finbook/internal/model"
	"finbook/internal/scheduledtask"
	"finbook/pkg/response"
)

func datePtr(t *time.Time) *response.Date {
	if t == nil {
		return nil
	}
	d := response.Date(*t)
	return &d
}

var executeTimeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// --- Request DTOs ---

type createReq struct {
	Name        string  `json:"name"          binding:"required,min=1,max=255"`
	Type        string  `json:"type"          binding:"required,oneof=INCOME EXPENSE TRANSFER"`
	Amount      float64 `json:"amount"        binding:"required,gt=0"`
	Category    string  `json:"category"      binding:"max=100"`
	AccountID   string  `json:"account_id"    binding:"required"`
	Frequency   string  `json:"frequency"     binding:"required,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	DayOfMonth  *int    `json:"day_of_month"  binding:"omitempty,min=1,max=31"`
	DayOfWeek   *int    `json:"day_of_week"   binding:"omitempty,min=0,max=6"`
	MonthOfYear *int    `json:"month_of_year" binding:"omitempty,min=1,max=12"`
	ExecuteTime string  `json:"execute_time"  binding:"omitempty"`
	StartDate   string  `json:"start_date"    binding:"required"`
	EndDate     string  `json:"end_date"      binding:"omitempty"`
	Description string  `json:"description"   binding:"max=1000"`

	startDate time.Time
	endDate   *time.Time
}

func (r *createReq) validate() error {
	if r.ExecuteTime != "" && !executeTimeRe.MatchString(r.ExecuteTime) {
		return fmt.Errorf("execute_time must be HH:MM")
	}

	start, err := parseDate(r.StartDate)
	if err != nil {
		return fmt.Errorf("start_date: %w", err)
	}
	r.startDate = start

	if r.EndDate != "" {
		end, err := parseDate(r.EndDate)
		if err != nil {
			return fmt.Errorf("end_date: %w", err)
		}
		if end.Before(start) {
			return fmt.Errorf("end_date must not be before start_date")
		}
		r.endDate = &end
	}
	return nil
}

func (r *createReq) toInput() scheduledtask.CreateInput {
	return scheduledtask.CreateInput{
		Name:        r.Name,
		Type:        model.TaskType(r.Type),
		Amount:      r.Amount,
		Category:    r.Category,
		AccountID:   r.AccountID,
		Frequency:   model.TaskFrequency(r.Frequency),
		DayOfMonth:  r.DayOfMonth,
		DayOfWeek:   r.DayOfWeek,
		MonthOfYear: r.MonthOfYear,
		ExecuteTime: r.ExecuteTime,
		StartDate:   r.startDate,
		EndDate:     r.endDate,
		Description: r.Description,
	}
}

// ---

type listReq struct {
	Enabled *bool `form:"enabled"`
	Limit   int   `form:"limit"`
	Offset  int   `form:"offset"`
}

func (r listReq) toInput() scheduledtask.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return scheduledtask.ListInput{
		Enabled: r.Enabled,
		Limit:   limit,
		Offset:  offset,
	}
}

// ---

type updateReq struct {
	ID          string   `json:"-"` // populated from URI param
	Name        *string  `json:"name"          binding:"omitempty,min=1,max=255"`
	Amount      *float64 `json:"amount"        binding:"omitempty,gt=0"`
	Category    *string  `json:"category"      binding:"omitempty,max=100"`
	Frequency   *string  `json:"frequency"     binding:"omitempty,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	DayOfMonth  *int     `json:"day_of_month"  binding:"omitempty,min=1,max=31"`
	DayOfWeek   *int     `json:"day_of_week"   binding:"omitempty,min=0,max=6"`
	MonthOfYear *int     `json:"month_of_year" binding:"omitempty,min=1,max=12"`
	ExecuteTime *string  `json:"execute_time"  binding:"omitempty"`
	StartDate   *string  `json:"start_date"    binding:"omitempty"`
	EndDate     *string  `json:"end_date"      binding:"omitempty"`
	Description *string  `json:"description"   binding:"omitempty,max=1000"`

	startDate *time.Time
	endDate   *time.Time
}

func (r *updateReq) validate() error {
	if r.ExecuteTime != nil && !executeTimeRe.MatchString(*r.ExecuteTime) {
		return fmt.Errorf("execute_time must be HH:MM")
	}
	if r.StartDate != nil {
		start, err := parseDate(*r.StartDate)
		if err != nil {
			return fmt.Errorf("start_date: %w", err)
		}
		r.startDate = &start
	}
	if r.EndDate != nil {
		end, err := parseDate(*r.EndDate)
		if err != nil {
			return fmt.Errorf("end_date: %w", err)
		}
		r.endDate = &end
	}
	return nil
}

func (r *updateReq) toInput() scheduledtask.UpdateInput {
	input := scheduledtask.UpdateInput{
		ID:          r.ID,
		Name:        r.Name,
		Amount:      r.Amount,
		Category:    r.Category,
		DayOfMonth:  r.DayOfMonth,
		DayOfWeek:   r.DayOfWeek,
		MonthOfYear: r.MonthOfYear,
		ExecuteTime: r.ExecuteTime,
		StartDate:   r.startDate,
		EndDate:     r.endDate,
		Description: r.Description,
	}
	if r.Frequency != nil {
		freq := model.TaskFrequency(*r.Frequency)
		input.Frequency = &freq
	}
	return input
}

// ---

type toggleReq struct {
	ID      string `json:"-"`
	Enabled *bool  `json:"enabled" binding:"required"`
}

type logsReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// --- Response DTOs ---

type taskResp struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Amount      float64    `json:"amount"`
	Category    string     `json:"category"`
	AccountID   string     `json:"account_id"`
	Frequency   string     `json:"frequency"`
	DayOfMonth  *int       `json:"day_of_month,omitempty"`
	DayOfWeek   *int       `json:"day_of_week,omitempty"`
	MonthOfYear *int       `json:"month_of_year,omitempty"`
	ExecuteTime string         `json:"execute_time"`
	StartDate   response.Date  `json:"start_date"`
	EndDate     *response.Date `json:"end_date,omitempty"`
	IsEnabled   bool       `json:"is_enabled"`
	NextRunAt   *time.Time `json:"next_run_at,omitempty"`
	LastRunAt   *time.Time `json:"last_run_at,omitempty"`
	RunCount    int        `json:"run_count"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newTaskResp(task model.ScheduledTask) taskResp {
	return taskResp{
		ID:          task.ID,
		Name:        task.Name,
		Type:        string(task.Type),
		Amount:      task.Amount,
		Category:    task.Category,
		AccountID:   task.AccountID,
		Frequency:   string(task.Frequency),
		DayOfMonth:  task.DayOfMonth,
		DayOfWeek:   task.DayOfWeek,
		MonthOfYear: task.MonthOfYear,
		ExecuteTime: task.ExecuteTime,
		StartDate:   response.Date(task.StartDate),
		EndDate:     datePtr(task.EndDate),
		IsEnabled:   task.IsEnabled,
		NextRunAt:   task.NextRunAt,
		LastRunAt:   task.LastRunAt,
		RunCount:    task.RunCount,
		Description: task.Description,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out scheduledtask.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, task := range out.Tasks {
		tasks[i] = newTaskResp(task)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type executeResp struct {
	Task     taskResp `json:"task"`
	RecordID string   `json:"record_id"`
}

func newExecuteResp(out scheduledtask.ExecuteOutput) executeResp {
	return executeResp{
		Task:     newTaskResp(out.Task),
		RecordID: out.Record.ID,
	}
}

type logResp struct {
	ID         string            `json:"id"`
	TaskID     string            `json:"task_id"`
	RecordID   string            `json:"record_id,omitempty"`
	Status     string            `json:"status"`
	Message    string            `json:"message"`
	ExecutedAt response.DateTime `json:"executed_at"`
}

type listLogsResp struct {
	Logs   []logResp `json:"logs"`
	Total  int       `json:"total"`
	Limit  int       `json:"limit"`
	Offset int       `json:"offset"`
}

func (h *handler) newListLogsResp(out scheduledtask.ListLogsOutput) listLogsResp {
	logs := make([]logResp, len(out.Logs))
	for i, entry := range out.Logs {
		logs[i] = logResp{
			ID:         entry.ID,
			TaskID:     entry.TaskID,
			RecordID:   entry.RecordID,
			Status:     string(entry.Status),
			Message:    entry.Message,
			ExecutedAt: response.DateTime(entry.ExecutedAt),
		}
	}
	return listLogsResp{
		Logs:   logs,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
