package http

import (
	"fmt"
	"time"

	"finbook/internal/model"
	"finbook/internal/parsing"
)

// --- Request DTOs ---

type parseReq struct {
	Text          string `json:"text"           binding:"required,min=1,max=4000"`
	ReferenceDate string `json:"reference_date" binding:"omitempty"`

	referenceDate time.Time
}

func (r *parseReq) validate() error {
	if r.ReferenceDate == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", r.ReferenceDate)
	if err != nil {
		return fmt.Errorf("reference_date must be YYYY-MM-DD")
	}
	r.referenceDate = d
	return nil
}

func (r *parseReq) toInput(headerRegion string) parsing.ParseInput {
	return parsing.ParseInput{
		Text:          r.Text,
		ReferenceDate: r.referenceDate,
		HeaderRegion:  headerRegion,
	}
}

type auditReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// --- Response DTOs ---

type parseResp struct {
	Events   []model.FinancialEvent `json:"events"`
	Provider string                 `json:"provider"`
	Region   string                 `json:"region"`
}

func (h *handler) newParseResp(out parsing.ParseOutput) parseResp {
	events := out.Events.Events
	if events == nil {
		events = []model.FinancialEvent{}
	}
	return parseResp{
		Events:   events,
		Provider: out.Provider,
		Region:   string(out.Region),
	}
}

type auditEntryResp struct {
	ID           string    `json:"id"`
	UserRegion   string    `json:"user_region"`
	Provider     string    `json:"provider"`
	Status       string    `json:"status"`
	DurationMs   int64     `json:"duration_ms"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type auditResp struct {
	Logs   []auditEntryResp `json:"logs"`
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

func (h *handler) newAuditResp(out parsing.ListAuditOutput) auditResp {
	logs := make([]auditEntryResp, len(out.Logs))
	for i, entry := range out.Logs {
		logs[i] = auditEntryResp{
			ID:           entry.ID,
			UserRegion:   string(entry.UserRegion),
			Provider:     entry.Provider,
			Status:       string(entry.Status),
			DurationMs:   entry.DurationMs,
			ErrorMessage: entry.ErrorMessage,
			CreatedAt:    entry.CreatedAt,
		}
	}
	return auditResp{
		Logs:   logs,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type healthResp struct {
	Status    string   `json:"status"`
	Providers []string `json:"providers"`
}
