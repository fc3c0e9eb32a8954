package parsing

import (
	"time"

	"finbook/internal/model"
)

// --- UseCase Inputs ---

type ParseInput struct {
	Text          string
	ReferenceDate time.Time
	HeaderRegion  string // raw X-Region header, detector fallback
}

type ListAuditInput struct {
	Limit  int
	Offset int
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Events   model.FinancialEventsResponse
	Provider string
	Region   model.Region
}

type ListAuditOutput struct {
	Logs   []model.AIAuditLog
	Total  int
	Limit  int
	Offset int
}
