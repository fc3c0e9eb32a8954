package repository

import "finbook/internal/model"

// AppendAuditOptions holds one provider attempt outcome.
type AppendAuditOptions struct {
	UserID       string
	UserRegion   model.Region
	Provider     string
	Status       model.AuditStatus
	DurationMs   int64
	ErrorMessage string
}

// ListAuditOptions holds filter and pagination parameters for audit logs.
type ListAuditOptions struct {
	UserID string
	Limit  int
	Offset int
}
