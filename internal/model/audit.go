package model

import "time"

// AuditStatus is the outcome of one provider parse attempt.
type AuditStatus string

const (
	AuditSuccess AuditStatus = "SUCCESS"
	AuditFailure AuditStatus = "FAILURE"
)

// AIAuditLog is an append-only record of one provider parse attempt.
type AIAuditLog struct {
	ID           string
	UserID       string
	UserRegion   Region
	Provider     string
	Status       AuditStatus
	DurationMs   int64
	ErrorMessage string
	CreatedAt    time.Time
}
