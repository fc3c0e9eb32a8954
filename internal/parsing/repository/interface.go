package repository

import (
	"context"
	"time"

	"finbook/internal/model"
)

// AuditRepository persists AI provider attempt logs.
type AuditRepository interface {
	Append(ctx context.Context, opt AppendAuditOptions) error
	List(ctx context.Context, opt ListAuditOptions) ([]model.AIAuditLog, int, error)
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
