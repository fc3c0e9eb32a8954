package parsing

import (
	"context"

	"finbook/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse turns free-form financial text into structured events, trying
	// providers in region order until one succeeds. Every attempt leaves
	// an audit log row.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)

	// ListAudit returns the user's provider attempt history.
	ListAudit(ctx context.Context, sc model.Scope, input ListAuditInput) (ListAuditOutput, error)
}
