package ainote

import (
	"context"

	"finbook/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse turns a free-form voice-note transcript into transaction
	// suggestions. It never fails outright: when no LLM is configured or
	// the LLM call fails, a deterministic fallback parser answers instead.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)
}

// AccountSource lists the caller's account names so the parser can map
// phrases like "from my savings" onto a real account.
type AccountSource interface {
	AccountNames(ctx context.Context, sc model.Scope) ([]string, error)
}
