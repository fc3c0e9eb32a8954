package provider

import (
	"context"
	"time"

	"finbook/internal/model"
)

// Provider is one AI vendor capable of parsing financial text.
type Provider interface {
	// Parse sends text to the vendor and returns the structured events.
	// referenceDate anchors relative dates ("yesterday", "next Monday").
	Parse(ctx context.Context, text string, referenceDate time.Time) (model.FinancialEventsResponse, error)

	// Name identifies the provider in audit logs.
	Name() string
}
