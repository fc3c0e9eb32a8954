package budget

import (
	"context"

	"finbook/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// RolloverRecurring copies recurring budgets from the previous month
	// into month where not already present. Returns the number created.
	RolloverRecurring(ctx context.Context, month string) (int, error)
}
