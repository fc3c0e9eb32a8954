package repository

import (
	"context"

	"finbook/internal/model"
)

// Repository defines data access methods for budgets.
type Repository interface {
	CreateBudget(ctx context.Context, opt CreateBudgetOptions) (model.Budget, error)
	ListBudgets(ctx context.Context, opt ListBudgetsOptions) ([]model.Budget, error)
	DeleteBudget(ctx context.Context, id, userID string) (bool, error)

	// RolloverRecurring copies recurring budgets of prevMonth into month
	// for every user, skipping pairs that already exist.
	RolloverRecurring(ctx context.Context, prevMonth, month string) (int, error)
}
