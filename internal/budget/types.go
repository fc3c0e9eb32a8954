package budget

import "finbook/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Category    string
	Amount      float64
	Month       string // YYYY-MM
	IsRecurring bool
}

type ListInput struct {
	Month string // optional filter
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Budget model.Budget
}

type ListOutput struct {
	Budgets []model.Budget
}
