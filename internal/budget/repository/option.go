package repository

// CreateBudgetOptions holds parameters for inserting a new budget.
type CreateBudgetOptions struct {
	UserID      string
	Category    string
	Amount      float64
	Month       string
	IsRecurring bool
}

// ListBudgetsOptions holds filter parameters for listing budgets.
type ListBudgetsOptions struct {
	UserID string
	Month  string
}
