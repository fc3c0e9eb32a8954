package budget

import "errors"

var (
	ErrDuplicateBudget = errors.New("budget already exists for this category and month")
	ErrBudgetNotFound  = errors.New("budget not found")
)
