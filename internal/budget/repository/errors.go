package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert budget")
	ErrFailedToList   = errors.New("failed to list budgets")
	ErrFailedToDelete = errors.New("failed to delete budget")
	ErrDuplicate      = errors.New("budget already exists")
)
