package repository

import (
	"time"

	"finbook/internal/model"
)

// CreateAccountOptions holds parameters for inserting a new account.
type CreateAccountOptions struct {
	UserID   string
	Name     string
	Type     string
	Balance  float64
	Currency string
}

// GetOneAccountOptions holds filter parameters for fetching one account.
type GetOneAccountOptions struct {
	ID     string
	UserID string
}

// CreateRecordOptions holds parameters for booking one manual record.
// BalanceDelta is applied to the account inside the same transaction.
type CreateRecordOptions struct {
	UserID       string
	AccountID    string
	Type         model.TaskType
	Amount       float64
	BalanceDelta float64
	Category     string
	Description  string
	Date         time.Time
}

// ListRecordsOptions holds filter and pagination parameters for records.
type ListRecordsOptions struct {
	UserID    string
	AccountID string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}
