package ledger

import (
	"time"

	"finbook/internal/model"
)

// --- UseCase Inputs ---

type CreateAccountInput struct {
	Name     string
	Type     string
	Balance  float64
	Currency string
}

type CreateRecordInput struct {
	AccountID   string
	Type        model.TaskType
	Amount      float64
	Category    string
	Description string
	Date        time.Time
}

type ListRecordsInput struct {
	AccountID string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// --- UseCase Outputs ---

type CreateAccountOutput struct {
	Account model.Account
}

type ListAccountsOutput struct {
	Accounts []model.Account
}

type CreateRecordOutput struct {
	Record model.Record
}

type ListRecordsOutput struct {
	Records []model.Record
	Total   int
	Limit   int
	Offset  int
}
