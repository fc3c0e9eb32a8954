package repository

import (
	"context"

	"finbook/internal/model"
)

// Repository is the composed interface for the ledger data store.
type Repository interface {
	AccountRepository
	RecordRepository
}

// AccountRepository defines data access methods for accounts.
type AccountRepository interface {
	CreateAccount(ctx context.Context, opt CreateAccountOptions) (model.Account, error)
	GetOneAccount(ctx context.Context, opt GetOneAccountOptions) (model.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]model.Account, error)
}

// RecordRepository defines data access methods for bookkeeping records.
type RecordRepository interface {
	// CreateRecord inserts the record and shifts the account balance in
	// one transaction.
	CreateRecord(ctx context.Context, opt CreateRecordOptions) (model.Record, error)
	ListRecords(ctx context.Context, opt ListRecordsOptions) ([]model.Record, int, error)
}
