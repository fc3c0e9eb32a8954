package ledger

import (
	"context"

	"finbook/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	CreateAccount(ctx context.Context, sc model.Scope, input CreateAccountInput) (CreateAccountOutput, error)
	ListAccounts(ctx context.Context, sc model.Scope) (ListAccountsOutput, error)

	// CreateRecord books a manual entry and shifts the account balance
	// accordingly in one transaction.
	CreateRecord(ctx context.Context, sc model.Scope, input CreateRecordInput) (CreateRecordOutput, error)
	ListRecords(ctx context.Context, sc model.Scope, input ListRecordsInput) (ListRecordsOutput, error)
}
