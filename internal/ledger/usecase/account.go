package usecase

import (
	"context"

	"finbook/internal/ledger"
	repo "finbook/internal/ledger/repository"
	"finbook/internal/model"
)

const defaultCurrency = "USD"

// CreateAccount creates a new money account for the user.
func (uc *implUseCase) CreateAccount(ctx context.Context, sc model.Scope, input ledger.CreateAccountInput) (ledger.CreateAccountOutput, error) {
	currency := input.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	account, err := uc.repo.CreateAccount(ctx, repo.CreateAccountOptions{
		UserID:   sc.UserID,
		Name:     input.Name,
		Type:     input.Type,
		Balance:  input.Balance,
		Currency: currency,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateAccount: %v", err)
		return ledger.CreateAccountOutput{}, err
	}

	return ledger.CreateAccountOutput{Account: account}, nil
}

// ListAccounts returns all of the user's accounts.
func (uc *implUseCase) ListAccounts(ctx context.Context, sc model.Scope) (ledger.ListAccountsOutput, error) {
	accounts, err := uc.repo.ListAccounts(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListAccounts: %v", err)
		return ledger.ListAccountsOutput{}, err
	}

	return ledger.ListAccountsOutput{Accounts: accounts}, nil
}
