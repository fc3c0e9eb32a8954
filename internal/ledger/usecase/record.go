package usecase

import (
	"context"
	"errors"

	"finbook/internal/ledger"
	repo "finbook/internal/ledger/repository"
	"finbook/internal/model"
)

// CreateRecord books one manual entry. INCOME raises the account balance,
// EXPENSE lowers it, TRANSFER leaves it unchanged.
func (uc *implUseCase) CreateRecord(ctx context.Context, sc model.Scope, input ledger.CreateRecordInput) (ledger.CreateRecordOutput, error) {
	var delta float64
	switch input.Type {
	case model.TaskTypeIncome:
		delta = input.Amount
	case model.TaskTypeExpense:
		delta = -input.Amount
	}

	record, err := uc.repo.CreateRecord(ctx, repo.CreateRecordOptions{
		UserID:       sc.UserID,
		AccountID:    input.AccountID,
		Type:         input.Type,
		Amount:       input.Amount,
		BalanceDelta: delta,
		Category:     input.Category,
		Description:  input.Description,
		Date:         input.Date,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNoSuchAccount) {
			return ledger.CreateRecordOutput{}, ledger.ErrAccountNotFound
		}
		uc.l.Errorf(ctx, "uc.CreateRecord: %v", err)
		return ledger.CreateRecordOutput{}, err
	}

	return ledger.CreateRecordOutput{Record: record}, nil
}

// ListRecords returns the user's records, newest first.
func (uc *implUseCase) ListRecords(ctx context.Context, sc model.Scope, input ledger.ListRecordsInput) (ledger.ListRecordsOutput, error) {
	records, total, err := uc.repo.ListRecords(ctx, repo.ListRecordsOptions{
		UserID:    sc.UserID,
		AccountID: input.AccountID,
		From:      input.From,
		To:        input.To,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRecords: %v", err)
		return ledger.ListRecordsOutput{}, err
	}

	return ledger.ListRecordsOutput{
		Records: records,
		Total:   total,
		Limit:   input.Limit,
		Offset:  input.Offset,
	}, nil
}
