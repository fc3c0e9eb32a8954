package usecase

import (
	"context"
	"errors"
	"time"

	"finbook/internal/budget"
	"finbook/internal/budget/repository"
	"finbook/internal/model"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input budget.CreateInput) (budget.CreateOutput, error) {
	b, err := uc.repo.CreateBudget(ctx, repository.CreateBudgetOptions{
		UserID:      sc.UserID,
		Category:    input.Category,
		Amount:      input.Amount,
		Month:       input.Month,
		IsRecurring: input.IsRecurring,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return budget.CreateOutput{}, budget.ErrDuplicateBudget
		}
		uc.l.Errorf(ctx, "budget.usecase.Create: %v", err)
		return budget.CreateOutput{}, err
	}

	return budget.CreateOutput{Budget: b}, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input budget.ListInput) (budget.ListOutput, error) {
	budgets, err := uc.repo.ListBudgets(ctx, repository.ListBudgetsOptions{
		UserID: sc.UserID,
		Month:  input.Month,
	})
	if err != nil {
		uc.l.Errorf(ctx, "budget.usecase.List: %v", err)
		return budget.ListOutput{}, err
	}

	return budget.ListOutput{Budgets: budgets}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	deleted, err := uc.repo.DeleteBudget(ctx, id, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "budget.usecase.Delete: %v", err)
		return err
	}
	if !deleted {
		return budget.ErrBudgetNotFound
	}

	return nil
}

func (uc *implUseCase) RolloverRecurring(ctx context.Context, month string) (int, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, err
	}
	prevMonth := t.AddDate(0, -1, 0).Format("2006-01")

	created, err := uc.repo.RolloverRecurring(ctx, prevMonth, month)
	if err != nil {
		uc.l.Errorf(ctx, "budget.usecase.RolloverRecurring: %v", err)
		return created, err
	}
	if created > 0 {
		uc.l.Infof(ctx, "budget.usecase.RolloverRecurring: carried %d recurring budgets into %s", created, month)
	}

	return created, nil
}
