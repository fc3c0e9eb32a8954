package usecase

import (
	"context"

	"finbook/internal/model"
	"finbook/internal/parsing"
	repo "finbook/internal/parsing/repository"
)

// ListAudit returns the user's provider attempt history, newest first.
func (uc *implUseCase) ListAudit(ctx context.Context, sc model.Scope, input parsing.ListAuditInput) (parsing.ListAuditOutput, error) {
	logs, total, err := uc.audits.List(ctx, repo.ListAuditOptions{
		UserID: sc.UserID,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListAudit List: %v", err)
		return parsing.ListAuditOutput{}, err
	}

	return parsing.ListAuditOutput{
		Logs:   logs,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
