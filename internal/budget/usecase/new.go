package usecase

import (
	"finbook/internal/budget"
	"finbook/internal/budget/repository"
	"finbook/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
}

// New creates a new budget UseCase.
func New(l log.Logger, repo repository.Repository) budget.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
