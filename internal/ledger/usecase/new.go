package usecase

import (
	"finbook/internal/ledger/repository"
	"finbook/pkg/log"
)

// implUseCase is the private implementation of ledger.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new ledger UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
