package usecase

import (
	"time"

	"finbook/internal/scheduledtask/repository"
	"finbook/pkg/log"
)

// implUseCase is the private implementation of scheduledtask.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

// New creates a new scheduled task UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}
