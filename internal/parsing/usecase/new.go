package usecase

import (
	"time"

	"finbook/internal/parsing/provider"
	"finbook/internal/parsing/repository"
	"finbook/internal/region"
	"finbook/pkg/log"
)

const defaultAttemptTimeout = 8 * time.Second

// implUseCase is the private implementation of parsing.UseCase.
type implUseCase struct {
	router         *provider.Router
	detector       region.Detector
	audits         repository.AuditRepository
	l              log.Logger
	attemptTimeout time.Duration
	now            func() time.Time
}

// New creates a new parsing UseCase implementation.
func New(l log.Logger, router *provider.Router, detector region.Detector, audits repository.AuditRepository, attemptTimeout time.Duration) *implUseCase {
	if attemptTimeout <= 0 {
		attemptTimeout = defaultAttemptTimeout
	}
	return &implUseCase{
		router:         router,
		detector:       detector,
		audits:         audits,
		l:              l,
		attemptTimeout: attemptTimeout,
		now:            time.Now,
	}
}
