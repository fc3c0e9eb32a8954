package http

import (
	"finbook/internal/scheduledtask"
	"finbook/pkg/log"
)

type handler struct {
	l  log.Logger
	uc scheduledtask.UseCase
}

// New creates a new HTTP handler for the scheduled task domain.
func New(l log.Logger, uc scheduledtask.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
