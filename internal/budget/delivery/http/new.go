package http

import (
	"finbook/internal/budget"
	"finbook/pkg/log"
)

type handler struct {
	l  log.Logger
	uc budget.UseCase
}

// New creates a new HTTP handler for the budget domain.
func New(l log.Logger, uc budget.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
