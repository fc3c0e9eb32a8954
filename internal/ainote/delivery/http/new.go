package http

import (
	"finbook/internal/ainote"
	"finbook/pkg/log"
)

type handler struct {
	l  log.Logger
	uc ainote.UseCase
}

// New creates a new HTTP handler for the voice-note parsing domain.
func New(l log.Logger, uc ainote.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
