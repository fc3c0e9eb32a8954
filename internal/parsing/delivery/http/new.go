package http

import (
	"finbook/internal/parsing"
	"finbook/pkg/log"
)

type handler struct {
	l         log.Logger
	uc        parsing.UseCase
	providers []string
}

// New creates a new HTTP handler for the parsing domain. providers is
// the configured chain, reported by the health endpoint.
func New(l log.Logger, uc parsing.UseCase, providers []string) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		providers: providers,
	}
}
