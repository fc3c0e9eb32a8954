package usecase

import (
	"time"

	"finbook/internal/ainote"
	"finbook/pkg/gemini"
	"finbook/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	llm      gemini.IGemini
	accounts ainote.AccountSource
	now      func() time.Time
}

// New creates a new voice-note parsing UseCase. llm may be nil, in which
// case every request is answered by the deterministic fallback parser.
// accounts may also be nil; the default account name is used then.
func New(l log.Logger, llm gemini.IGemini, accounts ainote.AccountSource) ainote.UseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		accounts: accounts,
		now:      time.Now,
	}
}
