package httpserver

import (
	"context"

	"finbook/internal/ledger"
	"finbook/internal/model"
)

// accountNameSource adapts the ledger use case to the voice-note parser's
// account list dependency.
type accountNameSource struct {
	uc ledger.UseCase
}

func (s accountNameSource) AccountNames(ctx context.Context, sc model.Scope) ([]string, error) {
	out, err := s.uc.ListAccounts(ctx, sc)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(out.Accounts))
	for _, a := range out.Accounts {
		names = append(names, a.Name)
	}
	return names, nil
}
