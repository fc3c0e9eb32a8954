package usecase

import (
	"context"

	"finbook/internal/model"
	"finbook/internal/parsing"
	repo "finbook/internal/parsing/repository"
)

// Parse tries the region's provider chain in order with a per-attempt
// deadline. The first provider that returns valid events wins; every
// attempt is audited either way.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input parsing.ParseInput) (parsing.ParseOutput, error) {
	userRegion := uc.detector.Detect(ctx, sc, input.HeaderRegion)

	referenceDate := input.ReferenceDate
	if referenceDate.IsZero() {
		referenceDate = uc.now()
	}

	chain := uc.router.Chain(userRegion)
	if len(chain) == 0 {
		uc.l.Errorf(ctx, "uc.Parse: no providers configured")
		return parsing.ParseOutput{}, parsing.ErrAllProvidersExhausted
	}

	for _, p := range chain {
		attemptCtx, cancel := context.WithTimeout(ctx, uc.attemptTimeout)
		start := uc.now()
		events, err := p.Parse(attemptCtx, input.Text, referenceDate)
		cancel()
		elapsed := uc.now().Sub(start).Milliseconds()

		if err != nil {
			uc.l.Warnf(ctx, "uc.Parse: provider %s failed after %dms: %v", p.Name(), elapsed, err)
			uc.audit(ctx, sc, userRegion, p.Name(), model.AuditFailure, elapsed, err.Error())
			continue
		}

		uc.audit(ctx, sc, userRegion, p.Name(), model.AuditSuccess, elapsed, "")
		return parsing.ParseOutput{
			Events:   events,
			Provider: p.Name(),
			Region:   userRegion,
		}, nil
	}

	return parsing.ParseOutput{}, parsing.ErrAllProvidersExhausted
}

// audit records one attempt. Audit write failures are logged and
// swallowed so they never affect the parse result.
func (uc *implUseCase) audit(ctx context.Context, sc model.Scope, userRegion model.Region, providerName string, status model.AuditStatus, durationMs int64, errMsg string) {
	err := uc.audits.Append(ctx, repo.AppendAuditOptions{
		UserID:       sc.UserID,
		UserRegion:   userRegion,
		Provider:     providerName,
		Status:       status,
		DurationMs:   durationMs,
		ErrorMessage: errMsg,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Parse audit append: %v", err)
	}
}
