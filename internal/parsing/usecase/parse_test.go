package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"finbook/internal/model"
	"finbook/internal/parsing"
	"finbook/internal/parsing/provider"
	repo "finbook/internal/parsing/repository"
	"finbook/pkg/log"
)

type fakeProvider struct {
	name   string
	events model.FinancialEventsResponse
	err    error
	slow   bool // block until the attempt context expires
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Parse(ctx context.Context, _ string, _ time.Time) (model.FinancialEventsResponse, error) {
	if p.slow {
		<-ctx.Done()
		return model.FinancialEventsResponse{}, ctx.Err()
	}
	if p.err != nil {
		return model.FinancialEventsResponse{}, p.err
	}
	return p.events, nil
}

type memAuditRepo struct {
	appended []repo.AppendAuditOptions
	err      error
}

func (m *memAuditRepo) Append(_ context.Context, opt repo.AppendAuditOptions) error {
	if m.err != nil {
		return m.err
	}
	m.appended = append(m.appended, opt)
	return nil
}

func (m *memAuditRepo) List(_ context.Context, opt repo.ListAuditOptions) ([]model.AIAuditLog, int, error) {
	var out []model.AIAuditLog
	for _, a := range m.appended {
		if a.UserID == opt.UserID {
			out = append(out, model.AIAuditLog{
				UserID:       a.UserID,
				UserRegion:   a.UserRegion,
				Provider:     a.Provider,
				Status:       a.Status,
				DurationMs:   a.DurationMs,
				ErrorMessage: a.ErrorMessage,
			})
		}
	}
	return out, len(out), nil
}

func (m *memAuditRepo) PurgeBefore(context.Context, time.Time) (int64, error) { return 0, nil }

type fixedDetector struct{ region model.Region }

func (d fixedDetector) Detect(context.Context, model.Scope, string) model.Region { return d.region }

func sampleEvents() model.FinancialEventsResponse {
	return model.FinancialEventsResponse{
		Events: []model.FinancialEvent{{
			EventType: model.EventTransaction,
			Data: model.EventPayload{
				TransactionType: model.TransactionExpense,
				Amount:          12.5,
				Currency:        "USD",
				Category:        model.CategoryFood,
				Note:            "lunch",
				Date:            "2026-03-10",
			},
		}},
	}
}

func newParseUseCase(audits *memAuditRepo, timeout time.Duration, providers ...provider.Provider) *implUseCase {
	return New(
		log.Init(log.ZapConfig{}),
		provider.NewRouter(providers...),
		fixedDetector{region: model.RegionUS},
		audits,
		timeout,
	)
}

func TestParse_FirstSuccessWins(t *testing.T) {
	audits := &memAuditRepo{}
	uc := newParseUseCase(audits, time.Second,
		&fakeProvider{name: "qwen", events: sampleEvents()},
		&fakeProvider{name: "gemini", err: errors.New("should not be called")},
	)

	out, err := uc.Parse(context.Background(), model.Scope{UserID: "user-1"}, parsing.ParseInput{Text: "lunch 12.50"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if out.Provider != "qwen" {
		t.Errorf("Provider = %s, want qwen", out.Provider)
	}
	if len(out.Events.Events) != 1 || out.Events.Events[0].EventType != model.EventTransaction {
		t.Errorf("unexpected events: %+v", out.Events)
	}
	if len(audits.appended) != 1 {
		t.Fatalf("audit count = %d, want 1", len(audits.appended))
	}
	if audits.appended[0].Status != model.AuditSuccess {
		t.Errorf("audit status = %s, want SUCCESS", audits.appended[0].Status)
	}
	if audits.appended[0].UserRegion != model.RegionUS {
		t.Errorf("audit region = %s, want US", audits.appended[0].UserRegion)
	}
}

func TestParse_FallsThroughChain(t *testing.T) {
	audits := &memAuditRepo{}
	uc := newParseUseCase(audits, 20*time.Millisecond,
		&fakeProvider{name: "qwen", slow: true},
		&fakeProvider{name: "gemini", err: errors.New("invalid events JSON")},
		&fakeProvider{name: "openai", events: sampleEvents()},
	)

	out, err := uc.Parse(context.Background(), model.Scope{UserID: "user-1"}, parsing.ParseInput{Text: "lunch 12.50"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if out.Provider != "openai" {
		t.Errorf("Provider = %s, want openai", out.Provider)
	}

	if len(audits.appended) != 3 {
		t.Fatalf("audit count = %d, want 3 (one per attempt)", len(audits.appended))
	}
	wantStatus := []model.AuditStatus{model.AuditFailure, model.AuditFailure, model.AuditSuccess}
	for i, want := range wantStatus {
		if audits.appended[i].Status != want {
			t.Errorf("audit[%d] status = %s, want %s", i, audits.appended[i].Status, want)
		}
	}
	if audits.appended[0].ErrorMessage == "" {
		t.Error("timeout attempt should carry an error message")
	}
}

func TestParse_AllProvidersExhausted(t *testing.T) {
	audits := &memAuditRepo{}
	uc := newParseUseCase(audits, time.Second,
		&fakeProvider{name: "qwen", err: errors.New("boom")},
		&fakeProvider{name: "gemini", err: errors.New("boom")},
		&fakeProvider{name: "openai", err: errors.New("boom")},
	)

	_, err := uc.Parse(context.Background(), model.Scope{UserID: "user-1"}, parsing.ParseInput{Text: "lunch"})
	if !errors.Is(err, parsing.ErrAllProvidersExhausted) {
		t.Fatalf("Parse() error = %v, want ErrAllProvidersExhausted", err)
	}
	if len(audits.appended) != 3 {
		t.Fatalf("audit count = %d, want 3", len(audits.appended))
	}
	for i, a := range audits.appended {
		if a.Status != model.AuditFailure {
			t.Errorf("audit[%d] status = %s, want FAILURE", i, a.Status)
		}
	}
}

func TestParse_EmptyChain(t *testing.T) {
	audits := &memAuditRepo{}
	uc := newParseUseCase(audits, time.Second)

	_, err := uc.Parse(context.Background(), model.Scope{UserID: "user-1"}, parsing.ParseInput{Text: "lunch"})
	if !errors.Is(err, parsing.ErrAllProvidersExhausted) {
		t.Fatalf("Parse() error = %v, want ErrAllProvidersExhausted", err)
	}
	if len(audits.appended) != 0 {
		t.Errorf("audit count = %d, want 0", len(audits.appended))
	}
}

func TestParse_AuditFailureDoesNotMaskResult(t *testing.T) {
	audits := &memAuditRepo{err: errors.New("audit store down")}
	uc := newParseUseCase(audits, time.Second,
		&fakeProvider{name: "qwen", events: sampleEvents()},
	)

	out, err := uc.Parse(context.Background(), model.Scope{UserID: "user-1"}, parsing.ParseInput{Text: "lunch"})
	if err != nil {
		t.Fatalf("Parse() error = %v, want success despite audit failure", err)
	}
	if out.Provider != "qwen" {
		t.Errorf("Provider = %s, want qwen", out.Provider)
	}
}
