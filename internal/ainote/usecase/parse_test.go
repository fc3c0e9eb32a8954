package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"finbook/internal/ainote"
	"finbook/internal/model"
	"finbook/pkg/gemini"
	"finbook/pkg/log"
)

type fakeGemini struct {
	text string
	err  error
}

func (f *fakeGemini) GenerateContent(_ context.Context, _ *gemini.Request) (*gemini.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &gemini.Response{Text: f.text}, nil
}

func (f *fakeGemini) Model() string { return "fake" }

type fixedAccounts struct{ names []string }

func (f fixedAccounts) AccountNames(_ context.Context, _ model.Scope) ([]string, error) {
	return f.names, nil
}

func newVoiceUseCase(llm gemini.IGemini, accounts ainote.AccountSource) *implUseCase {
	l := log.Init(log.ZapConfig{Mode: "test"})
	uc := New(l, llm, accounts).(*implUseCase)
	uc.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestParse_NoLLMUsesMock(t *testing.T) {
	uc := newVoiceUseCase(nil, fixedAccounts{names: []string{"Checking"}})

	out, err := uc.Parse(context.Background(), model.Scope{UserID: "user-1"}, ainote.ParseInput{
		Text: "breakfast 15.50 then taxi 30",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out.Source != "mock" {
		t.Fatalf("expected mock source, got %q", out.Source)
	}
	if len(out.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(out.Transactions))
	}
	first := out.Transactions[0]
	if first.Amount != 15.50 {
		t.Errorf("amount = %v, want 15.50", first.Amount)
	}
	if first.Category != model.CategoryFood {
		t.Errorf("category = %v, want FOOD", first.Category)
	}
	if first.Type != model.TransactionExpense {
		t.Errorf("type = %v, want EXPENSE", first.Type)
	}
	if first.AccountName != "Checking" {
		t.Errorf("account = %q, want Checking", first.AccountName)
	}
}

func TestParse_LLMFailureFallsBackToMock(t *testing.T) {
	uc := newVoiceUseCase(&fakeGemini{err: errors.New("upstream down")}, nil)

	out, err := uc.Parse(context.Background(), model.Scope{UserID: "user-1"}, ainote.ParseInput{
		Text: "salary arrived 3000",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out.Source != "mock" {
		t.Fatalf("expected mock source, got %q", out.Source)
	}
	if len(out.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(out.Transactions))
	}
	if out.Transactions[0].Type != model.TransactionIncome {
		t.Errorf("type = %v, want INCOME", out.Transactions[0].Type)
	}
	if out.Transactions[0].AccountName != defaultAccountName {
		t.Errorf("account = %q, want %q", out.Transactions[0].AccountName, defaultAccountName)
	}
}

func TestParse_LLMResponse(t *testing.T) {
	llm := &fakeGemini{text: "```json\n[{\"type\":\"expense\",\"amount\":42,\"category\":\"transport\",\"account_name\":\"savings\",\"description\":\"train ticket\",\"date\":\"2026-03-09\",\"confidence\":0.93}]\n```"}
	uc := newVoiceUseCase(llm, fixedAccounts{names: []string{"Checking", "Savings"}})

	out, err := uc.Parse(context.Background(), model.Scope{UserID: "user-1"}, ainote.ParseInput{
		Text: "train ticket yesterday 42",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out.Source != "gemini" {
		t.Fatalf("expected gemini source, got %q", out.Source)
	}
	if len(out.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(out.Transactions))
	}
	tx := out.Transactions[0]
	if tx.Type != model.TransactionExpense {
		t.Errorf("type = %v, want EXPENSE", tx.Type)
	}
	if tx.Category != model.CategoryTransport {
		t.Errorf("category = %v, want TRANSPORT", tx.Category)
	}
	// Case-insensitive match onto the user's real account name.
	if tx.AccountName != "Savings" {
		t.Errorf("account = %q, want Savings", tx.AccountName)
	}
	if !tx.Date.Equal(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v, want 2026-03-09", tx.Date)
	}
}

func TestParse_UnknownCategoryBecomesOther(t *testing.T) {
	llm := &fakeGemini{text: `[{"type":"EXPENSE","amount":10,"category":"ALCHEMY","description":"x"}]`}
	uc := newVoiceUseCase(llm, nil)

	out, err := uc.Parse(context.Background(), model.Scope{UserID: "user-1"}, ainote.ParseInput{Text: "x 10"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out.Transactions[0].Category != model.CategoryOther {
		t.Errorf("category = %v, want OTHER", out.Transactions[0].Category)
	}
}

func TestExtractJSONArray(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "bare", in: `[1,2]`, want: `[1,2]`},
		{name: "fenced", in: "```json\n[1]\n```", want: `[1]`},
		{name: "prose", in: "Here you go: [\"a]b\"] done", want: `["a]b"]`},
		{name: "nested", in: `[[1],[2]]`, want: `[[1],[2]]`},
		{name: "missing", in: "no array here", wantErr: true},
		{name: "unbalanced", in: `[1,2`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := extractJSONArray(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
