package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"finbook/internal/ainote"
	"finbook/internal/model"
	"finbook/pkg/gemini"
)

const defaultAccountName = "Cash"

func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input ainote.ParseInput) (ainote.ParseOutput, error) {
	accountNames := uc.accountNames(ctx, sc)

	if uc.llm == nil {
		return uc.mockParse(input.Text, accountNames), nil
	}

	out, err := uc.llmParse(ctx, input.Text, accountNames)
	if err != nil {
		uc.l.Warnf(ctx, "ainote.usecase.Parse: LLM failed, falling back to mock parser: %v", err)
		return uc.mockParse(input.Text, accountNames), nil
	}
	return out, nil
}

func (uc *implUseCase) accountNames(ctx context.Context, sc model.Scope) []string {
	if uc.accounts == nil {
		return nil
	}
	names, err := uc.accounts.AccountNames(ctx, sc)
	if err != nil {
		uc.l.Warnf(ctx, "ainote.usecase.accountNames: %v", err)
		return nil
	}
	return names
}

// wire shape the LLM is asked to emit
type parsedTransactionJSON struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	AccountName string  `json:"account_name"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Confidence  float64 `json:"confidence"`
}

func (uc *implUseCase) llmParse(ctx context.Context, text string, accountNames []string) (ainote.ParseOutput, error) {
	resp, err := uc.llm.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: voicePrompt(uc.now(), accountNames),
		Prompt:            text,
		ResponseMIMEType:  "application/json",
		Temperature:       0.1,
		MaxTokens:         1024,
	})
	if err != nil {
		return ainote.ParseOutput{}, err
	}

	raw, err := extractJSONArray(resp.Text)
	if err != nil {
		return ainote.ParseOutput{}, err
	}

	var items []parsedTransactionJSON
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return ainote.ParseOutput{}, fmt.Errorf("decode transactions: %w", err)
	}

	transactions := make([]ainote.ParsedTransaction, 0, len(items))
	for _, item := range items {
		transactions = append(transactions, ainote.ParsedTransaction{
			Type:        transactionType(item.Type),
			Amount:      item.Amount,
			Category:    category(item.Category),
			AccountName: accountName(item.AccountName, accountNames),
			Description: item.Description,
			Date:        uc.parseDate(item.Date),
			Confidence:  item.Confidence,
		})
	}

	return ainote.ParseOutput{Transactions: transactions, Source: "gemini"}, nil
}

func transactionType(s string) model.TransactionType {
	switch model.TransactionType(strings.ToUpper(s)) {
	case model.TransactionIncome:
		return model.TransactionIncome
	case model.TransactionTransfer:
		return model.TransactionTransfer
	default:
		return model.TransactionExpense
	}
}

var knownCategories = map[model.Category]struct{}{
	model.CategoryFood:          {},
	model.CategoryTransport:     {},
	model.CategoryShopping:      {},
	model.CategoryHousing:       {},
	model.CategoryEntertainment: {},
	model.CategorySubscription:  {},
	model.CategoryFeesAndTaxes:  {},
	model.CategoryLoanRepayment: {},
	model.CategoryIncomeSalary:  {},
	model.CategoryOther:         {},
}

func category(s string) model.Category {
	c := model.Category(strings.ToUpper(s))
	if _, ok := knownCategories[c]; ok {
		return c
	}
	return model.CategoryOther
}

func accountName(name string, accountNames []string) string {
	for _, candidate := range accountNames {
		if strings.EqualFold(candidate, name) {
			return candidate
		}
	}
	if len(accountNames) > 0 {
		return accountNames[0]
	}
	return defaultAccountName
}

func (uc *implUseCase) parseDate(s string) time.Time {
	if s == "" {
		return uc.now()
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d
	}
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d
	}
	return uc.now()
}

// extractJSONArray finds the first balanced top-level JSON array in s,
// skipping Markdown fences or prose the model may have wrapped around it.
func extractJSONArray(s string) (string, error) {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", fmt.Errorf("no JSON array in response")
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("unbalanced JSON array in response")
}
