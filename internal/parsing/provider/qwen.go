package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"finbook/internal/model"
	"finbook/pkg/qwen"
)

// qwenProvider parses via the Qwen API. Qwen tends to wrap output in
// prose and fences, so the response is additionally narrowed to the
// first balanced JSON object.
type qwenProvider struct {
	client qwen.IQwen
}

// NewQwen wraps a Qwen client as a parsing Provider.
func NewQwen(client qwen.IQwen) Provider {
	return &qwenProvider{client: client}
}

func (p *qwenProvider) Name() string { return "qwen" }

func (p *qwenProvider) Parse(ctx context.Context, text string, referenceDate time.Time) (model.FinancialEventsResponse, error) {
	resp, err := p.client.GenerateContent(ctx, &qwen.Request{
		SystemInstruction: systemPrompt(referenceDate),
		Prompt:            text,
		Temperature:       0.1,
	})
	if err != nil {
		return model.FinancialEventsResponse{}, err
	}

	cleaned := cleanModelJSON(resp.Text)
	obj, err := extractJSONObject(cleaned)
	if err != nil {
		return model.FinancialEventsResponse{}, fmt.Errorf("qwen: %w", err)
	}

	var events model.FinancialEventsResponse
	if err := json.Unmarshal([]byte(obj), &events); err != nil {
		return model.FinancialEventsResponse{}, fmt.Errorf("qwen: invalid events JSON: %w", err)
	}
	return events, nil
}
