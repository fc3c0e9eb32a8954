package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"finbook/internal/model"
	"finbook/pkg/gemini"
)

// geminiProvider parses via the Gemini API using constrained JSON output.
type geminiProvider struct {
	client gemini.IGemini
}

// NewGemini wraps a Gemini client as a parsing Provider.
func NewGemini(client gemini.IGemini) Provider {
	return &geminiProvider{client: client}
}

func (p *geminiProvider) Name() string { return "gemini" }

func (p *geminiProvider) Parse(ctx context.Context, text string, referenceDate time.Time) (model.FinancialEventsResponse, error) {
	resp, err := p.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: systemPrompt(referenceDate),
		Prompt:            text,
		ResponseMIMEType:  "application/json",
		ResponseSchema:    eventsResponseSchema(),
		Temperature:       0.1,
	})
	if err != nil {
		return model.FinancialEventsResponse{}, err
	}

	var events model.FinancialEventsResponse
	if err := json.Unmarshal([]byte(cleanModelJSON(resp.Text)), &events); err != nil {
		return model.FinancialEventsResponse{}, fmt.Errorf("gemini: invalid events JSON: %w", err)
	}
	return events, nil
}
