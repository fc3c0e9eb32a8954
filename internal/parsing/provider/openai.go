package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"finbook/internal/model"
	"finbook/pkg/openai"
)

// openAIProvider parses via the OpenAI chat completions API in JSON mode.
type openAIProvider struct {
	client openai.IOpenAI
}

// NewOpenAI wraps an OpenAI client as a parsing Provider.
func NewOpenAI(client openai.IOpenAI) Provider {
	return &openAIProvider{client: client}
}

func (p *openAIProvider) Name() string { return "openai" }

func (p *openAIProvider) Parse(ctx context.Context, text string, referenceDate time.Time) (model.FinancialEventsResponse, error) {
	resp, err := p.client.GenerateContent(ctx, &openai.Request{
		Messages: []openai.Message{
			{Role: "system", Content: systemPrompt(referenceDate)},
			{Role: "user", Content: text},
		},
		Temperature: 0.1,
		JSONMode:    true,
	})
	if err != nil {
		return model.FinancialEventsResponse{}, err
	}
	if len(resp.Choices) == 0 {
		return model.FinancialEventsResponse{}, fmt.Errorf("openai: empty response")
	}

	var events model.FinancialEventsResponse
	if err := json.Unmarshal([]byte(cleanModelJSON(resp.Choices[0].Message.Content)), &events); err != nil {
		return model.FinancialEventsResponse{}, fmt.Errorf("openai: invalid events JSON: %w", err)
	}
	return events, nil
}
