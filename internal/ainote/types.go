package ainote

import (
	"time"

	"finbook/internal/model"
)

// ParsedTransaction is the simplified first-pass shape returned by the
// voice-note parser. It is a suggestion for the client to confirm, not a
// booked record.
type ParsedTransaction struct {
	Type        model.TransactionType
	Amount      float64
	Category    model.Category
	AccountName string
	Description string
	Date        time.Time
	Confidence  float64
}

// --- UseCase Inputs ---

type ParseInput struct {
	Text string
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Transactions []ParsedTransaction
	// Source is "gemini" when the LLM produced the result, "mock" when the
	// deterministic fallback did.
	Source string
}
