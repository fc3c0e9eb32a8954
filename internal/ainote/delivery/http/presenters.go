package http

import (
	"time"

	"finbook/internal/ainote"
)

// --- Request DTOs ---

type parseVoiceReq struct {
	Text string `json:"text" binding:"required,min=1,max=4000"`
}

func (r parseVoiceReq) toInput() ainote.ParseInput {
	return ainote.ParseInput{Text: r.Text}
}

// --- Response DTOs ---

type parsedTransactionResp struct {
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	AccountName string    `json:"account_name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Confidence  float64   `json:"confidence"`
}

type parseVoiceResp struct {
	Transactions []parsedTransactionResp `json:"transactions"`
	Source       string                  `json:"source"`
}

func (h *handler) newParseVoiceResp(output ainote.ParseOutput) parseVoiceResp {
	transactions := make([]parsedTransactionResp, 0, len(output.Transactions))
	for _, tx := range output.Transactions {
		transactions = append(transactions, parsedTransactionResp{
			Type:        string(tx.Type),
			Amount:      tx.Amount,
			Category:    string(tx.Category),
			AccountName: tx.AccountName,
			Description: tx.Description,
			Date:        tx.Date,
			Confidence:  tx.Confidence,
		})
	}
	return parseVoiceResp{Transactions: transactions, Source: output.Source}
}
