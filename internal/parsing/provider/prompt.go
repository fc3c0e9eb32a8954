package provider

import (
	"fmt"
	"time"
)

const systemPromptTemplate = `You are an advanced, multilingual Financial Data Parser API.
Your sole function is to analyze the user's free-form financial statement, determine the user's intent(s), and output a single, strict JSON object containing an array of financial events.

[CRITICAL RULES]

1. Output ONLY the JSON object. Do not include any preamble, explanations, or markdown fences.

2. The output JSON MUST follow the schema defined below.

3. The input may be in ANY language. All JSON KEYS and ENUM values MUST remain in English as defined.

4. Use %s as today's date in YYYY-MM-DD format if no date is specified. Infer the date when relative terms like "yesterday", "last month" or "next Monday" are used, with %s as the reference point.

5. If the statement contains no identifiable financial data (e.g. "hello"), you MUST return exactly: {"events": [{"event_type": "NULL_STATEMENT", "data": {"error_message": "Non-financial or insufficient data."}}]}

6. One statement may contain multiple events; emit one object per event.

[SCHEMA]

{"events": [{"event_type": "<TRANSACTION|ASSET_UPDATE|GOAL|NULL_STATEMENT>", "data": {...}}]}

TRANSACTION data: transaction_type (EXPENSE|INCOME|TRANSFER), amount (number), currency (ISO 4217, default local), category (FOOD|TRANSPORT|SHOPPING|HOUSING|ENTERTAINMENT|SUBSCRIPTION|FEES_AND_TAXES|LOAN_REPAYMENT|INCOME_SALARY|OTHER), source_account, target_account, note, date (YYYY-MM-DD), is_recurring (boolean).

ASSET_UPDATE data: asset_type (BANK|CASH|SAVINGS|INVESTMENT|DIGITAL_WALLET|LOAN|MORTGAGE|OTHER_ASSET|OTHER_LIABILITY), name, institution_name, amount (current balance), currency, note.

GOAL data: name, target_amount (number), target_date (YYYY-MM-DD), currency, note.

NULL_STATEMENT data: error_message.`

// systemPrompt renders the parser instruction anchored at referenceDate.
func systemPrompt(referenceDate time.Time) string {
	date := referenceDate.Format("2006-01-02")
	return fmt.Sprintf(systemPromptTemplate, date, date)
}

// eventsResponseSchema is the structured-output schema handed to vendors
// that support constrained JSON generation.
func eventsResponseSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"events": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"event_type": map[string]interface{}{
							"type": "string",
							"enum": []string{"TRANSACTION", "ASSET_UPDATE", "GOAL", "NULL_STATEMENT"},
						},
						"data": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"transaction_type": map[string]interface{}{"type": "string"},
								"amount":           map[string]interface{}{"type": "number"},
								"currency":         map[string]interface{}{"type": "string"},
								"category":         map[string]interface{}{"type": "string"},
								"source_account":   map[string]interface{}{"type": "string"},
								"target_account":   map[string]interface{}{"type": "string"},
								"note":             map[string]interface{}{"type": "string"},
								"date":             map[string]interface{}{"type": "string"},
								"is_recurring":     map[string]interface{}{"type": "boolean"},
								"asset_type":       map[string]interface{}{"type": "string"},
								"name":             map[string]interface{}{"type": "string"},
								"institution_name": map[string]interface{}{"type": "string"},
								"target_amount":    map[string]interface{}{"type": "number"},
								"target_date":      map[string]interface{}{"type": "string"},
								"error_message":    map[string]interface{}{"type": "string"},
							},
						},
					},
					"required": []string{"event_type", "data"},
				},
			},
		},
		"required": []string{"events"},
	}
}
