package usecase

import (
	"fmt"
	"strings"
	"time"
)

const voicePromptTemplate = `You are a bookkeeping assistant. Convert the user's natural-language note into structured transaction JSON.

Current time: %s
The user's accounts: [%s] (when the note does not name an account, use the first one)

Output ONLY a JSON array, no Markdown code block:
[
  {
    "type": "EXPENSE" | "INCOME" | "TRANSFER",
    "amount": number,
    "category": "FOOD|TRANSPORT|SHOPPING|HOUSING|ENTERTAINMENT|SUBSCRIPTION|FEES_AND_TAXES|LOAN_REPAYMENT|INCOME_SALARY|OTHER",
    "account_name": "account name",
    "description": "short description",
    "date": "ISO date string",
    "confidence": number between 0 and 1
  }
]

Rules:
1. One note may contain several transactions ("breakfast 15, taxi 30" is two records).
2. Resolve relative time words ("yesterday", "last week") against the current time.
3. Infer the category from context ("groceries" is FOOD, "uber" is TRANSPORT).
4. Amounts may carry currency words or symbols; output the bare number.
5. Map mentioned account words onto the user's account list when possible.`

func voicePrompt(now time.Time, accountNames []string) string {
	if len(accountNames) == 0 {
		accountNames = []string{defaultAccountName}
	}
	return fmt.Sprintf(voicePromptTemplate, now.Format(time.RFC3339), strings.Join(accountNames, ", "))
}
