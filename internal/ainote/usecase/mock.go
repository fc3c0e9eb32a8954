package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"finbook/internal/ainote"
	"finbook/internal/model"
)

const mockConfidence = 0.7

var amountRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

// keyword table for the fallback parser, checked in order.
var categoryKeywords = []struct {
	category model.Category
	words    []string
}{
	{model.CategoryFood, []string{"breakfast", "lunch", "dinner", "coffee", "restaurant", "groceries", "food", "meal", "takeout"}},
	{model.CategoryTransport, []string{"taxi", "uber", "bus", "metro", "subway", "train", "fuel", "gas", "parking"}},
	{model.CategoryShopping, []string{"bought", "buy", "shopping", "amazon", "store"}},
	{model.CategoryEntertainment, []string{"movie", "cinema", "game", "concert", "karaoke"}},
	{model.CategoryHousing, []string{"rent", "mortgage", "electricity", "utilities"}},
	{model.CategorySubscription, []string{"subscription", "netflix", "spotify"}},
	{model.CategoryIncomeSalary, []string{"salary", "paycheck", "wage"}},
}

// mockParse extracts one transaction per amount found in the text. It is
// intentionally naive; its job is keeping the endpoint usable without an
// API key, not competing with the LLM.
func (uc *implUseCase) mockParse(text string, accountNames []string) ainote.ParseOutput {
	description := text
	if len(description) > 60 {
		description = description[:60]
	}

	txType := model.TransactionExpense
	cat := guessCategory(text)
	if cat == model.CategoryIncomeSalary {
		txType = model.TransactionIncome
	}

	var transactions []ainote.ParsedTransaction
	for _, match := range amountRe.FindAllString(text, -1) {
		amount, err := strconv.ParseFloat(match, 64)
		if err != nil || amount <= 0 {
			continue
		}
		transactions = append(transactions, ainote.ParsedTransaction{
			Type:        txType,
			Amount:      amount,
			Category:    cat,
			AccountName: accountName("", accountNames),
			Description: description,
			Date:        uc.now(),
			Confidence:  mockConfidence,
		})
	}

	return ainote.ParseOutput{Transactions: transactions, Source: "mock"}
}

func guessCategory(text string) model.Category {
	lower := strings.ToLower(text)
	for _, entry := range categoryKeywords {
		for _, word := range entry.words {
			if strings.Contains(lower, word) {
				return entry.category
			}
		}
	}
	return model.CategoryOther
}
