package http

import (
	"fmt"
	"regexp"
	"time"

	"finbook/internal/budget"
	"finbook/internal/model"
)

var monthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// --- Request DTOs ---

type createBudgetReq struct {
	Category    string  `json:"category"     binding:"required,min=1,max=100"`
	Amount      float64 `json:"amount"       binding:"required,gt=0"`
	Month       string  `json:"month"        binding:"required"`
	IsRecurring bool    `json:"is_recurring"`
}

func (r createBudgetReq) validate() error {
	if !monthRe.MatchString(r.Month) {
		return fmt.Errorf("month must be YYYY-MM")
	}
	return nil
}

func (r createBudgetReq) toInput() budget.CreateInput {
	return budget.CreateInput{
		Category:    r.Category,
		Amount:      r.Amount,
		Month:       r.Month,
		IsRecurring: r.IsRecurring,
	}
}

type listBudgetsReq struct {
	Month string `form:"month" binding:"omitempty"`
}

func (r listBudgetsReq) validate() error {
	if r.Month != "" && !monthRe.MatchString(r.Month) {
		return fmt.Errorf("month must be YYYY-MM")
	}
	return nil
}

// --- Response DTOs ---

type budgetResp struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Month       string    `json:"month"`
	IsRecurring bool      `json:"is_recurring"`
	CreatedAt   time.Time `json:"created_at"`
}

func newBudgetResp(b model.Budget) budgetResp {
	return budgetResp{
		ID:          b.ID,
		Category:    b.Category,
		Amount:      b.Amount,
		Month:       b.Month,
		IsRecurring: b.IsRecurring,
		CreatedAt:   b.CreatedAt,
	}
}

type listBudgetsResp struct {
	Budgets []budgetResp `json:"budgets"`
}

func (h *handler) newListBudgetsResp(output budget.ListOutput) listBudgetsResp {
	budgets := make([]budgetResp, 0, len(output.Budgets))
	for _, b := range output.Budgets {
		budgets = append(budgets, newBudgetResp(b))
	}
	return listBudgetsResp{Budgets: budgets}
}
