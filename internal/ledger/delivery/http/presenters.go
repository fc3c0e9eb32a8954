package http

import (
	"fmt"
	"time"

	"finbook/internal/ledger"
	"finbook/internal/model"
	"finbook/pkg/response"
)

// --- Request DTOs ---

type createAccountReq struct {
	Name     string  `json:"name"     binding:"required,min=1,max=255"`
	Type     string  `json:"type"     binding:"omitempty,max=50"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency" binding:"omitempty,len=3"`
}

func (r createAccountReq) toInput() ledger.CreateAccountInput {
	accountType := r.Type
	if accountType == "" {
		accountType = "CASH"
	}
	return ledger.CreateAccountInput{
		Name:     r.Name,
		Type:     accountType,
		Balance:  r.Balance,
		Currency: r.Currency,
	}
}

type createRecordReq struct {
	AccountID   string  `json:"account_id"  binding:"required"`
	Type        string  `json:"type"        binding:"required,oneof=INCOME EXPENSE TRANSFER"`
	Amount      float64 `json:"amount"      binding:"required,gt=0"`
	Category    string  `json:"category"    binding:"max=100"`
	Description string  `json:"description" binding:"max=1000"`
	Date        string  `json:"date"        binding:"omitempty"`

	date time.Time
}

func (r *createRecordReq) validate() error {
	if r.Date == "" {
		r.date = time.Now()
		return nil
	}
	d, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	r.date = d
	return nil
}

func (r *createRecordReq) toInput() ledger.CreateRecordInput {
	return ledger.CreateRecordInput{
		AccountID:   r.AccountID,
		Type:        model.TaskType(r.Type),
		Amount:      r.Amount,
		Category:    r.Category,
		Description: r.Description,
		Date:        r.date,
	}
}

type listRecordsReq struct {
	AccountID string `form:"account_id"`
	From      string `form:"from"`
	To        string `form:"to"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listRecordsReq) toInput() (ledger.ListRecordsInput, error) {
	input := ledger.ListRecordsInput{
		AccountID: r.AccountID,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
	if input.Limit <= 0 || input.Limit > 100 {
		input.Limit = 20
	}
	if input.Offset < 0 {
		input.Offset = 0
	}
	if r.From != "" {
		from, err := time.Parse("2006-01-02", r.From)
		if err != nil {
			return input, fmt.Errorf("from must be YYYY-MM-DD")
		}
		input.From = &from
	}
	if r.To != "" {
		to, err := time.Parse("2006-01-02", r.To)
		if err != nil {
			return input, fmt.Errorf("to must be YYYY-MM-DD")
		}
		input.To = &to
	}
	return input, nil
}

// --- Response DTOs ---

type accountResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Balance   float64   `json:"balance"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newAccountResp(a model.Account) accountResp {
	return accountResp{
		ID:        a.ID,
		Name:      a.Name,
		Type:      a.Type,
		Balance:   a.Balance,
		Currency:  a.Currency,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type listAccountsResp struct {
	Accounts []accountResp `json:"accounts"`
}

func (h *handler) newListAccountsResp(out ledger.ListAccountsOutput) listAccountsResp {
	accounts := make([]accountResp, len(out.Accounts))
	for i, a := range out.Accounts {
		accounts[i] = newAccountResp(a)
	}
	return listAccountsResp{Accounts: accounts}
}

type recordResp struct {
	ID          string        `json:"id"`
	AccountID   string        `json:"account_id"`
	Type        string        `json:"type"`
	Amount      float64       `json:"amount"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Date        response.Date `json:"date"`
	IsAutomatic bool          `json:"is_automatic"`
}

func newRecordResp(rec model.Record) recordResp {
	return recordResp{
		ID:          rec.ID,
		AccountID:   rec.AccountID,
		Type:        string(rec.Type),
		Amount:      rec.Amount,
		Category:    rec.Category,
		Description: rec.Description,
		Date:        response.Date(rec.Date),
		IsAutomatic: rec.IsAutomatic,
	}
}

type listRecordsResp struct {
	Records []recordResp `json:"records"`
	Total   int          `json:"total"`
	Limit   int          `json:"limit"`
	Offset  int          `json:"offset"`
}

func (h *handler) newListRecordsResp(out ledger.ListRecordsOutput) listRecordsResp {
	records := make([]recordResp, len(out.Records))
	for i, rec := range out.Records {
		records[i] = newRecordResp(rec)
	}
	return listRecordsResp{
		Records: records,
		Total:   out.Total,
		Limit:   out.Limit,
		Offset:  out.Offset,
	}
}
