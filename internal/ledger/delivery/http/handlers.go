package http

import (
	"github.com/gin-gonic/gin"

	"finbook/internal/middleware"
	"finbook/pkg/response"
)

// CreateAccount godoc
// @Summary     Create an account
// @Description Creates a money account for the current user.
// @Tags        Ledger
// @Accept      json
// @Produce     json
// @Param       body body createAccountReq true "Account data"
// @Success     200 {object} accountResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/accounts [POST]
func (h *handler) CreateAccount(c *gin.Context) {
	ctx := c.Request.Context()

	var req createAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateAccount(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateAccount: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAccountResp(output.Account))
}

// ListAccounts godoc
// @Summary     List accounts
// @Description Returns all of the user's accounts with current balances.
// @Tags        Ledger
// @Produce     json
// @Success     200 {object} listAccountsResp
// @Router      /api/v1/accounts [GET]
func (h *handler) ListAccounts(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListAccounts(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListAccounts: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListAccountsResp(output))
}

// CreateRecord godoc
// @Summary     Book a record
// @Description Books a manual bookkeeping entry and adjusts the account balance.
// @Tags        Ledger
// @Accept      json
// @Produce     json
// @Param       body body createRecordReq true "Record data"
// @Success     200 {object} recordResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Account not found"
// @Router      /api/v1/records [POST]
func (h *handler) CreateRecord(c *gin.Context) {
	ctx := c.Request.Context()

	var req createRecordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateRecord(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateRecord: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRecordResp(output.Record))
}

// ListRecords godoc
// @Summary     List records
// @Description Returns the user's records, newest first, with optional filters.
// @Tags        Ledger
// @Produce     json
// @Param       account_id query string false "Filter by account"
// @Param       from       query string false "Start date (YYYY-MM-DD)"
// @Param       to         query string false "End date (YYYY-MM-DD)"
// @Param       limit      query int    false "Page size (default: 20)"
// @Param       offset     query int    false "Page offset (default: 0)"
// @Success     200 {object} listRecordsResp
// @Router      /api/v1/records [GET]
func (h *handler) ListRecords(c *gin.Context) {
	ctx := c.Request.Context()

	var req listRecordsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListRecords(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListRecords: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListRecordsResp(output))
}
