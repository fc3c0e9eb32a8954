package http

import (
	"github.com/gin-gonic/gin"

	"finbook/internal/budget"
	"finbook/internal/middleware"
	"finbook/pkg/response"
)

// Create godoc
// @Summary     Create a budget
// @Description Creates a monthly spending cap for one category.
// @Tags        Budget
// @Accept      json
// @Produce     json
// @Param       body body createBudgetReq true "Budget data"
// @Success     200 {object} budgetResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Budget already exists"
// @Router      /api/v1/budgets [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createBudgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBudgetResp(output.Budget))
}

// List godoc
// @Summary     List budgets
// @Description Returns the user's budgets, optionally filtered by month.
// @Tags        Budget
// @Produce     json
// @Param       month query string false "Month filter (YYYY-MM)"
// @Success     200 {object} listBudgetsResp
// @Router      /api/v1/budgets [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listBudgetsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(c), budget.ListInput{Month: req.Month})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListBudgetsResp(output))
}

// Delete godoc
// @Summary     Delete a budget
// @Description Removes one budget by ID.
// @Tags        Budget
// @Produce     json
// @Param       id path string true "Budget ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Budget not found"
// @Router      /api/v1/budgets/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, middleware.GetScope(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
