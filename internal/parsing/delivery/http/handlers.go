package http

import (
	"github.com/gin-gonic/gin"

	"finbook/internal/middleware"
	"finbook/internal/parsing"
	"finbook/pkg/response"
)

// Parse godoc
// @Summary     Parse financial text
// @Description Parses free-form financial text into structured events via the AI provider chain.
// @Tags        Financial
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text to parse"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "All providers exhausted"
// @Router      /api/v1/financial/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, middleware.GetScope(c), req.toInput(c.GetHeader("X-Region")))
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Audit godoc
// @Summary     List AI parse attempts
// @Description Returns the user's provider attempt history, newest first.
// @Tags        Financial
// @Produce     json
// @Param       limit  query int false "Page size (default: 20)"
// @Param       offset query int false "Page offset (default: 0)"
// @Success     200 {object} auditResp
// @Router      /api/v1/financial/audit [GET]
func (h *handler) Audit(c *gin.Context) {
	ctx := c.Request.Context()

	var req auditReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	output, err := h.uc.ListAudit(ctx, middleware.GetScope(c), parsing.ListAuditInput{
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListAudit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAuditResp(output))
}

// Health godoc
// @Summary     Parsing health
// @Description Reports the configured AI provider chain.
// @Tags        Financial
// @Produce     json
// @Success     200 {object} healthResp
// @Router      /api/v1/financial/health [GET]
func (h *handler) Health(c *gin.Context) {
	response.OK(c, healthResp{
		Status:    "ok",
		Providers: h.providers,
	})
}
