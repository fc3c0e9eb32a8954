package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finbook/internal/middleware"
	pkgErrors "finbook/pkg/errors"
	"finbook/pkg/response"
)

// ParseVoice godoc
// @Summary     Parse a voice note
// @Description Converts a free-form transcript into transaction suggestions.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body parseVoiceReq true "Transcript"
// @Success     200 {object} parseVoiceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/ai/parse-voice [POST]
func (h *handler) ParseVoice(c *gin.Context) {
	ctx := c.Request.Context()

	var req parseVoiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error"))
		return
	}

	response.OK(c, h.newParseVoiceResp(output))
}
