package http

import (
	"github.com/gin-gonic/gin"

	"finbook/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ai := rg.Group("/ai")
	{
		ai.POST("/parse-voice", mw.Auth(), h.ParseVoice)
	}
}
