package http

import (
	"github.com/gin-gonic/gin"

	"finbook/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Parse is
// rate limited per user; health is open.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware, parsePerMinute int) {
	financial := rg.Group("/financial")
	{
		financial.POST("/parse", mw.Auth(), mw.RateLimit(parsePerMinute), h.Parse)
		financial.GET("/audit", mw.Auth(), h.Audit)
		financial.GET("/health", h.Health)
	}
}
