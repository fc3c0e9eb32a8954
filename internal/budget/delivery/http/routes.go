package http

import (
	"github.com/gin-gonic/gin"

	"finbook/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	budgets := rg.Group("/budgets")
	{
		budgets.POST("", mw.Auth(), h.Create)
		budgets.GET("", mw.Auth(), h.List)
		budgets.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
