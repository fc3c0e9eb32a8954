package http

import (
	"github.com/gin-gonic/gin"

	"finbook/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/scheduled-tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.Auth(), h.List)
		tasks.GET("/:id", mw.Auth(), h.Detail)
		tasks.PUT("/:id", mw.Auth(), h.Update)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
		tasks.PATCH("/:id/toggle", mw.Auth(), h.Toggle)
		tasks.POST("/:id/execute", mw.Auth(), h.Execute)
		tasks.GET("/:id/logs", mw.Auth(), h.Logs)
	}
}
