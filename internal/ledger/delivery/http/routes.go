package http

import (
	"github.com/gin-gonic/gin"

	"finbook/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	accounts := rg.Group("/accounts")
	{
		accounts.POST("", mw.Auth(), h.CreateAccount)
		accounts.GET("", mw.Auth(), h.ListAccounts)
	}

	records := rg.Group("/records")
	{
		records.POST("", mw.Auth(), h.CreateRecord)
		records.GET("", mw.Auth(), h.ListRecords)
	}
}
