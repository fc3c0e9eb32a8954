package middleware

import (
	"github.com/gin-gonic/gin"

	"finbook/internal/model"
	"finbook/pkg/response"
)

const scopeKey = "scope"

// Auth resolves the authenticated user identity set by the upstream
// gateway and stores it as a model.Scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: missing user identity on %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// GetScope returns the scope stored by Auth. The zero scope is
// returned when the middleware did not run.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, ok := v.(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
