package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	pkgErrors "finbook/pkg/errors"
	"finbook/pkg/response"
)

var errTooManyRequests = pkgErrors.NewHTTPError(http.StatusTooManyRequests, "Too many requests")

// RateLimit limits each user to perMinute requests per minute with a
// small burst. Must run after Auth so the user identity is available.
func (m Middleware) RateLimit(perMinute int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(userID string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		lim, ok := limiters[userID]
		if !ok {
			lim = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
			limiters[userID] = lim
		}
		return lim
	}

	return func(c *gin.Context) {
		sc := GetScope(c)
		if !limiterFor(sc.UserID).Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: user %s throttled", sc.UserID)
			response.Error(c, errTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
