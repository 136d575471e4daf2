package middleware

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization"
)

// CORSConfig is read once at startup and never mutated
type CORSConfig struct {
	AllowedOrigins []string
	// Development permits every origin, echoing whatever was sent
	Development bool
}

// CORSGate admits a request only when its Origin header exactly matches the
// allow-list (or unconditionally in development). Refused requests get 403
// and never reach the wrapped handler. Preflights are answered here and never
// forwarded. Admitted responses carry the four Access-Control headers.
func CORSGate(cfg CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		allowed[o] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if !cfg.Development {
			if _, ok := allowed[origin]; !ok {
				metrics.CORSRejectionsTotal.Inc()
				response.Error(c, http.StatusForbidden, "Not allowed by CORS", nil)
				c.Abort()
				return
			}
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", corsAllowMethods)
		c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"success": true})
			return
		}

		c.Next()
	}
}
