package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"seikyu/internal/config"
)

// BasicGate returns middleware enforcing HTTP basic auth with the configured
// credentials. With no credentials configured the gate is a no-op, so local
// development needs no setup. Applied to non-API routes only; the JSON API
// surfaces its own errors.
func BasicGate(cfg *config.GateConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled() {
			c.Next()
			return
		}

		user, pwd, ok := c.Request.BasicAuth()
		if ok {
			userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.User)) == 1
			pwdMatch := subtle.ConstantTimeCompare([]byte(pwd), []byte(cfg.Password)) == 1
			if userMatch && pwdMatch {
				c.Next()
				return
			}
		}

		c.Header("WWW-Authenticate", `Basic realm="Secure Area"`)
		c.AbortWithStatus(http.StatusUnauthorized)
	}
}
