package app

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/metrics"
)

// Realms protected by operator credentials. The realm doubles as the
// module label on failed attempts.
const (
	realmMetrics  = "metrics"
	realmSessions = "sessions"
)

// basicAuthMiddleware enforces Basic Auth with the operator credentials
// used for /metrics and /sessions. An empty password leaves the route open.
// Failed attempts are counted.
func basicAuthMiddleware(realm, username, password string, m *metrics.Metrics) gin.HandlerFunc {
	challenge := `Basic realm="` + realm + `"`
	return func(c *gin.Context) {
		if password == "" {
			c.Next()
			return
		}

		user, pass, ok := c.Request.BasicAuth()
		// Constant-time comparison on both fields.
		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
		if !ok || !userMatch || !passMatch {
			if m != nil {
				m.RecordHTTPError("unauthorized", realm)
			}
			c.Header("WWW-Authenticate", challenge)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Next()
	}
}
