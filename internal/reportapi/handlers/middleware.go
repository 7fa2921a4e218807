package handlers

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thrillee/revenuereport/internal/auth"
	"github.com/thrillee/revenuereport/internal/logging"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags each request with an ID, echoed in the response and carried in the log context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(logging.ContextWithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// BasicAuth guards report routes with the configured admin credentials. Without a
// password hash every request is let through.
func BasicAuth(creds auth.Credentials) gin.HandlerFunc {
	var warnOnce sync.Once
	return func(c *gin.Context) {
		if !creds.Enabled() {
			warnOnce.Do(func() {
				slog.Warn("REPORT_ADMIN_PASSWORD_HASH not set, report routes are unauthenticated")
			})
			c.Next()
			return
		}

		user, pass, ok := c.Request.BasicAuth()
		if !ok || !creds.Check(user, pass) {
			slog.WarnContext(c.Request.Context(), "Report auth failed", slog.String("user", user))
			c.Header("WWW-Authenticate", `Basic realm="Revenue report", charset="UTF-8"`)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}
