package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vendorhub/vendor-approval-api/internal/utils"
)

// RequestLogger writes one structured log line per request
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"status":         c.Writer.Status(),
			"latency_ms":     time.Since(start).Milliseconds(),
			"client_ip":      c.ClientIP(),
			"correlation_id": utils.GetCorrelationIDFromContext(c),
		})
		if actor := utils.GetActorFromContext(c); actor.ID != "" {
			entry = entry.WithField("actor_id", actor.ID)
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("Request failed")
		case status >= 400:
			entry.Info("Request refused")
		default:
			entry.Debug("Request served")
		}
	}
}
