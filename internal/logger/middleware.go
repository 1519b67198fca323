package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Middleware registra cada petición HTTP
func Middleware() gin.HandlerFunc {
	entry := WithComponent("http")

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := log.Fields{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			entry.WithFields(fields).Error(c.Errors.String())
			return
		}
		if c.Writer.Status() >= 500 {
			entry.WithFields(fields).Warn("request failed")
			return
		}
		entry.WithFields(fields).Debug("request served")
	}
}
