package middleware

import (
	"bemu_storefront/pkg/logger"
	"time"

	"github.com/gin-gonic/gin"
)

// StructuredLogging logs one line per request. 4xx are warnings, 5xx errors.
func StructuredLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()
		ctx := c.Request.Context()

		event := logger.Info(ctx)
		if status >= 500 {
			event = logger.Error(ctx)
		} else if status >= 400 {
			event = logger.Warn(ctx)
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Str("ip", c.ClientIP()).
			Int("status", status).
			Dur("duration", duration).
			Int("response_size", c.Writer.Size()).
			Msg("request completed")

		for _, e := range c.Errors {
			logger.Error(ctx).Err(e.Err).Str("path", c.Request.URL.Path).Msg("request error")
		}
	}
}
