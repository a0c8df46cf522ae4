package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HEADER_REQUEST_ID  = "X-Request-ID"
	CTX_KEY_REQUEST_ID = "requestID"
)

// RequestLogger tags every request with an id (taken from X-Request-ID or generated)
// and logs it once the handler chain has finished.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HEADER_REQUEST_ID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(CTX_KEY_REQUEST_ID, requestID)
		c.Header(HEADER_REQUEST_ID, requestID)

		c.Next()

		attrs := []any{
			slog.String("requestID", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		}
		switch {
		case c.Writer.Status() >= 500:
			slog.Error("request handled", attrs...)
		case c.Writer.Status() >= 400:
			slog.Warn("request handled", attrs...)
		default:
			slog.Info("request handled", attrs...)
		}
	}
}
