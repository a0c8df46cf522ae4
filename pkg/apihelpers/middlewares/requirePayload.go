package middlewares

import (
	"log/slog"
	"net/http"

	"github.com/case-framework/contact-manager/pkg/apihelpers"
	"github.com/gin-gonic/gin"
)

const MSG_PAYLOAD_MISSING = "payload missing"

// RequirePayload blocks post and put requests that have no payload attached
func RequirePayload() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength == 0 {
			slog.Debug("RequirePayload Middleware: payload missing", slog.String("path", c.Request.URL.Path))
			apihelpers.AbortWithErrorResponse(c, http.StatusBadRequest, MSG_PAYLOAD_MISSING)
			return
		}
		c.Next()
	}
}
