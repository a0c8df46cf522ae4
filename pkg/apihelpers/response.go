package apihelpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the body of every contacts API response. Error responses leave Data empty.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
}

func WriteResponse(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}

func AbortWithErrorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{
		StatusCode: status,
		Message:    message,
	})
}

// AbortWithRouteError writes the {error:{message}} body used for unmatched routes and recovered panics.
func AbortWithRouteError(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{"message": http.StatusText(status)},
	})
}
