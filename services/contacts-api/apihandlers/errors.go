package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/case-framework/contact-manager/pkg/apihelpers"
	"github.com/case-framework/contact-manager/pkg/apihelpers/middlewares"
	"github.com/case-framework/contact-manager/pkg/apperrors"
	"github.com/gin-gonic/gin"
)

const (
	MSG_INVALID_REQUEST_BODY = "Invalid request body"
	MSG_INTERNAL_ERROR       = "Internal server error"
)

// statusForError maps the service error types to a status code and the message sent to the client.
func statusForError(err error) (int, string) {
	var validationErr *apperrors.ValidationError
	var conflictErr *apperrors.ConflictError
	var notFoundErr *apperrors.NotFoundError
	var outOfRangeErr *apperrors.OutOfRangeError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.As(err, &conflictErr):
		return http.StatusBadRequest, conflictErr.Error()
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error()
	case errors.As(err, &outOfRangeErr):
		return http.StatusBadRequest, outOfRangeErr.Error()
	default:
		return http.StatusInternalServerError, MSG_INTERNAL_ERROR
	}
}

func respondWithError(c *gin.Context, err error) {
	status, msg := statusForError(err)
	attrs := []any{
		slog.String("requestID", c.GetString(middlewares.CTX_KEY_REQUEST_ID)),
		slog.String("error", err.Error()),
	}
	if status >= http.StatusInternalServerError {
		slog.Error("contact request failed", attrs...)
	} else {
		slog.Warn("contact request rejected", attrs...)
	}
	apihelpers.AbortWithErrorResponse(c, status, msg)
}
