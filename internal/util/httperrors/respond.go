package http_errors

import (
	"errors"
	"net/http"

	"teamspace-backend/internal/util/apperrors"

	"github.com/gin-gonic/gin"
)

// Respond maps a service error to an HTTP response. Domain error kinds
// get their status; anything else is a bad request with the message
// passed through.
func Respond(ctx *gin.Context, err error) {
	status := http.StatusBadRequest

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrExpired):
		status = http.StatusGone
	case errors.Is(err, apperrors.ErrBusinessRule):
		status = http.StatusBadRequest
	}

	ctx.JSON(status, gin.H{"error": err.Error()})
}
