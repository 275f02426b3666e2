package handlers

import (
	"context"
	"errors"
	"net/http"

	"delivery-hooks/internal/services"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MessageResponse represents a successful response of the local server
type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// statusForError maps a service failure to an HTTP status
func statusForError(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case services.IsServiceError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorCode is the client-facing reason for a failure. The AWS error code is
// exposed; the full error, with ARNs and request ids, only goes to the log.
func errorCode(err error) string {
	if code := services.APIErrorCode(err); code != "" {
		return code
	}
	return http.StatusText(statusForError(err))
}
