package handler

import (
	"net/http"

	"github.com/metamatong/comp3981-abalone-sumitoq/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeInvalidConfig      = apierr.CodeInvalidConfig
	CodeMalformedMove      = apierr.CodeMalformedMove
	CodeIllegalMove        = apierr.CodeIllegalMove
	CodeUnauthorized       = apierr.CodeUnauthorized
	CodeNotYourTurn        = apierr.CodeNotYourTurn
	CodeMatchOver          = apierr.CodeMatchOver
	CodeMatchPaused        = apierr.CodeMatchPaused
	CodeNothingToUndo      = apierr.CodeNothingToUndo
	CodeAccountNotFound    = apierr.CodeAccountNotFound
	CodeMatchNotFound      = apierr.CodeMatchNotFound
	CodeAgentMoveError     = apierr.CodeAgentMoveError
	CodeUsernameExists     = apierr.CodeUsernameExists
	CodeInvalidCredentials = apierr.CodeInvalidCredentials
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
