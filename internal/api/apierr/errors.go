package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/metamatong/comp3981-abalone-sumitoq/internal/model"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidConfig      = "INVALID_CONFIG"
	CodeMalformedMove      = "MALFORMED_MOVE"
	CodeIllegalMove        = "ILLEGAL_MOVE"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNotYourTurn        = "NOT_YOUR_TURN"
	CodeMatchOver          = "MATCH_OVER"
	CodeMatchPaused        = "MATCH_PAUSED"
	CodeNothingToUndo      = "NOTHING_TO_UNDO"
	CodeAccountNotFound    = "ACCOUNT_NOT_FOUND"
	CodeMatchNotFound      = "MATCH_NOT_FOUND"
	CodeAgentMoveError     = "AGENT_MOVE_ERROR"
	CodeUsernameExists     = "USERNAME_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Lookup failures
	case errors.Is(err, model.ErrAccountNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAccountNotFound, "Account not found"}}
	case errors.Is(err, model.ErrMatchNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMatchNotFound, "Match not found"}}

	// Match flow
	case errors.Is(err, model.ErrMatchOver):
		return &httpError{http.StatusConflict, APIError{CodeMatchOver, "Game is over"}}
	case errors.Is(err, model.ErrMatchPaused):
		return &httpError{http.StatusConflict, APIError{CodeMatchPaused, "Game is paused"}}
	case errors.Is(err, model.ErrNotHumanTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "It is an agent-controlled turn"}}
	case errors.Is(err, model.ErrNotAgentTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "It is a human-controlled turn"}}
	case errors.Is(err, model.ErrNothingToUndo):
		return &httpError{http.StatusConflict, APIError{CodeNothingToUndo, "Nothing to undo"}}
	case errors.Is(err, model.ErrAgentMoveError):
		return &httpError{http.StatusInternalServerError, APIError{CodeAgentMoveError, "Agent failed to produce a valid move"}}

	// Configuration
	case errors.Is(err, model.ErrUnknownMode):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidConfig, "Unknown game mode"}}
	case errors.Is(err, model.ErrUnknownLayout):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidConfig, "Unknown board layout"}}
	case errors.Is(err, model.ErrInvalidDepth):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidConfig, "Search depth must be between 1 and 5"}}

	// Malformed move input
	case errors.Is(err, model.ErrMalformedPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeMalformedMove, "Malformed board position"}}
	case errors.Is(err, model.ErrUnknownDirection):
		return &httpError{http.StatusBadRequest, APIError{CodeMalformedMove, "Unknown move direction"}}
	case errors.Is(err, model.ErrBadMarbleCount):
		return &httpError{http.StatusBadRequest, APIError{CodeMalformedMove, "Moves use one to three marbles"}}
	case errors.Is(err, model.ErrDuplicateMarbles):
		return &httpError{http.StatusBadRequest, APIError{CodeMalformedMove, "Duplicate marbles in move"}}
	case errors.Is(err, model.ErrNotColinear):
		return &httpError{http.StatusBadRequest, APIError{CodeMalformedMove, "Marbles must form a contiguous line"}}

	// Rule violations
	case errors.Is(err, model.ErrNotOwned):
		return &httpError{http.StatusConflict, APIError{CodeIllegalMove, "Marble not owned by the moving player"}}
	case errors.Is(err, model.ErrOffBoardInline):
		return &httpError{http.StatusConflict, APIError{CodeIllegalMove, "Inline move runs off the board"}}
	case errors.Is(err, model.ErrSelfPush):
		return &httpError{http.StatusConflict, APIError{CodeIllegalMove, "Cannot push your own marble"}}
	case errors.Is(err, model.ErrOutnumbered):
		return &httpError{http.StatusConflict, APIError{CodeIllegalMove, "Push requires strictly outnumbering the opposing line"}}
	case errors.Is(err, model.ErrPushBlocked):
		return &httpError{http.StatusConflict, APIError{CodeIllegalMove, "Push is blocked behind the opposing line"}}
	case errors.Is(err, model.ErrDestinationFull):
		return &httpError{http.StatusConflict, APIError{CodeIllegalMove, "Broadside destination is occupied"}}

	// Auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
