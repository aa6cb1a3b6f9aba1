package dto

import "net/http"

// Error codes used by handlers for failures that do not originate in the
// domain layer. Domain error codes pass through unchanged.
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeNotFound     = "NOT_FOUND"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	"NOT_FOUND":      http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,
	"INVALID_INPUT":  http.StatusBadRequest,
	"INVALID_GOAL":   http.StatusBadRequest,
	"INVALID_PLAN":   http.StatusBadRequest,
	"UNAUTHORIZED":   http.StatusUnauthorized,
	"FORBIDDEN":      http.StatusForbidden,

	"NO_GOAL_SELECTED":      http.StatusBadRequest,
	"STACK_REQUEST_PENDING": http.StatusConflict,
	"STACK_AT_CAPACITY":     http.StatusUnprocessableEntity,
	"DUPLICATE_IN_STACK":    http.StatusUnprocessableEntity,
	"NO_CANDIDATES":         http.StatusUnprocessableEntity,
	"NO_SUBSCRIPTION":       http.StatusBadRequest,

	"REMOTE_FAILURE": http.StatusBadGateway,
	"EMPTY_RESPONSE": http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
