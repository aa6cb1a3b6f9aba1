package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound        = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists   = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput    = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized    = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden       = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrRemoteFailure   = NewDomainError("REMOTE_FAILURE", "Upstream service call failed")
	ErrRequestPending  = NewDomainError("STACK_REQUEST_PENDING", "A stack request is already in flight")
	ErrStackAtCapacity = NewDomainError("STACK_AT_CAPACITY", "Stack already holds the maximum number of compounds")
	ErrDuplicateInStack = NewDomainError("DUPLICATE_IN_STACK", "Compound is already in the stack")
	ErrNoGoalSelected  = NewDomainError("NO_GOAL_SELECTED", "Pick a goal before submitting free text")
)
