package booking

import (
	"errors"
	"fmt"
)

// ServiceError carries a machine-readable code alongside a user-visible
// message.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	CodeInvalidAction = "invalidAction"
	CodeConflict      = "statusConflict"
	CodePermission    = "permissionDenied"
	CodeNotFound      = "notFound"
	CodeInvalidInput  = "invalidInput"
)

// NewInvalidActionError reports an unknown transition action. This is a
// caller-contract violation, not a state-machine failure.
func NewInvalidActionError(action string) error {
	return &ServiceError{Code: CodeInvalidAction, Message: fmt.Sprintf("unknown booking action %q", action)}
}

// NewConflictError reports a transition attempted from the wrong status.
func NewConflictError(action string, current string) error {
	return &ServiceError{Code: CodeConflict, Message: fmt.Sprintf("cannot %s a booking that is %s", action, current)}
}

// NewPermissionError reports an actor not allowed to perform the action.
func NewPermissionError(msg string) error {
	return &ServiceError{Code: CodePermission, Message: msg}
}

// NewNotFoundError reports a missing booking or related record.
func NewNotFoundError(msg string) error {
	return &ServiceError{Code: CodeNotFound, Message: msg}
}

// NewInvalidInputError reports malformed booking input.
func NewInvalidInputError(msg string) error {
	return &ServiceError{Code: CodeInvalidInput, Message: msg}
}

// CodeOf returns the service error code of err, or "" for other errors.
func CodeOf(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
