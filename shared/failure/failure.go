package failure

import (
	"errors"
	"net/http"
	"strings"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

// InvalidIDFormat rejects identifiers that are not well-formed UUIDs.
var InvalidIDFormat = &Failure{Code: http.StatusBadRequest, Message: "Invalid ID format"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

// Duplicate returns a new Failure for a unique-constraint violation on the
// given field, e.g. Duplicate("email") -> "Email already exists".
func Duplicate(field string) error {
	if field == "" {
		field = "value"
	}

	return &Failure{
		Code:    http.StatusBadRequest,
		Message: strings.ToUpper(field[:1]) + field[1:] + " already exists",
	}
}

// Conflict returns a new Failure with code for conflicting state.
func Conflict(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal errors. The
// original error is retained as the cause so non-production responses can
// echo it.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
			cause:   err,
		}
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Cause returns the underlying error behind a Failure, or the error itself
// when it carries no separate cause.
func Cause(err error) error {
	var fail *Failure
	if errors.As(err, &fail) && fail.cause != nil {
		return fail.cause
	}

	return err
}
