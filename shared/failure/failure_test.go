package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hotelier/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestInvalidIDFormat(t *testing.T) {
	if failure.InvalidIDFormat.Code != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, failure.InvalidIDFormat.Code)
	}

	if failure.InvalidIDFormat.Message != "Invalid ID format" {
		t.Errorf("expected message to be 'Invalid ID format', got %s", failure.InvalidIDFormat.Message)
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name    string
		input   error
		code    int
		message string
		isNil   bool
	}{
		{
			name:    "with error",
			input:   errors.New("validation failed"),
			code:    http.StatusBadRequest,
			message: "validation failed",
		},
		{
			name:  "with nil error",
			input: nil,
			isNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := failure.BadRequest(tt.input)

			if tt.isNil {
				if err != nil {
					t.Errorf("expected nil, got %v", err)
				}

				return
			}

			if failure.GetCode(err) != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, failure.GetCode(err))
			}

			if err.Error() != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, err.Error())
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	err := failure.NotFound("Booking not found")

	if failure.GetCode(err) != http.StatusNotFound {
		t.Errorf("expected code to be %d, got %d", http.StatusNotFound, failure.GetCode(err))
	}

	if err.Error() != "Booking not found" {
		t.Errorf("expected message to be 'Booking not found', got %s", err.Error())
	}
}

func TestDuplicate(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		expected string
	}{
		{name: "lowercase field", field: "email", expected: "Email already exists"},
		{name: "already capitalized", field: "Number", expected: "Number already exists"},
		{name: "empty field", field: "", expected: "Value already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := failure.Duplicate(tt.field)

			if failure.GetCode(err) != http.StatusBadRequest {
				t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, failure.GetCode(err))
			}

			if err.Error() != tt.expected {
				t.Errorf("expected message to be %s, got %s", tt.expected, err.Error())
			}
		})
	}
}

func TestInternalError(t *testing.T) {
	cause := errors.New("connection refused")
	err := failure.InternalError(cause)

	if failure.GetCode(err) != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, failure.GetCode(err))
	}

	if err.Error() != "internal server error" {
		t.Errorf("expected generic message, got %s", err.Error())
	}

	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable via errors.Is")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected nil for nil cause")
	}
}

func TestGetCode(t *testing.T) {
	if code := failure.GetCode(errors.New("boom")); code != http.StatusInternalServerError {
		t.Errorf("expected unknown errors to map to 500, got %d", code)
	}

	wrapped := fmt.Errorf("handler: %w", failure.NotFound("Guest not found"))
	if code := failure.GetCode(wrapped); code != http.StatusNotFound {
		t.Errorf("expected wrapped failure code to be 404, got %d", code)
	}
}

func TestCause(t *testing.T) {
	cause := errors.New("pq: duplicate key")
	err := failure.InternalError(cause)

	if failure.Cause(err) != cause {
		t.Errorf("expected cause to be %v, got %v", cause, failure.Cause(err))
	}

	plain := errors.New("plain error")
	if failure.Cause(plain) != plain {
		t.Errorf("expected plain error to be its own cause, got %v", failure.Cause(plain))
	}

	noCause := failure.BadRequestFromString("bad input")
	if failure.Cause(noCause) != noCause {
		t.Errorf("expected failure without cause to return itself")
	}
}
