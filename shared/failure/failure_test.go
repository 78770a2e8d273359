package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"madison/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "check-out must be after check-in",
	}

	if f.Error() != "check-out must be after check-in" {
		t.Errorf("expected message 'check-out must be after check-in', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
		{
			name:    "ResourceRestrictedError",
			failure: failure.ResourceRestrictedError,
			code:    http.StatusForbidden,
			message: "You don't have permission to access this resource",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, tt.failure.Code)
			}

			if tt.failure.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name        string
		result      error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "BadRequest wraps the error",
			result:      failure.BadRequest(errors.New("invalid price range")),
			wantCode:    http.StatusBadRequest,
			wantMessage: "invalid price range",
		},
		{
			name:        "BadRequestFromString",
			result:      failure.BadRequestFromString("guests exceeds room capacity"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "guests exceeds room capacity",
		},
		{
			name:        "Unauthorized",
			result:      failure.Unauthorized("token expired"),
			wantCode:    http.StatusUnauthorized,
			wantMessage: "token expired",
		},
		{
			name:        "InternalError wraps the error",
			result:      failure.InternalError(errors.New("database connection failed")),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "database connection failed",
		},
		{
			name:        "Unimplemented",
			result:      failure.Unimplemented("ExportBookings"),
			wantCode:    http.StatusNotImplemented,
			wantMessage: "ExportBookings",
		},
		{
			name:        "NotFound",
			result:      failure.NotFound("Room not found"),
			wantCode:    http.StatusNotFound,
			wantMessage: "Room not found",
		},
		{
			name:        "Conflict",
			result:      failure.Conflict("Email already registered"),
			wantCode:    http.StatusConflict,
			wantMessage: "Email already registered",
		},
		{
			name:        "Forbidden",
			result:      failure.Forbidden("Receptionists cannot delete rooms"),
			wantCode:    http.StatusForbidden,
			wantMessage: "Receptionists cannot delete rooms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.result)
			}

			if f.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, f.Code)
			}

			if f.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, f.Message)
			}
		})
	}
}

func TestNilErrorConstructors(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected BadRequest(nil) to be nil, got %v", err)
	}

	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected InternalError(nil) to be nil, got %v", err)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusNotFound, Message: "Booking not found"},
			expected: http.StatusNotFound,
		},
		{
			name:     "constructed failure",
			input:    failure.BadRequestFromString("invalid date"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "plain error maps to 500",
			input:    errors.New("connection reset"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error maps to 500",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.input); code != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, code)
			}
		})
	}
}
