package failure

import (
	"errors"
	"net/http"
)

// Failure carries an HTTP status code alongside the message so transport code
// can map service errors to responses without inspecting error strings.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidPageParam        = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
	InvalidLimitParam       = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
	ForbiddenError          = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}
)

func (e *Failure) Error() string {
	return e.Message
}

func withCode(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

// BadRequest wraps err as a 400 failure. Returns nil for a nil err.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return withCode(http.StatusBadRequest, err.Error())
}

// BadRequestFromString returns a 400 failure with the given message.
func BadRequestFromString(msg string) error {
	return withCode(http.StatusBadRequest, msg)
}

// Unauthorized returns a 401 failure.
func Unauthorized(msg string) error {
	return withCode(http.StatusUnauthorized, msg)
}

// InternalError wraps err as a 500 failure. Returns nil for a nil err.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return withCode(http.StatusInternalServerError, err.Error())
}

// Unimplemented returns a 501 failure naming the missing method.
func Unimplemented(methodName string) error {
	return withCode(http.StatusNotImplemented, methodName)
}

// NotFound returns a 404 failure naming the missing entity.
func NotFound(entityName string) error {
	return withCode(http.StatusNotFound, entityName)
}

// Conflict returns a 409 failure.
func Conflict(msg string) error {
	return withCode(http.StatusConflict, msg)
}

// Forbidden returns a 403 failure.
func Forbidden(msg string) error {
	return withCode(http.StatusForbidden, msg)
}

// GetCode extracts the HTTP status from err, defaulting to 500 for errors
// that are not Failures.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
