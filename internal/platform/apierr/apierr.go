package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation   = "validation_error"
	CodeUnauthorized = "unauthorized"
	CodeNotFound     = "not_found"
	CodeRateLimited  = "rate_limited"
	CodeUpstream     = "upstream_failure"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Validation(format string, args ...interface{}) *Error {
	return New(http.StatusBadRequest, CodeValidation, fmt.Errorf(format, args...))
}

func Unauthorized(format string, args ...interface{}) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, fmt.Errorf(format, args...))
}

func NotFound(format string, args ...interface{}) *Error {
	return New(http.StatusNotFound, CodeNotFound, fmt.Errorf(format, args...))
}

func RateLimited(format string, args ...interface{}) *Error {
	return New(http.StatusTooManyRequests, CodeRateLimited, fmt.Errorf(format, args...))
}

func Upstream(err error) *Error {
	return New(http.StatusInternalServerError, CodeUpstream, err)
}

// FromError normalizes any error into an *Error. Unknown errors are
// treated as upstream failures so storage-layer detail never leaks.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Upstream(err)
}
