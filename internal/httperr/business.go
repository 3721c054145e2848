package httperr

import (
	"errors"
	"net/http"
)

// BusinessError is a client-visible failure. Every other error is reported as 500.
type BusinessError struct {
	Status  int
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func (e BusinessError) StatusCode() int {
	return e.Status
}

func ErrBusiness(status int, code, message string) error {
	return BusinessError{Status: status, Code: code, Message: message}
}

func BadRequest(code, message string) error {
	return ErrBusiness(http.StatusBadRequest, code, message)
}

// NotFound errors are surfaced as 400 with a descriptive message.
func NotFound(code, message string) error {
	return ErrBusiness(http.StatusBadRequest, code, message)
}

func Unauthorized(code, message string) error {
	return ErrBusiness(http.StatusUnauthorized, code, message)
}

func TooManyRequests(message string) error {
	return ErrBusiness(http.StatusTooManyRequests, "rate_limited", message)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// As extracts the BusinessError wrapped in err, if any.
func As(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
