// Package errors holds error types shared by the delivery layer.
package errors

import "fmt"

// HTTPError is an error that already knows its HTTP status and client-facing message.
type HTTPError struct {
	Code    int
	Message string
	Errors  any // optional field-level details
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// WithErrors attaches field-level details.
func (e *HTTPError) WithErrors(errs any) *HTTPError {
	cp := *e
	cp.Errors = errs
	return &cp
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}
