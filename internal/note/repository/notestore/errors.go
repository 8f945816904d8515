package notestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the Note Store.
type APIError struct {
	StatusCode int
	Message    string // server-supplied message, may be empty
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("note store API error %d", e.StatusCode)
	}
	return fmt.Sprintf("note store API error %d: %s", e.StatusCode, e.Message)
}

// HTTPStatus returns the response status code.
func (e *APIError) HTTPStatus() int { return e.StatusCode }

// ServerMessage returns the message supplied by the Note Store, if any.
func (e *APIError) ServerMessage() string { return e.Message }

// newAPIError reads a {"message": ...} or {"error": ...} body. Non-JSON bodies leave Message empty.
func newAPIError(status int, raw []byte) *APIError {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	apiErr := &APIError{StatusCode: status}
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Message = strings.TrimSpace(body.Message)
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(body.Error)
		}
	}
	return apiErr
}

// StatusCode extracts the HTTP status of an APIError in err's chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err carries a 404 from the Note Store.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
