package api

import (
	"errors"
	"fmt"

	"github.com/onemployment/client/internal/client/forms"
)

// Error codes the backend attaches to 409 conflict responses.
const (
	CodeEmailTaken    = "EMAIL_TAKEN"
	CodeUsernameTaken = "USERNAME_TAKEN"
)

// APIError is a non-2xx backend response decoded into a typed value.
// Details is only populated on 400 validation failures and RetryAfter only
// on 429 rate-limit responses; both are zero otherwise.
type APIError struct {
	Status     int
	Code       string
	Message    string
	Details    []forms.ValidationDetail
	RetryAfter int
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// AsAPIError unwraps err into an *APIError if one is present in its chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// errorPayload is the wire shape of backend error bodies. All fields are
// optional; absent ones are left zero.
type errorPayload struct {
	Error      string                   `json:"error"`
	Message    string                   `json:"message"`
	Details    []forms.ValidationDetail `json:"details"`
	RetryAfter int                      `json:"retryAfter"`
}
