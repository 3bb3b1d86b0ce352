package api

import "encoding/json"

// User is the profile record returned by the backend. The auth flows treat
// it as an opaque serializable value; only the CLI views read individual
// fields for display.
type User struct {
	ID                    string  `json:"id"`
	Email                 string  `json:"email"`
	Username              string  `json:"username"`
	FirstName             string  `json:"firstName"`
	LastName              string  `json:"lastName"`
	DisplayName           *string `json:"displayName"`
	EmailVerified         bool    `json:"emailVerified"`
	AccountCreationMethod string  `json:"accountCreationMethod,omitempty"`
	CreatedAt             string  `json:"createdAt"`
	LastLoginAt           *string `json:"lastLoginAt"`
}

// Credentials is a {token, user} pair representing an authenticated session.
// The user payload is kept as raw JSON: the session layer round-trips it
// verbatim and never validates its shape.
type Credentials struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

// LoginResponse is the success shape of POST /api/v1/auth/login.
type LoginResponse struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user"`
}

// RegisterResponse is the success shape of POST /api/v1/user.
type RegisterResponse struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user"`
}

// AvailabilityResult is the success shape of the validate-email and
// validate-username endpoints. Suggestions are only ever present for
// username checks.
type AvailabilityResult struct {
	Available   bool     `json:"available"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// ParseLoginResponse extracts the credentials pair from a login response.
// No other fields are consulted.
func ParseLoginResponse(res LoginResponse) Credentials {
	return Credentials{Token: res.Token, User: res.User}
}

// ParseRegisterResponse extracts the credentials pair from a register response.
func ParseRegisterResponse(res RegisterResponse) Credentials {
	return Credentials{Token: res.Token, User: res.User}
}
