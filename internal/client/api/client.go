package api

import (
	"context"

	"github.com/onemployment/client/internal/client/forms"
)

// Client is the backend surface the auth flows depend on. Failures carry an
// *APIError when the backend answered with a non-2xx status; transport-level
// failures are returned as plain errors.
type Client interface {
	Login(ctx context.Context, in forms.LoginInput) (Credentials, error)
	Register(ctx context.Context, in forms.RegisterInput) (Credentials, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*User, error)
	ValidateEmail(ctx context.Context, email string) (*AvailabilityResult, error)
	ValidateUsername(ctx context.Context, username string) (*AvailabilityResult, error)
	SuggestUsernames(ctx context.Context, username string) ([]string, error)
}
