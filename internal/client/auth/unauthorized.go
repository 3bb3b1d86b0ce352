package auth

import (
	"context"

	"github.com/onemployment/client/internal/client/api"
)

// ShouldClearAuthOnUnauthorized reports whether err is a backend response
// that invalidates the local session. Only HTTP 401 qualifies; 400, 409,
// 429, and transport-level errors do not.
func ShouldClearAuthOnUnauthorized(err error) bool {
	apiErr, ok := api.AsAPIError(err)
	return ok && apiErr.Status == 401
}

// UnauthorizedDeps are the side effects Wrap performs when a call comes back
// classified as unauthorized.
type UnauthorizedDeps struct {
	// Predicate classifies an error as session-invalidating. Usually
	// ShouldClearAuthOnUnauthorized.
	Predicate func(error) bool

	// Store is the in-memory session container to clear.
	Store *Store

	// ClearPersisted removes the persisted session, best-effort. Optional.
	ClearPersisted func(ctx context.Context)

	// OnUnauthorized is an optional extra callback, e.g. a redirect.
	OnUnauthorized func()
}

// Wrap decorates a transport call so that an unauthorized result clears the
// in-memory and persisted session. The call's result and error are returned
// unmodified in all cases; the wrapper only adds side effects.
func Wrap[A, T any](call func(ctx context.Context, arg A) (T, error), deps UnauthorizedDeps) func(ctx context.Context, arg A) (T, error) {
	return func(ctx context.Context, arg A) (T, error) {
		res, err := call(ctx, arg)
		if err != nil && deps.Predicate != nil && deps.Predicate(err) {
			if deps.Store != nil {
				deps.Store.ClearCredentials()
			}
			if deps.ClearPersisted != nil {
				deps.ClearPersisted(ctx)
			}
			if deps.OnUnauthorized != nil {
				deps.OnUnauthorized()
			}
		}
		return res, err
	}
}
