package controllers

import "context"

type LogoutDeps struct {
	Logout   func(ctx context.Context) error
	Navigate func(path string)
}

// NewLogoutHandler builds the logout function. The transport result is
// ignored entirely; navigation to RouteLogin happens exactly once per
// invocation regardless of outcome.
func NewLogoutHandler(deps LogoutDeps) func(ctx context.Context) {
	return func(ctx context.Context) {
		_ = deps.Logout(ctx)
		deps.Navigate(RouteLogin)
	}
}
