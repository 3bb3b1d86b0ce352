// Package controllers orchestrates the auth flows: sanitize, validate,
// call the injected transport, interpret the result, and report back through
// UI-facing callbacks. Controllers never let an error escape; every failure
// ends up as a field-level or form-level message.
package controllers

// Navigation targets reported through the Navigate callback.
const (
	RouteApp   = "/app"
	RouteLogin = "/login"
)
