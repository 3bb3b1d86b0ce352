package controllers

import (
	"context"

	"github.com/onemployment/client/internal/client/api"
	"github.com/onemployment/client/internal/client/forms"
)

// LoginDeps are the collaborators a login submission needs. The transport
// is injected so the flow can be exercised without a live backend.
type LoginDeps struct {
	Login          func(ctx context.Context, in forms.LoginInput) (api.Credentials, error)
	Navigate       func(path string)
	SetFieldErrors func(forms.FieldErrorMap)
	SetFormError   func(msg string)
}

// NewLoginSubmit builds the sign-in submit function. Per submission it
// clears previous field errors, sanitizes input, runs presence checks
// (an empty field short-circuits before the transport is called), then
// submits and maps any failure onto the error callbacks. On success it
// navigates to RouteApp.
func NewLoginSubmit(deps LoginDeps) func(ctx context.Context, in forms.LoginInput) {
	return func(ctx context.Context, in forms.LoginInput) {
		deps.SetFieldErrors(forms.FieldErrorMap{})

		sanitized := forms.SanitizeLoginInput(in)

		presence := forms.FieldErrorMap{}
		if sanitized.Email == "" {
			presence["email"] = []string{"Email is required"}
		}
		if sanitized.Password == "" {
			presence["password"] = []string{"Password is required"}
		}
		if len(presence) > 0 {
			deps.SetFieldErrors(presence)
			return
		}

		if _, err := deps.Login(ctx, sanitized); err != nil {
			if apiErr, ok := api.AsAPIError(err); ok {
				if apiErr.Status == 400 && len(apiErr.Details) > 0 {
					deps.SetFieldErrors(forms.CollectFieldErrors(apiErr.Details))
				}
				if apiErr.Message != "" {
					deps.SetFormError(apiErr.Message)
					return
				}
			}
			deps.SetFormError("Sign in failed")
			return
		}

		deps.Navigate(RouteApp)
	}
}
