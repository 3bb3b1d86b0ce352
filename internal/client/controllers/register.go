package controllers

import (
	"context"

	"github.com/onemployment/client/internal/client/api"
	"github.com/onemployment/client/internal/client/forms"
)

type RegisterDeps struct {
	Register       func(ctx context.Context, in forms.RegisterInput) (api.Credentials, error)
	Navigate       func(path string)
	SetFieldErrors func(forms.FieldErrorMap)
	SetFormError   func(msg string)
}

// NewRegisterSubmit builds the sign-up submit function. The flow mirrors
// login, with two extra failure mappings: a 400 with details becomes
// per-field errors, and a 409 conflict pins the message on the email or
// username field when the backend reports EMAIL_TAKEN or USERNAME_TAKEN.
// Any other 409 code surfaces only the form-level message.
func NewRegisterSubmit(deps RegisterDeps) func(ctx context.Context, in forms.RegisterInput) {
	return func(ctx context.Context, in forms.RegisterInput) {
		deps.SetFieldErrors(forms.FieldErrorMap{})

		sanitized := forms.SanitizeRegisterInput(in)

		presence := forms.FieldErrorMap{}
		if sanitized.Email == "" {
			presence["email"] = []string{"Email is required"}
		}
		if sanitized.Password == "" {
			presence["password"] = []string{"Password is required"}
		}
		if sanitized.Username == "" {
			presence["username"] = []string{"Username is required"}
		}
		if sanitized.FirstName == "" {
			presence["firstName"] = []string{"First name is required"}
		}
		if sanitized.LastName == "" {
			presence["lastName"] = []string{"Last name is required"}
		}
		if len(presence) > 0 {
			deps.SetFieldErrors(presence)
			return
		}

		if _, err := deps.Register(ctx, sanitized); err != nil {
			if apiErr, ok := api.AsAPIError(err); ok {
				if apiErr.Status == 400 && len(apiErr.Details) > 0 {
					deps.SetFieldErrors(forms.CollectFieldErrors(apiErr.Details))
				}
				if apiErr.Status == 409 && apiErr.Message != "" {
					switch apiErr.Code {
					case api.CodeEmailTaken:
						deps.SetFieldErrors(forms.FieldErrorMap{"email": {apiErr.Message}})
					case api.CodeUsernameTaken:
						deps.SetFieldErrors(forms.FieldErrorMap{"username": {apiErr.Message}})
					}
					deps.SetFormError(apiErr.Message)
					return
				}
				if apiErr.Message != "" {
					deps.SetFormError(apiErr.Message)
					return
				}
			}
			deps.SetFormError("Registration failed")
			return
		}

		deps.Navigate(RouteApp)
	}
}
