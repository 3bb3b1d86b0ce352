package forms

import "strings"

// LoginInput is the raw sign-in form state.
type LoginInput struct {
	Email    string
	Password string
}

// SanitizeLoginInput normalizes login input before validation and submission:
// the email is trimmed and lowercased, the password is passed through
// unchanged so intentional leading/trailing characters survive.
func SanitizeLoginInput(in LoginInput) LoginInput {
	return LoginInput{
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: in.Password,
	}
}

// ValidateLoginInput runs the client-side checks for the sign-in form and
// returns any problems as a FieldErrorMap. An empty map means the input is
// acceptable to submit.
func ValidateLoginInput(in LoginInput) FieldErrorMap {
	errs := FieldErrorMap{}
	email := strings.TrimSpace(in.Email)

	if email == "" {
		errs["email"] = []string{"Email is required"}
	} else if !IsValidEmail(email) {
		errs["email"] = []string{"Email is invalid"}
	}

	if in.Password == "" {
		errs["password"] = []string{"Password is required"}
	}

	return errs
}
