package forms

import "strings"

// RegisterInput is the raw sign-up form state.
type RegisterInput struct {
	Email     string
	Password  string
	Username  string
	FirstName string
	LastName  string
}

// SanitizeRegisterInput normalizes sign-up input: email is trimmed and
// lowercased, username and names are trimmed, the password is untouched.
func SanitizeRegisterInput(in RegisterInput) RegisterInput {
	return RegisterInput{
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Password:  in.Password,
		Username:  strings.TrimSpace(in.Username),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
	}
}

// ValidateRegisterInput runs the client-side checks for the sign-up form.
// Each field gets a "required" message when empty and an "invalid" message
// when present but malformed; the two never appear together for one field.
func ValidateRegisterInput(in RegisterInput) FieldErrorMap {
	errs := FieldErrorMap{}

	email := strings.TrimSpace(in.Email)
	username := strings.TrimSpace(in.Username)
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)

	if email == "" {
		errs["email"] = []string{"Email is required"}
	} else if !IsValidEmail(email) {
		errs["email"] = []string{"Email is invalid"}
	}

	if in.Password == "" {
		errs["password"] = []string{"Password is required"}
	} else if !IsValidPassword(in.Password) {
		errs["password"] = []string{"Password does not meet complexity requirements"}
	}

	if username == "" {
		errs["username"] = []string{"Username is required"}
	} else if !IsValidUsername(username) {
		errs["username"] = []string{"Username is invalid"}
	}

	if firstName == "" {
		errs["firstName"] = []string{"First name is required"}
	} else if !IsValidName(firstName) {
		errs["firstName"] = []string{"First name is invalid"}
	}

	if lastName == "" {
		errs["lastName"] = []string{"Last name is required"}
	} else if !IsValidName(lastName) {
		errs["lastName"] = []string{"Last name is invalid"}
	}

	return errs
}
