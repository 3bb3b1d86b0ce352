package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterInput(t *testing.T) {
	in := RegisterInput{
		Email:     " New@Example.Com ",
		Password:  " keep me ",
		Username:  "  john-smith ",
		FirstName: " John ",
		LastName:  " Smith ",
	}

	got := SanitizeRegisterInput(in)

	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, " keep me ", got.Password)
	assert.Equal(t, "john-smith", got.Username)
	assert.Equal(t, "John", got.FirstName)
	assert.Equal(t, "Smith", got.LastName)
}

func TestValidateRegisterInput_Valid(t *testing.T) {
	errs := ValidateRegisterInput(RegisterInput{
		Email:     "user@example.com",
		Password:  "StrongPass123",
		Username:  "john-smith",
		FirstName: "John",
		LastName:  "Smith",
	})
	assert.Empty(t, errs)
}

func TestValidateRegisterInput_AllEmpty(t *testing.T) {
	errs := ValidateRegisterInput(RegisterInput{})

	assert.Equal(t, FieldErrorMap{
		"email":     {"Email is required"},
		"password":  {"Password is required"},
		"username":  {"Username is required"},
		"firstName": {"First name is required"},
		"lastName":  {"Last name is required"},
	}, errs)
}

func TestValidateRegisterInput_FormatFailures(t *testing.T) {
	errs := ValidateRegisterInput(RegisterInput{
		Email:     "bad",
		Password:  "weak",
		Username:  "-bad-",
		FirstName: "John3",
		LastName:  "Smith",
	})

	assert.Equal(t, []string{"Email is invalid"}, errs["email"])
	assert.Equal(t, []string{"Password does not meet complexity requirements"}, errs["password"])
	assert.Equal(t, []string{"Username is invalid"}, errs["username"])
	assert.Equal(t, []string{"First name is invalid"}, errs["firstName"])
	assert.NotContains(t, errs, "lastName")
}
