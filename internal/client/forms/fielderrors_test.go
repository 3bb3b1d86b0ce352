package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFieldErrors_GroupsByFieldPreservingOrder(t *testing.T) {
	details := []ValidationDetail{
		{Field: "email", Message: "A"},
		{Field: "password", Message: "B"},
		{Field: "password", Message: "C"},
	}

	m := CollectFieldErrors(details)

	require.Equal(t, FieldErrorMap{
		"email":    {"A"},
		"password": {"B", "C"},
	}, m)
}

func TestCollectFieldErrors_SkipsIllFormedEntries(t *testing.T) {
	details := []ValidationDetail{
		{Field: "", Message: "no field"},
		{Field: "email", Message: ""},
		{Field: "email", Message: "kept"},
	}

	m := CollectFieldErrors(details)

	assert.Equal(t, FieldErrorMap{"email": {"kept"}}, m)
}

func TestCollectFieldErrors_NilYieldsEmptyMap(t *testing.T) {
	m := CollectFieldErrors(nil)
	require.NotNil(t, m)
	assert.Empty(t, m)
}

func TestFirstFieldError(t *testing.T) {
	m := CollectFieldErrors([]ValidationDetail{
		{Field: "password", Message: "B"},
		{Field: "password", Message: "C"},
	})

	assert.Equal(t, "B", FirstFieldError("password", m))
	assert.Equal(t, "", FirstFieldError("missing", m))
	assert.Equal(t, "", FirstFieldError("empty", FieldErrorMap{"empty": {}}))
}
