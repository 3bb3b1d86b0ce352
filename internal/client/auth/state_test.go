package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onemployment/client/internal/client/api"
)

func testCreds(token string) api.Credentials {
	return api.Credentials{Token: token, User: json.RawMessage(`{"id":"u1"}`)}
}

func TestStore_StartsUnauthenticated(t *testing.T) {
	s := NewStore(api.Credentials{})

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, "", s.Token())
	assert.Nil(t, s.CurrentUser())
}

func TestStore_PreloadedState(t *testing.T) {
	s := NewStore(testCreds("jwt"))

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "jwt", s.Token())
}

func TestStore_SetThenClear(t *testing.T) {
	s := NewStore(api.Credentials{})

	s.SetCredentials(testCreds("jwt-1"))
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "jwt-1", s.Token())
	assert.JSONEq(t, `{"id":"u1"}`, string(s.CurrentUser()))

	s.ClearCredentials()
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, "", s.Token())
	assert.Nil(t, s.CurrentUser())
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	s := NewStore(api.Credentials{})
	s.ClearCredentials()
	s.ClearCredentials()
	assert.False(t, s.IsAuthenticated())
}

func TestStore_SetOverwritesExistingSession(t *testing.T) {
	s := NewStore(testCreds("old"))

	s.SetCredentials(testCreds("new"))

	assert.Equal(t, "new", s.Token())
	assert.True(t, s.IsAuthenticated())
}

func TestStore_TokenAloneIsNotAuthenticated(t *testing.T) {
	s := NewStore(api.Credentials{Token: "jwt"})
	assert.False(t, s.IsAuthenticated())
}
