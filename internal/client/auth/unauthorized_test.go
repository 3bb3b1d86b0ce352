package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onemployment/client/internal/client/api"
)

func TestShouldClearAuthOnUnauthorized(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "401 clears", err: &api.APIError{Status: 401}, want: true},
		{name: "429 does not", err: &api.APIError{Status: 429}, want: false},
		{name: "400 does not", err: &api.APIError{Status: 400}, want: false},
		{name: "409 does not", err: &api.APIError{Status: 409}, want: false},
		{name: "plain error does not", err: errors.New("boom"), want: false},
		{name: "nil does not", err: nil, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ShouldClearAuthOnUnauthorized(tc.err))
		})
	}
}

func TestWrap_ClearsSessionOn401(t *testing.T) {
	store := NewStore(testCreds("jwt"))

	persistedCleared := false
	callbackFired := false

	call := func(ctx context.Context, _ string) (int, error) {
		return 7, &api.APIError{Status: 401}
	}
	wrapped := Wrap(call, UnauthorizedDeps{
		Predicate:      ShouldClearAuthOnUnauthorized,
		Store:          store,
		ClearPersisted: func(ctx context.Context) { persistedCleared = true },
		OnUnauthorized: func() { callbackFired = true },
	})

	res, err := wrapped(context.Background(), "arg")

	// Result and error pass through unmodified.
	assert.Equal(t, 7, res)
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)

	assert.False(t, store.IsAuthenticated())
	assert.True(t, persistedCleared)
	assert.True(t, callbackFired)
}

func TestWrap_LeavesSessionAloneOnOtherErrors(t *testing.T) {
	store := NewStore(testCreds("jwt"))

	call := func(ctx context.Context, _ string) (int, error) {
		return 0, &api.APIError{Status: 429}
	}
	wrapped := Wrap(call, UnauthorizedDeps{
		Predicate: ShouldClearAuthOnUnauthorized,
		Store:     store,
	})

	_, err := wrapped(context.Background(), "arg")

	require.Error(t, err)
	assert.True(t, store.IsAuthenticated())
}

func TestWrap_SuccessPassesThrough(t *testing.T) {
	store := NewStore(testCreds("jwt"))

	call := func(ctx context.Context, in string) (string, error) {
		return in + "!", nil
	}
	wrapped := Wrap(call, UnauthorizedDeps{
		Predicate: ShouldClearAuthOnUnauthorized,
		Store:     store,
	})

	res, err := wrapped(context.Background(), "ok")

	require.NoError(t, err)
	assert.Equal(t, "ok!", res)
	assert.True(t, store.IsAuthenticated())
}
