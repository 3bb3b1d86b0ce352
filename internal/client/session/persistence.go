package session

import (
	"context"
	"encoding/json"

	"github.com/onemployment/client/internal/client/api"
)

// AuthStorageKey is the single fixed key the session blob lives under.
const AuthStorageKey = "onemployment:auth"

// PersistAuth writes the credentials pair as one JSON blob. Serialization
// and storage failures are swallowed: persistence is best-effort and prior
// stored state is left unchanged on failure.
func PersistAuth(ctx context.Context, storage Storage, creds api.Credentials) {
	raw, err := json.Marshal(creds)
	if err != nil {
		return
	}
	_ = storage.Set(ctx, AuthStorageKey, raw)
}

// HydrateAuth reads the stored session. It returns nil when the key is
// absent, unreadable, not a JSON object, or missing either the "token" or
// "user" key. The token must decode as a string; the user payload is kept
// verbatim with no shape validation.
func HydrateAuth(ctx context.Context, storage Storage) *api.Credentials {
	raw, err := storage.Get(ctx, AuthStorageKey)
	if err != nil || len(raw) == 0 {
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	tokenRaw, hasToken := obj["token"]
	userRaw, hasUser := obj["user"]
	if !hasToken || !hasUser {
		return nil
	}

	var token string
	if err := json.Unmarshal(tokenRaw, &token); err != nil {
		return nil
	}
	return &api.Credentials{Token: token, User: userRaw}
}

// ClearAuth removes the stored session. Failures are swallowed.
func ClearAuth(ctx context.Context, storage Storage) {
	_ = storage.Delete(ctx, AuthStorageKey)
}

// BuildPreloadedState wraps HydrateAuth for process start: a missing or
// malformed session yields the zero (unauthenticated) state.
func BuildPreloadedState(ctx context.Context, storage Storage) api.Credentials {
	creds := HydrateAuth(ctx, storage)
	if creds == nil {
		return api.Credentials{}
	}
	return *creds
}
