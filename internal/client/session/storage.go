// Package session persists the authenticated session between CLI runs.
// A single JSON blob holding the {token, user} pair is written under one
// fixed key in an abstract key-value Storage; persistence is best-effort
// and must never break an auth flow.
package session

import "context"

// Storage is the minimal key-value surface the session layer needs.
// Get returns (nil, nil) when the key is absent.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
