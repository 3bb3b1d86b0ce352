package controllers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onemployment/client/internal/client/api"
)

func TestCheckEmailAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("available", func(t *testing.T) {
		res := CheckEmailAvailability(ctx, func(ctx context.Context, email string) (*api.AvailabilityResult, error) {
			assert.Equal(t, "john@example.com", email)
			return &api.AvailabilityResult{Available: true, Message: "Email is available"}, nil
		}, "john@example.com")

		assert.True(t, res.Available)
		assert.Equal(t, "Email is available", res.Message)
	})

	t.Run("rate limited uses retry hint", func(t *testing.T) {
		res := CheckEmailAvailability(ctx, func(ctx context.Context, email string) (*api.AvailabilityResult, error) {
			return nil, &api.APIError{Status: 429, RetryAfter: 30}
		}, "john@example.com")

		assert.False(t, res.Available)
		assert.Equal(t, "Too many requests. Please try again in 30s", res.Message)
	})

	t.Run("rate limited without hint defaults to zero", func(t *testing.T) {
		res := CheckEmailAvailability(ctx, func(ctx context.Context, email string) (*api.AvailabilityResult, error) {
			return nil, &api.APIError{Status: 429}
		}, "john@example.com")

		assert.Equal(t, "Too many requests. Please try again in 0s", res.Message)
	})

	t.Run("other failures report generic message", func(t *testing.T) {
		for _, err := range []error{
			&api.APIError{Status: 500, Message: "boom"},
			errors.New("connection reset"),
		} {
			res := CheckEmailAvailability(ctx, func(ctx context.Context, email string) (*api.AvailabilityResult, error) {
				return nil, err
			}, "john@example.com")

			assert.False(t, res.Available)
			assert.Equal(t, "Validation failed", res.Message)
		}
	})
}

func TestCheckUsernameAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("taken with suggestions", func(t *testing.T) {
		res := CheckUsernameAvailability(ctx, func(ctx context.Context, username string) (*api.AvailabilityResult, error) {
			return &api.AvailabilityResult{
				Available:   false,
				Message:     "Username is taken",
				Suggestions: []string{"john-doe1", "john-doe2"},
			}, nil
		}, "john-doe")

		assert.False(t, res.Available)
		assert.Equal(t, "Username is taken", res.Message)
		assert.Equal(t, []string{"john-doe1", "john-doe2"}, res.Suggestions)
	})

	t.Run("rate limited", func(t *testing.T) {
		res := CheckUsernameAvailability(ctx, func(ctx context.Context, username string) (*api.AvailabilityResult, error) {
			return nil, &api.APIError{Status: 429, RetryAfter: 5}
		}, "john-doe")

		assert.Equal(t, "Too many requests. Please try again in 5s", res.Message)
		assert.Empty(t, res.Suggestions)
	})
}
