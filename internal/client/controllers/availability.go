package controllers

import (
	"context"
	"fmt"

	"github.com/onemployment/client/internal/client/api"
)

// AvailabilityResult is what the sign-up form renders next to the email and
// username inputs. Errors from the fetcher are always folded into a result;
// nothing is re-thrown to the caller.
type AvailabilityResult struct {
	Available   bool
	Message     string
	Suggestions []string
}

func availabilityFailure(err error) AvailabilityResult {
	if apiErr, ok := api.AsAPIError(err); ok && apiErr.Status == 429 {
		return AvailabilityResult{
			Available: false,
			Message:   fmt.Sprintf("Too many requests. Please try again in %ds", apiErr.RetryAfter),
		}
	}
	return AvailabilityResult{Available: false, Message: "Validation failed"}
}

// CheckEmailAvailability asks the injected fetcher whether email is free to
// register. A 429 produces a templated retry message using the backend's
// retryAfter hint (0 when absent); any other failure reports a generic one.
func CheckEmailAvailability(ctx context.Context, fetch func(ctx context.Context, email string) (*api.AvailabilityResult, error), email string) AvailabilityResult {
	res, err := fetch(ctx, email)
	if err != nil {
		return availabilityFailure(err)
	}
	return AvailabilityResult{Available: res.Available, Message: res.Message}
}

// CheckUsernameAvailability is the username counterpart; the result also
// carries the backend's alternative suggestions when the name is taken.
func CheckUsernameAvailability(ctx context.Context, fetch func(ctx context.Context, username string) (*api.AvailabilityResult, error), username string) AvailabilityResult {
	res, err := fetch(ctx, username)
	if err != nil {
		return availabilityFailure(err)
	}
	return AvailabilityResult{Available: res.Available, Message: res.Message, Suggestions: res.Suggestions}
}
