package cli

import (
	"context"
	"fmt"
	"strings"
)

// Whoami fetches the current profile from the backend. A 401 here clears
// the stale session through the unauthorized wrapper.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.meTransport()(ctx)
	if err != nil {
		a.printFormError("Could not load profile")
		return err
	}
	printlnFn(fmt.Sprintf("%s: %s %s <%s>", user.Username, user.FirstName, user.LastName, user.Email))
	return nil
}

// CheckEmail schedules a debounced availability probe for email.
// The result prints asynchronously once the quiet period elapses.
func (a *App) CheckEmail(ctx context.Context, email string) error {
	a.debouncedEmailCheck(email)
	return nil
}

// CheckUsername schedules a debounced availability probe for username.
func (a *App) CheckUsername(ctx context.Context, username string) error {
	a.debouncedUsernameCheck(username)
	return nil
}

// Suggest asks the backend for free usernames close to the given one.
func (a *App) Suggest(ctx context.Context, username string) error {
	suggestions, err := a.client.SuggestUsernames(ctx, username)
	if err != nil {
		a.printFormError("Could not fetch suggestions")
		return err
	}
	if len(suggestions) == 0 {
		printlnFn("No suggestions")
		return nil
	}
	printlnFn("Suggestions: " + strings.Join(suggestions, ", "))
	return nil
}
