package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/onemployment/client/internal/client/controllers"
	"github.com/onemployment/client/internal/client/forms"
	"github.com/onemployment/client/internal/client/session"
	"github.com/onemployment/client/internal/client/utils"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and runs the sign-in flow. Field and form
// errors are printed beneath the prompt; a successful submit lands the user
// on the app view and persists the session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer utils.WipeBytes(password)

	in := forms.LoginInput{Email: email, Password: string(password)}

	submit := controllers.NewLoginSubmit(controllers.LoginDeps{
		Login:          a.loginTransport(),
		Navigate:       a.navigate,
		SetFieldErrors: a.printFieldErrors,
		SetFormError:   a.printFormError,
	})
	submit(ctx, in)

	if a.isLoggedIn() {
		printlnFn(fmt.Sprintf("Signed in as %s", a.getStatus()))
	}
	return nil
}

// Register walks through the sign-up prompts. The username prompt re-checks
// availability against the backend and offers its suggestions when the name
// is taken; client-side validation runs before anything is submitted.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	username, err := a.promptAvailableUsername(ctx)
	if err != nil {
		return err
	}

	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer utils.WipeBytes(password)

	in := forms.RegisterInput{
		Email:     email,
		Password:  string(password),
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
	}

	if errs := forms.ValidateRegisterInput(forms.SanitizeRegisterInput(in)); len(errs) > 0 {
		a.printFieldErrors(errs)
		return nil
	}

	submit := controllers.NewRegisterSubmit(controllers.RegisterDeps{
		Register:       a.registerTransport(),
		Navigate:       a.navigate,
		SetFieldErrors: a.printFieldErrors,
		SetFormError:   a.printFormError,
	})
	submit(ctx, in)

	if a.isLoggedIn() {
		printlnFn("Account created. Welcome!")
	}
	return nil
}

// promptAvailableUsername reads a username and checks it against the
// backend, giving the user a few attempts with the server's suggestions
// before accepting the last entry as-is.
func (a *App) promptAvailableUsername(ctx context.Context) (string, error) {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return "", err
	}

	for attempt := 0; attempt < 3; attempt++ {
		res := controllers.CheckUsernameAvailability(ctx, a.client.ValidateUsername, username)
		if res.Available {
			return username, nil
		}
		printlnFn(res.Message)
		if len(res.Suggestions) > 0 {
			printlnFn("Suggestions: " + strings.Join(res.Suggestions, ", "))
		}
		next, err := getSimpleText(a.reader, "Enter username (or press Enter to keep it)", os.Stdout)
		if err != nil {
			return "", err
		}
		if next == "" {
			break
		}
		username = next
	}
	return username, nil
}

// Logout calls the backend, ignores any failure, clears the local session,
// and returns to the login view.
func (a *App) Logout(ctx context.Context) error {
	handler := controllers.NewLogoutHandler(controllers.LogoutDeps{
		Logout:   a.client.Logout,
		Navigate: a.navigate,
	})
	handler(ctx)

	a.store.ClearCredentials()
	session.ClearAuth(ctx, a.storage)
	printlnFn("Signed out")
	return nil
}
