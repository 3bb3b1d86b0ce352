package cli

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/onemployment/client/internal/client/api"
	"github.com/onemployment/client/internal/client/auth"
	"github.com/onemployment/client/internal/client/config"
	"github.com/onemployment/client/internal/client/controllers"
	"github.com/onemployment/client/internal/client/forms"
	"github.com/onemployment/client/internal/client/session"
	"github.com/onemployment/client/internal/client/utils"
	"github.com/onemployment/client/internal/logging"
)

// App wires the auth controllers, the HTTP client, the session store, and
// the persisted session database into the interactive CLI.
type App struct {
	config  *config.Config
	client  api.Client
	store   *auth.Store
	storage session.Storage
	db      *sql.DB
	log     logging.Logger
	reader  *bufio.Reader

	// route mirrors the web app's navigation target: /login or /app.
	route string

	// Debounced probes for the rate-limited validate endpoints; rapid
	// repeated check commands collapse into the trailing call.
	debouncedEmailCheck    func(string)
	debouncedUsernameCheck func(string)
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := session.InitDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}

	storage := session.NewSQLiteStorage(db)
	store := auth.NewStore(session.BuildPreloadedState(ctx, storage))

	client := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, log,
		api.WithTokenSource(store.Token))

	a := &App{
		config:  cfg,
		client:  client,
		store:   store,
		storage: storage,
		db:      db,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		route:   controllers.RouteLogin,
	}
	if store.IsAuthenticated() {
		a.route = controllers.RouteApp
	}

	a.debouncedEmailCheck = utils.Debounce(func(email string) {
		res := controllers.CheckEmailAvailability(context.Background(), a.client.ValidateEmail, email)
		a.printAvailability("email", email, res)
	}, cfg.DebounceDelay)
	a.debouncedUsernameCheck = utils.Debounce(func(username string) {
		res := controllers.CheckUsernameAvailability(context.Background(), a.client.ValidateUsername, username)
		a.printAvailability("username", username, res)
	}, cfg.DebounceDelay)

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	printlnFn("Welcome to the Onemployment CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.route == controllers.RouteApp
}

// navigate is the controllers' Navigate callback; the route drives which
// command set the REPL offers.
func (a *App) navigate(path string) {
	if a.route != path {
		a.route = path
		a.log.Info(context.Background(), "navigated", "route", path)
	}
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return "signed out"
	}
	var u api.User
	if raw := a.store.CurrentUser(); raw != nil {
		_ = json.Unmarshal(raw, &u)
	}
	if u.Username != "" {
		return u.Username
	}
	return "signed in"
}

// unauthorizedDeps builds the side effects applied when any wrapped call
// comes back 401: drop the in-memory session, best-effort clear the
// persisted one, and land back on the login view.
func (a *App) unauthorizedDeps() auth.UnauthorizedDeps {
	return auth.UnauthorizedDeps{
		Predicate: auth.ShouldClearAuthOnUnauthorized,
		Store:     a.store,
		ClearPersisted: func(ctx context.Context) {
			session.ClearAuth(ctx, a.storage)
		},
		OnUnauthorized: func() {
			a.navigate(controllers.RouteLogin)
		},
	}
}

// loginTransport performs the login call and, on success, commits the
// credentials to the store and the session database in one place.
func (a *App) loginTransport() func(ctx context.Context, in forms.LoginInput) (api.Credentials, error) {
	call := func(ctx context.Context, in forms.LoginInput) (api.Credentials, error) {
		creds, err := a.client.Login(ctx, in)
		if err != nil {
			return api.Credentials{}, err
		}
		a.store.SetCredentials(creds)
		session.PersistAuth(ctx, a.storage, creds)
		return creds, nil
	}
	return auth.Wrap(call, a.unauthorizedDeps())
}

func (a *App) registerTransport() func(ctx context.Context, in forms.RegisterInput) (api.Credentials, error) {
	call := func(ctx context.Context, in forms.RegisterInput) (api.Credentials, error) {
		creds, err := a.client.Register(ctx, in)
		if err != nil {
			return api.Credentials{}, err
		}
		a.store.SetCredentials(creds)
		session.PersistAuth(ctx, a.storage, creds)
		return creds, nil
	}
	return auth.Wrap(call, a.unauthorizedDeps())
}

func (a *App) meTransport() func(ctx context.Context) (*api.User, error) {
	call := auth.Wrap(func(ctx context.Context, _ struct{}) (*api.User, error) {
		return a.client.Me(ctx)
	}, a.unauthorizedDeps())
	return func(ctx context.Context) (*api.User, error) {
		return call(ctx, struct{}{})
	}
}

func (a *App) printFieldErrors(m forms.FieldErrorMap) {
	for field, messages := range m {
		for _, msg := range messages {
			printlnFn(fmt.Sprintf("  %s: %s", field, msg))
		}
	}
}

func (a *App) printFormError(msg string) {
	printlnFn("Error: " + msg)
}

func (a *App) printAvailability(kind, value string, res controllers.AvailabilityResult) {
	if res.Available {
		printlnFn(fmt.Sprintf("%s %q is available", kind, value))
		return
	}
	printlnFn(fmt.Sprintf("%s %q: %s", kind, value, res.Message))
	if len(res.Suggestions) > 0 {
		printlnFn("Suggestions: " + strings.Join(res.Suggestions, ", "))
	}
}
