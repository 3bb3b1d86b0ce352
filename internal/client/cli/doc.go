// Package cli implements the interactive Onemployment client: a REPL with
// sign-in, sign-up, availability checking, and session commands, bound to
// the auth controllers and the persisted session store.
package cli
