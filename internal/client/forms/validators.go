// Package forms contains the client-side input layer for the auth flows:
// syntactic validators, input sanitizers, and per-field error mapping.
// Validation here is non-authoritative; the backend remains the source
// of truth and its structured errors take precedence once a request is sent.
package forms

import (
	"regexp"
	"strings"
)

var (
	// Simple but practical for client-side checks: something@something.tld,
	// no whitespace or '@' inside the local and domain parts.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Starts and ends with an alphanumeric; interior may include hyphens.
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,37}[a-zA-Z0-9])?$`)

	namePattern = regexp.MustCompile(`^[a-zA-Z\s\-'.]+$`)
)

// IsValidEmail reports whether s, after trimming, looks like an email address
// and does not exceed 255 characters.
func IsValidEmail(s string) bool {
	value := strings.TrimSpace(s)
	return len(value) > 0 && len(value) <= 255 && emailPattern.MatchString(value)
}

// IsValidUsername reports whether s, after trimming, is a valid username:
// 1-39 characters, alphanumerics and single hyphens, starting and ending
// with an alphanumeric. Consecutive hyphens are rejected.
func IsValidUsername(s string) bool {
	value := strings.TrimSpace(s)
	if len(value) == 0 || len(value) > 39 {
		return false
	}
	if !usernamePattern.MatchString(value) {
		return false
	}
	return !strings.Contains(value, "--")
}

// IsValidPassword reports whether s satisfies the complexity rules:
// 8-100 characters with at least one lowercase letter, one uppercase letter,
// and one digit. The value is checked as-is; passwords are never trimmed.
func IsValidPassword(s string) bool {
	if len(s) < 8 || len(s) > 100 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return lower && upper && digit
}

// IsValidName reports whether s, after trimming, is a plausible person name:
// 1-100 characters consisting of letters, spaces, hyphens, apostrophes,
// and periods.
func IsValidName(s string) bool {
	value := strings.TrimSpace(s)
	if len(value) == 0 || len(value) > 100 {
		return false
	}
	return namePattern.MatchString(value)
}
