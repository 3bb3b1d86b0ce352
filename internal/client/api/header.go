package api

import (
	"net/http"
	"strings"
)

// AttachAuthHeader sets "Authorization: Bearer <token>" on h when token is
// non-empty after trimming. Otherwise the headers are left untouched.
func AttachAuthHeader(h http.Header, token string) {
	if strings.TrimSpace(token) == "" {
		return
	}
	h.Set("Authorization", "Bearer "+token)
}
