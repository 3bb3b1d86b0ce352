// Package api implements the HTTP/JSON transport for the Onemployment
// backend: request building, response decoding, bearer-token attachment,
// and classification of error responses into typed APIError values.
package api
