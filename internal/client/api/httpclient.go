package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/onemployment/client/internal/client/forms"
	"github.com/onemployment/client/internal/logging"
)

// TokenSource supplies the current session token for outgoing requests.
// An empty string means no session; the Authorization header is then omitted.
type TokenSource func() string

// HTTPClient talks JSON over HTTP to the Onemployment backend. Every request
// carries a bearer token when one is available and a fresh X-Request-ID.
type HTTPClient struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource TokenSource
	log         logging.Logger
}

type HTTPClientOption func(*HTTPClient)

// WithTokenSource wires the source of the session token, typically the auth
// store's Token projection.
func WithTokenSource(ts TokenSource) HTTPClientOption {
	return func(c *HTTPClient) { c.tokenSource = ts }
}

func WithHTTPClient(hc *http.Client) HTTPClientOption {
	return func(c *HTTPClient) { c.httpClient = hc }
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger, opts ...HTTPClientOption) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// send executes a described request and decodes a 2xx JSON body into out
// (skipped when out is nil). Non-2xx responses come back as *APIError.
func (c *HTTPClient) send(ctx context.Context, desc RequestDescriptor, query url.Values, out any) error {
	target := c.baseURL + desc.Path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if desc.Body != nil {
		body = bytes.NewReader(desc.Body)
	}

	req, err := http.NewRequestWithContext(ctx, desc.Method, target, body)
	if err != nil {
		return err
	}
	for name, values := range desc.Header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if c.tokenSource != nil {
		AttachAuthHeader(req.Header, c.tokenSource())
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.classifyError(ctx, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// classifyError turns an error response into an *APIError. Bodies that are
// not valid JSON still produce an APIError carrying the status alone.
func (c *HTTPClient) classifyError(ctx context.Context, status int, raw []byte) error {
	var payload errorPayload
	_ = json.Unmarshal(raw, &payload)

	apiErr := &APIError{
		Status:     status,
		Code:       payload.Error,
		Message:    payload.Message,
		Details:    payload.Details,
		RetryAfter: payload.RetryAfter,
	}
	c.log.Warn(ctx, "backend error response", "status", status, "code", apiErr.Code)
	return apiErr
}

func (c *HTTPClient) Login(ctx context.Context, in forms.LoginInput) (Credentials, error) {
	desc, err := BuildLoginRequest(in)
	if err != nil {
		return Credentials{}, err
	}
	var res LoginResponse
	if err := c.send(ctx, desc, nil, &res); err != nil {
		return Credentials{}, err
	}
	return ParseLoginResponse(res), nil
}

func (c *HTTPClient) Register(ctx context.Context, in forms.RegisterInput) (Credentials, error) {
	desc, err := BuildRegisterRequest(in)
	if err != nil {
		return Credentials{}, err
	}
	var res RegisterResponse
	if err := c.send(ctx, desc, nil, &res); err != nil {
		return Credentials{}, err
	}
	return ParseRegisterResponse(res), nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	desc := RequestDescriptor{Method: http.MethodPost, Path: LogoutPath}
	return c.send(ctx, desc, nil, nil)
}

func (c *HTTPClient) Me(ctx context.Context) (*User, error) {
	desc := RequestDescriptor{Method: http.MethodGet, Path: MePath}
	var res struct {
		User User `json:"user"`
	}
	if err := c.send(ctx, desc, nil, &res); err != nil {
		return nil, err
	}
	return &res.User, nil
}

func (c *HTTPClient) ValidateEmail(ctx context.Context, email string) (*AvailabilityResult, error) {
	desc := RequestDescriptor{Method: http.MethodGet, Path: ValidateEmailPath}
	var res AvailabilityResult
	if err := c.send(ctx, desc, url.Values{"email": []string{email}}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) ValidateUsername(ctx context.Context, username string) (*AvailabilityResult, error) {
	desc := RequestDescriptor{Method: http.MethodGet, Path: ValidateUsernamePath}
	var res AvailabilityResult
	if err := c.send(ctx, desc, url.Values{"username": []string{username}}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) SuggestUsernames(ctx context.Context, username string) ([]string, error) {
	desc := RequestDescriptor{Method: http.MethodGet, Path: SuggestUsernamesPath}
	var res struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := c.send(ctx, desc, url.Values{"username": []string{username}}, &res); err != nil {
		return nil, err
	}
	return res.Suggestions, nil
}
