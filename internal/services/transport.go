package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/streamix/streamix-cli/internal/shared"
	"golang.org/x/time/rate"
)

// TokenSource supplies the current bearer token, or "" when no session is
// active. Satisfied by [shared.SessionStore].
type TokenSource interface {
	Token() string
}

// APIError is a non-2xx service response with its flattened message list.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("service error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("service error: status %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

// Client is the shared transport for all backend service clients. Every
// request carries the session bearer token when one exists; any 401 response
// triggers the OnUnauthorized hook before the error is returned.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	limiter        *rate.Limiter
	onUnauthorized func()
}

// ClientOpts contains optional transport configuration.
type ClientOpts struct {
	HTTPClient     *http.Client
	Tokens         TokenSource
	RequestRate    float64 // requests per second, 0 disables limiting
	OnUnauthorized func()  // invoked once per 401 response; must be idempotent
}

// NewClient creates a transport rooted at baseURL.
func NewClient(baseURL string, opts ClientOpts) *Client {
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	var limiter *rate.Limiter
	if opts.RequestRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestRate), 1)
	}

	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     opts.HTTPClient,
		tokens:         opts.Tokens,
		limiter:        limiter,
		onUnauthorized: opts.OnUnauthorized,
	}
}

// Get performs a GET request and decodes the JSON response into result.
func (c *Client) Get(ctx context.Context, path string, result any) error {
	return c.Do(ctx, http.MethodGet, path, nil, result)
}

// Post performs a POST request with a JSON body and decodes the response into result.
func (c *Client) Post(ctx context.Context, path string, body, result any) error {
	return c.Do(ctx, http.MethodPost, path, body, result)
}

// Do performs an HTTP request against the service. A nil result discards the
// response body.
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", shared.GenerateID())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("%w: status 401", shared.ErrSessionExpired)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// decodeAPIError flattens the error payload shapes the services produce into
// an [APIError] message list.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(data) == 0 {
		return apiErr
	}

	var payload struct {
		Message  string   `json:"message"`
		Messages []string `json:"messages"`
		Error    string   `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			apiErr.Messages = append(apiErr.Messages, payload.Message)
		}
		apiErr.Messages = append(apiErr.Messages, payload.Messages...)
		if payload.Error != "" {
			apiErr.Messages = append(apiErr.Messages, payload.Error)
		}
	}

	// Some endpoints return a bare string or list of strings.
	if len(apiErr.Messages) == 0 {
		var msgs []string
		if err := json.Unmarshal(data, &msgs); err == nil {
			apiErr.Messages = msgs
		} else if text := strings.TrimSpace(string(data)); text != "" && !strings.HasPrefix(text, "{") {
			apiErr.Messages = []string{strings.Trim(text, `"`)}
		}
	}

	return apiErr
}
