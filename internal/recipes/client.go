package recipes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// Service defines the remote operations the UI depends on.
// This interface is implemented by *Client and can be used for testing.
type Service interface {
	List(ctx context.Context) ([]Recipe, error)
	Create(ctx context.Context, draft Draft) (Recipe, error)
	Update(ctx context.Context, id int64, draft Draft) (Recipe, error)
	Delete(ctx context.Context, id int64) error
}

// Ensure Client implements Service at compile time.
var _ Service = (*Client)(nil)

// RemoteError reports a response outside the 2xx range. The body is not
// interpreted; the status code is all callers get to act on.
type RemoteError struct {
	Op         string
	StatusCode int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Op, e.StatusCode)
}

// Client talks to the recipe service's HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	log       zerolog.Logger
}

const (
	defaultServerURL = "http://127.0.0.1:8080"
	defaultUserAgent = "ladle/0.1"
)

// NewClient builds a Client for the given server URL. No timeout is set on
// the underlying http.Client; callers bound requests through the context.
func NewClient(serverURL string, log zerolog.Logger) (*Client, error) {
	base, err := parseBaseURL(serverURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		log:       log,
	}, nil
}

// List retrieves every recipe in the collection.
func (c *Client) List(ctx context.Context) ([]Recipe, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Recipe
	if err := c.do(ctx, http.MethodGet, "/recipes", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Create stores a new recipe and returns it with its assigned ID.
func (c *Client) Create(ctx context.Context, draft Draft) (Recipe, error) {
	if c == nil {
		return Recipe{}, fmt.Errorf("client is nil")
	}
	var payload Recipe
	if err := c.do(ctx, http.MethodPost, "/recipes", draft, &payload); err != nil {
		return Recipe{}, err
	}
	return payload, nil
}

// Update replaces the recipe with the given ID and returns the stored result.
func (c *Client) Update(ctx context.Context, id int64, draft Draft) (Recipe, error) {
	if c == nil {
		return Recipe{}, fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return Recipe{}, fmt.Errorf("recipe id required")
	}
	var payload Recipe
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/recipes/%d", id), draft, &payload); err != nil {
		return Recipe{}, err
	}
	return payload, nil
}

// Delete removes the recipe with the given ID.
func (c *Client) Delete(ctx context.Context, id int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return fmt.Errorf("recipe id required")
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/recipes/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg("remote error")
		return &RemoteError{Op: method + " " + path, StatusCode: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(serverURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(serverURL)
	if trimmed == "" {
		trimmed = defaultServerURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server url %q: %w", serverURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
