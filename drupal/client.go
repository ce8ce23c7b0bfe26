package drupal

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-hclog"
)

const mediaType = "application/vnd.api+json"

// Client talks to a Drupal JSON:API endpoint. It is safe for concurrent use;
// configuration and headers are fixed at construction time.
type Client struct {
	config        Config
	endpoint      string
	authorization string
	httpClient    *http.Client
	logger        hclog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client for cfg.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("drupal config was nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid drupal config: %w", err)
	}
	c := &Client{
		config:        *cfg,
		endpoint:      cfg.Endpoint(),
		authorization: cfg.authorization(),
		httpClient:    http.DefaultClient,
		logger:        hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the site URL without trailing slash.
func (c *Client) BaseURL() string { return strings.TrimRight(c.config.BaseURL, "/") }

// get issues a GET against path (relative to /jsonapi) and decodes the
// JSON:API envelope.
func (c *Client) get(ctx context.Context, path string, params url.Values) (*document, error) {
	endpoint := c.endpoint + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", mediaType)
	req.Header.Set("Content-Type", mediaType)
	if c.authorization != "" {
		req.Header.Set("Authorization", c.authorization)
	}

	c.logger.Debug("jsonapi request", "method", req.Method, "path", path, "query", req.URL.RawQuery)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	c.logger.Trace("jsonapi response", "path", path, "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(resp.StatusCode, body)
	}
	doc := &document{}
	if err := json.Unmarshal(body, doc); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return doc, nil
}

func newStatusError(code int, body []byte) *StatusError {
	ret := &StatusError{StatusCode: code}
	doc := &document{}
	if err := json.Unmarshal(body, doc); err == nil && len(doc.Errors) > 0 {
		ret.Detail = doc.Errors[0].Detail
		if ret.Detail == "" {
			ret.Detail = doc.Errors[0].Title
		}
	}
	return ret
}

func basicAuth(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}
