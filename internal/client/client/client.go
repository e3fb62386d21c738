package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/sachink160/multitool-client/internal/client/tokens"
	"github.com/sachink160/multitool-client/internal/logging"
)

// AuthFailureFunc is invoked after an irrecoverable authentication failure,
// once the token store has been cleared.
type AuthFailureFunc func(ctx context.Context)

// HTTPClient talks to the backend REST API. It is safe for concurrent use.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	store   tokens.Store
	logger  logging.Logger

	mu            sync.RWMutex
	onAuthFailure AuthFailureFunc

	refreshGroup singleflight.Group
	newRequestID func() string
}

type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTimeout sets an overall per-request timeout. Zero means none. The
// underlying *http.Client is copied, so a client passed to WithHTTPClient
// is left unchanged.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

func WithAuthFailureHandler(fn AuthFailureFunc) Option {
	return func(c *HTTPClient) {
		c.onAuthFailure = fn
	}
}

// New returns a client for the backend at baseURL that reads and writes
// credentials through store.
func New(baseURL string, store tokens.Store, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}
	if store == nil {
		return nil, fmt.Errorf("token store is required")
	}

	c := &HTTPClient{
		baseURL:      u,
		http:         &http.Client{},
		store:        store,
		logger:       logging.NewNop(),
		newRequestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetAuthFailureHandler replaces the handler registered with
// WithAuthFailureHandler. The session uses it to register itself after
// construction.
func (c *HTTPClient) SetAuthFailureHandler(fn AuthFailureFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onAuthFailure = fn
}

// Tokens exposes the credential store backing the client.
func (c *HTTPClient) Tokens() tokens.Store {
	return c.store
}

// BaseURL returns the backend root the client was created with.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL.String()
}

func (c *HTTPClient) authFailed(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		c.logger.Error(ctx, "failed to clear tokens", "error", err)
	}

	c.mu.RLock()
	fn := c.onAuthFailure
	c.mu.RUnlock()
	if fn != nil {
		fn(ctx)
	}
}
