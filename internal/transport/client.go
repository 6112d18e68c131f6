// Package transport provides the HTTP client used to pull remote sources.
// Every request is a single attempt bounded by the client timeout; pacing
// between requests is optional.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/agentstation/swatchmap/pkg/constants"
	"github.com/agentstation/swatchmap/pkg/errors"
)

// Client performs identified, timeout-bounded GET requests.
type Client struct {
	http      *http.Client
	userAgent string
	limiter   *rate.Limiter
	maxBytes  int64
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithRate paces requests to at most perSecond requests per second.
// Zero or negative disables pacing.
func WithRate(perSecond float64) Option {
	return func(c *Client) {
		if perSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// WithMaxResponseBytes caps the body size accepted from a source. Larger
// bodies fail the request rather than being cut short.
func WithMaxResponseBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

// WithHTTPClient replaces the underlying http.Client (tests use this to
// point at httptest servers). The client's Timeout is kept as given.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New creates a transport client.
func New(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: constants.DefaultFetchTimeout},
		userAgent: constants.DefaultUserAgent,
		maxBytes:  constants.MaxResponseBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.http.Timeout
}

// Get fetches url and returns the body. Non-2xx answers become *errors.APIError
// and bodies over the size limit fail with errors.ErrResponseTooLarge.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, errors.WrapResource("fetch", "source", url, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() == nil && isTimeout(err) {
			return nil, errors.NewTimeoutError("fetch "+url, c.http.Timeout.String(), err.Error())
		}
		return nil, errors.WrapResource("fetch", "source", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewAPIError(url, resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, errors.WrapIO("read", "response body", err)
	}
	if int64(len(body)) > c.maxBytes {
		return nil, errors.WrapResource("fetch", "source", url,
			fmt.Errorf("%w: more than %d bytes", errors.ErrResponseTooLarge, c.maxBytes))
	}
	return body, nil
}

// String describes the client for debug logs.
func (c *Client) String() string {
	return fmt.Sprintf("transport(timeout=%s, user_agent=%q, paced=%t)", c.http.Timeout, c.userAgent, c.limiter != nil)
}

type timeoutError interface {
	Timeout() bool
}

func isTimeout(err error) bool {
	te, ok := err.(timeoutError)
	return ok && te.Timeout()
}
