package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/luxsports/datahub/internal/cache"
)

// DefaultMinInterval is the pause between consecutive provider requests.
const DefaultMinInterval = 600 * time.Millisecond

// ClientOptions configures a provider HTTP client.
type ClientOptions struct {
	Name    string // used for logs, breaker name and cache keys
	BaseURL string
	Timeout time.Duration

	// MinInterval is the minimum spacing between requests. Zero disables
	// rate limiting.
	MinInterval time.Duration

	// BreakerFailures trips the circuit after this many consecutive
	// failures. Zero disables the breaker.
	BreakerFailures int
	BreakerCooldown time.Duration

	Cache    cache.Store // optional
	CacheTTL time.Duration

	Headers    map[string]string
	Logger     *slog.Logger
	HTTPClient *http.Client
}

// StatusError is returned when a provider answers with a non-200 status.
type StatusError struct {
	Provider string
	Path     string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned %d: %s", e.Provider, e.Path, e.Code, e.Body)
}

// IsNotFound reports whether err is a provider 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// Client is the shared rate-limited HTTP client used by every adapter.
type Client struct {
	name       string
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	cache      cache.Store
	cacheTTL   time.Duration
	logger     *slog.Logger
}

// NewClient creates a provider client from options.
func NewClient(opts ClientOptions) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	if opts.MinInterval > 0 {
		limit = rate.Every(opts.MinInterval)
	}

	c := &Client{
		name:       opts.Name,
		httpClient: httpClient,
		baseURL:    opts.BaseURL,
		headers:    opts.Headers,
		limiter:    rate.NewLimiter(limit, 1),
		cache:      opts.Cache,
		cacheTTL:   opts.CacheTTL,
		logger:     logger,
	}

	if opts.BreakerFailures > 0 {
		failures := uint32(opts.BreakerFailures)
		c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        opts.Name,
			MaxRequests: 1,
			Timeout:     opts.BreakerCooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("circuit breaker state changed",
					"provider", name, "from", from.String(), "to", to.String())
			},
		})
	}

	return c
}

// Name returns the provider name the client was configured with.
func (c *Client) Name() string {
	return c.name
}

// Get performs a rate-limited GET and returns the raw body. Cached bodies
// are returned without waiting on the limiter.
func (c *Client) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	key := c.name + ":" + u

	if c.cache != nil {
		if body, ok := c.cache.Load(ctx, key); ok {
			c.logger.Debug("provider cache hit", "provider", c.name, "path", path)
			return body, nil
		}
	}

	var body []byte
	var err error
	if c.breaker != nil {
		var out interface{}
		out, err = c.breaker.Execute(func() (interface{}, error) {
			return c.fetch(ctx, path, u)
		})
		if err == nil {
			body = out.([]byte)
		}
	} else {
		body, err = c.fetch(ctx, path, u)
	}
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Save(ctx, key, body, c.cacheTTL)
	}
	return body, nil
}

// GetJSON performs Get and decodes the body into dst.
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values, dst interface{}) error {
	body, err := c.Get(ctx, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, path, u string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	c.logger.Debug("provider request",
		"provider", c.name, "path", path,
		"status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{
			Provider: c.name,
			Path:     path,
			Code:     resp.StatusCode,
			Body:     truncate(body, 200),
		}
	}
	return body, nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
