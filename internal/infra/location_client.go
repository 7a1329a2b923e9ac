package infra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultLocationURL = "https://am.i.mullvad.net/json"
	defaultTimeout     = 10 * time.Second
	defaultMaxRetries  = 3
	defaultRetryDelay  = 1 * time.Second
	userAgent          = "travelsurvey/1.0.0"
)

// IPLocation is the body returned by the IP geolocation endpoint.
type IPLocation struct {
	IP        string  `json:"ip"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	City      string  `json:"city"`
}

// LookupError is a failed lookup attempt. Retriable reports whether another
// attempt could succeed.
type LookupError struct {
	StatusCode int
	Retriable  bool
	Err        error
}

func (e *LookupError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("location lookup (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("location lookup: %v", e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

type LocationClient struct {
	httpClient *http.Client
	url        string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
	logger     *zap.Logger
	group      singleflight.Group
}

type LocationOption func(*LocationClient)

func WithURL(url string) LocationOption {
	return func(c *LocationClient) {
		c.url = url
	}
}

// WithTimeout bounds one whole lookup, retries included.
func WithTimeout(timeout time.Duration) LocationOption {
	return func(c *LocationClient) {
		c.timeout = timeout
	}
}

func WithMaxRetries(maxRetries int) LocationOption {
	return func(c *LocationClient) {
		c.maxRetries = maxRetries
	}
}

// WithRetryDelay sets the delay before the first retry. It doubles on every
// following attempt.
func WithRetryDelay(delay time.Duration) LocationOption {
	return func(c *LocationClient) {
		c.retryDelay = delay
	}
}

func WithLogger(logger *zap.Logger) LocationOption {
	return func(c *LocationClient) {
		c.logger = logger
	}
}

func NewLocationClient(opts ...LocationOption) *LocationClient {
	c := &LocationClient{
		httpClient: &http.Client{},
		url:        defaultLocationURL,
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup resolves the caller's position from its public IP. Concurrent
// lookups share one upstream request; a caller whose ctx ends stops waiting
// without cancelling the shared request for the others.
func (c *LocationClient) Lookup(ctx context.Context) (*IPLocation, error) {
	ch := c.group.DoChan(c.url, func() (interface{}, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		return c.fetch(lookupCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		loc := *res.Val.(*IPLocation)
		return &loc, nil
	}
}

func (c *LocationClient) fetch(ctx context.Context) (*IPLocation, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * time.Duration(1<<uint(attempt-1))
			c.logger.Warn("retrying location lookup",
				zap.Int("attempt", attempt+1),
				zap.Duration("delay", delay),
				zap.Error(lastErr),
			)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		location, err := c.fetchOnce(ctx)
		if err == nil {
			c.logger.Debug("location lookup succeeded",
				zap.String("city", location.City),
				zap.String("country", location.Country),
			)
			return location, nil
		}
		lastErr = err

		var lookupErr *LookupError
		if errors.As(err, &lookupErr) && !lookupErr.Retriable {
			break
		}
	}

	c.logger.Error("location lookup failed", zap.Int("attempts", c.maxRetries+1), zap.Error(lastErr))
	return nil, fmt.Errorf("failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

func (c *LocationClient) fetchOnce(ctx context.Context) (*IPLocation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &LookupError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch location: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &LookupError{
			StatusCode: resp.StatusCode,
			Retriable:  isRetriableStatusCode(resp.StatusCode),
			Err:        fmt.Errorf("unexpected status code %d", resp.StatusCode),
		}
	}

	if contentType := resp.Header.Get("Content-Type"); !strings.Contains(contentType, "application/json") {
		return nil, &LookupError{Err: fmt.Errorf("unexpected content-type: %s", contentType)}
	}

	var location IPLocation
	if err := json.NewDecoder(resp.Body).Decode(&location); err != nil {
		return nil, &LookupError{Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return &location, nil
}

func isRetriableStatusCode(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusRequestTimeout ||
		statusCode >= 500
}
