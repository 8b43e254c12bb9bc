// Package http fetches Lodestone pages over HTTP and implements
// xivchar.CharacterService on top of an xivchar.Fetcher and xivchar.Extractor.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/malippew/xivchar"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies requests sent to the Lodestone.
const DefaultUserAgent = "xivchar/1.0 (+https://github.com/malippew/xivchar)"

// DefaultMaxBodySize caps how much of a response body is read.
const DefaultMaxBodySize = 8 << 20

// Ensure Fetcher implements xivchar.Fetcher at compile time.
var _ xivchar.Fetcher = (*Fetcher)(nil)

// StatusError is returned when the server answers with a non-200 status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// Fetcher retrieves HTML content from URLs using HTTP requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	maxBody   int64
	limiter   *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the largest response body Fetch accepts, in bytes.
// Larger responses fail. Defaults to DefaultMaxBodySize.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBody = n
	}
}

// WithRateLimit limits requests to rps per second, with no bursting.
// A value <= 0 leaves requests unlimited, which is the default.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		maxBody:   DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Waits for the rate limiter first when one is configured.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return "", err
	}
	if int64(len(body)) > f.maxBody {
		return "", fmt.Errorf("response from %s exceeds %d bytes", url, f.maxBody)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
