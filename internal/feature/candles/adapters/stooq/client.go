// Package stooq fetches daily OHLCV history from the stooq.com CSV endpoint.
package stooq

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"nikkei_backend/internal/feature/candles/adapters/dailycsv"
	"nikkei_backend/internal/feature/candles/domain/entity"
	"nikkei_backend/internal/shared/upstream"
)

const (
	// DefaultBaseURL is the public CSV download endpoint.
	DefaultBaseURL = "https://stooq.com/q/d/l"

	// RequestTimeout bounds a single download.
	RequestTimeout = 25 * time.Second

	// DefaultRateLimit is requests per second against stooq.
	DefaultRateLimit = 5
)

// ErrDailyLimit is returned when stooq answers with its plain-text
// daily quota message instead of CSV.
var ErrDailyLimit = errors.New("stooq: daily hits limit exceeded")

// Client downloads and parses daily candles for Japanese tickers.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit sets the request budget in requests per second.
func WithRateLimit(rps int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// NewClient returns a stooq client with sane defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: RequestTimeout},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchDaily downloads the full daily history for a 4-digit code.
// The ticker is suffixed with .jp as stooq expects.
func (c *Client) FetchDaily(ctx context.Context, code string) ([]entity.Candle, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("stooq rate limiter: %w", err)
	}

	url := fmt.Sprintf("%s/?s=%s.jp&i=d", c.baseURL, strings.ToLower(code))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("stooq request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, fmt.Errorf("stooq %s: %w", code, upstream.ErrTimeout)
		}
		return nil, fmt.Errorf("stooq %s: %w", code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &upstream.Error{Status: resp.StatusCode, Endpoint: "stooq"}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("stooq %s: read body: %w", code, err)
	}

	// クォータ超過時はCSVではなくプレーンテキストが返る。
	if strings.Contains(string(body), "Exceeded the daily hits limit") {
		return nil, ErrDailyLimit
	}

	candles, err := dailycsv.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("stooq %s: %w", code, err)
	}
	return candles, nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
