// Package yahoojp scrapes an intraday price from the Yahoo Japan quote
// page. Best effort only: the page has no stable API and the markup
// changes, so several patterns are tried from most to least specific.
package yahoojp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"nikkei_backend/internal/shared/upstream"
)

const (
	// DefaultBaseURL is the quote page root.
	DefaultBaseURL = "https://finance.yahoo.co.jp"

	// RequestTimeout bounds a single page download.
	RequestTimeout = 15 * time.Second

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"
)

// ErrNoPrice is returned when no known pattern matched the page.
var ErrNoPrice = errors.New("yahoojp: no price found in page")

var (
	// 埋め込みJSON内の regularMarketPrice
	reMarketPrice = regexp.MustCompile(`regularMarketPrice"\s*:\s*\{[^}]*"raw"\s*:\s*([0-9.]+)`)
	// JSON-LD等の "price": "1,234.5"
	reJSONPrice = regexp.MustCompile(`"price"\s*:\s*"([0-9,.]+)"`)
	// 最後の手段: 価格らしい桁区切り数値のテキストノード
	rePriceText = regexp.MustCompile(`^[0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]+)?$`)
)

// Client downloads and parses the quote page for Japanese tickers.
type Client struct {
	baseURL    string
	httpClient *http.Client
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

// NewClient returns a Yahoo Japan quote client with sane defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: RequestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPrice scrapes the current price for a 4-digit code. The ticker
// is suffixed with .T (Tokyo Stock Exchange) as the page expects.
func (c *Client) FetchPrice(ctx context.Context, code string) (float64, error) {
	url := fmt.Sprintf("%s/quote/%s.T", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("yahoojp request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "ja,en-US;q=0.8,en;q=0.7")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return 0, fmt.Errorf("yahoojp %s: %w", code, upstream.ErrTimeout)
		}
		return 0, fmt.Errorf("yahoojp %s: %w", code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, &upstream.Error{Status: resp.StatusCode, Endpoint: "yahoojp"}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("yahoojp %s: parse page: %w", code, err)
	}
	return parsePrice(doc)
}

// parsePrice tries the known page shapes from most to least specific.
func parsePrice(doc *goquery.Document) (float64, error) {
	html, err := doc.Html()
	if err != nil {
		return 0, fmt.Errorf("yahoojp: render page: %w", err)
	}

	// 1) 埋め込みJSONの regularMarketPrice
	if m := reMarketPrice.FindStringSubmatch(html); m != nil {
		return parseNumber(m[1])
	}

	// 2) script要素内の "price" フィールド
	var fromScript string
	doc.Find(`script`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if m := reJSONPrice.FindStringSubmatch(s.Text()); m != nil {
			fromScript = m[1]
			return false
		}
		return true
	})
	if fromScript != "" {
		return parseNumber(fromScript)
	}

	// 3) og:price:amount メタタグ
	if v, ok := doc.Find(`meta[property="og:price:amount"]`).Attr("content"); ok {
		return parseNumber(v)
	}

	// 4) 価格らしい最初のテキストノード
	var fromText string
	doc.Find("body *").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.Children().Length() > 0 {
			return true
		}
		text := strings.TrimSpace(s.Text())
		if rePriceText.MatchString(text) {
			fromText = text
			return false
		}
		return true
	})
	if fromText != "" {
		return parseNumber(fromText)
	}

	return 0, ErrNoPrice
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("yahoojp: malformed price %q: %w", s, err)
	}
	return v, nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
