// Package adapters implements the news feature's data sources.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"nikkei_backend/internal/feature/news/domain/entity"
	"nikkei_backend/internal/feature/news/usecase"
	"nikkei_backend/internal/shared/upstream"
)

const (
	// DefaultFeedURL queries Google News Japan; %s receives the
	// url-escaped search term.
	DefaultFeedURL = "https://news.google.com/rss/search?q=%s&hl=ja&gl=JP&ceid=JP:ja"

	// FetchTimeout bounds one feed download.
	FetchTimeout = 10 * time.Second
)

// rssSource fetches and maps an RSS feed per stock code.
type rssSource struct {
	feedURL string
	parser  *gofeed.Parser
}

var _ usecase.NewsSource = (*rssSource)(nil)

// NewRSSSource returns a source over the given feed URL template.
// An empty template falls back to DefaultFeedURL.
func NewRSSSource(feedURL string, client *http.Client) *rssSource {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	parser := gofeed.NewParser()
	if client != nil {
		parser.Client = client
	}
	return &rssSource{feedURL: feedURL, parser: parser}
}

// Fetch downloads the feed for "<code> 株" and maps up to the caller's
// cap of items. Feed-level failures surface as upstream errors.
func (s *rssSource) Fetch(ctx context.Context, code string) ([]entity.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	query := url.QueryEscape(code + " 株")
	feedURL := fmt.Sprintf(s.feedURL, query)

	feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("news feed %s: %w", code, upstream.ErrTimeout)
		}
		var he gofeed.HTTPError
		if errors.As(err, &he) {
			return nil, &upstream.Error{Status: he.StatusCode, Endpoint: "news"}
		}
		return nil, fmt.Errorf("news feed %s: %w", code, err)
	}

	items := make([]entity.Item, 0, len(feed.Items))
	for _, it := range feed.Items {
		title, source := splitPublisher(it.Title)
		if title == "" {
			continue
		}
		item := entity.Item{
			Title:  title,
			Link:   it.Link,
			Source: source,
		}
		if it.PublishedParsed != nil {
			item.Published = *it.PublishedParsed
		}
		items = append(items, item)
	}
	return items, nil
}

// splitPublisher separates the " - Publisher" suffix Google News appends
// to every headline. Titles without the suffix pass through unchanged.
func splitPublisher(title string) (string, string) {
	title = strings.TrimSpace(title)
	if i := strings.LastIndex(title, " - "); i > 0 {
		return strings.TrimSpace(title[:i]), strings.TrimSpace(title[i+3:])
	}
	return title, ""
}
