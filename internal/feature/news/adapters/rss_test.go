package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nikkei_backend/internal/shared/upstream"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>"7203 株" - Google ニュース</title>
<item>
  <title>トヨタ、上期決算を発表 - 日経新聞</title>
  <link>https://example.com/a</link>
  <pubDate>Mon, 02 Jun 2025 01:30:00 GMT</pubDate>
</item>
<item>
  <title>suffixless headline</title>
  <link>https://example.com/b</link>
</item>
</channel></rss>`

func TestRSSSource_Fetch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	s := NewRSSSource(srv.URL+"/rss?q=%s", nil)
	items, err := s.Fetch(context.Background(), "7203")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "7203 株", gotQuery)

	assert.Equal(t, "トヨタ、上期決算を発表", items[0].Title)
	assert.Equal(t, "日経新聞", items[0].Source)
	assert.Equal(t, "https://example.com/a", items[0].Link)
	assert.Equal(t, time.Date(2025, 6, 2, 1, 30, 0, 0, time.UTC), items[0].Published.UTC())

	assert.Equal(t, "suffixless headline", items[1].Title)
	assert.Equal(t, "", items[1].Source)
	assert.True(t, items[1].Published.IsZero())
}

func TestRSSSource_Fetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := NewRSSSource(srv.URL+"/rss?q=%s", nil)
	_, err := s.Fetch(context.Background(), "7203")

	var ue *upstream.Error
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusTooManyRequests, ue.Status)
	assert.Equal(t, "news", ue.Endpoint)
}

func TestRSSSource_Fetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer srv.Close()

	s := NewRSSSource(srv.URL+"/rss?q=%s", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := s.Fetch(ctx, "7203")
	assert.ErrorIs(t, err, upstream.ErrTimeout)
}

func TestSplitPublisher(t *testing.T) {
	tests := []struct {
		in, title, source string
	}{
		{"見出し - 発行元", "見出し", "発行元"},
		{"a - b - c", "a - b", "c"},
		{"no suffix", "no suffix", ""},
		{" - only suffix", "- only suffix", ""},
	}
	for _, tt := range tests {
		title, source := splitPublisher(tt.in)
		assert.Equal(t, tt.title, title, tt.in)
		assert.Equal(t, tt.source, source, tt.in)
	}
}
