package dto

import (
	"time"

	"nikkei_backend/internal/feature/news/domain/entity"
)

// ItemResponse is the wire form of one headline.
type ItemResponse struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Source    string `json:"source,omitempty"`
	Published string `json:"published,omitempty"` // RFC 3339, absent when unknown
}

// NewsResponse wraps a code with its headlines.
type NewsResponse struct {
	Code  string         `json:"code"`
	Items []ItemResponse `json:"items"`
}

// FromEntities converts domain items into the wire representation.
func FromEntities(code string, items []entity.Item) NewsResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		r := ItemResponse{Title: it.Title, Link: it.Link, Source: it.Source}
		if !it.Published.IsZero() {
			r.Published = it.Published.UTC().Format(time.RFC3339)
		}
		out = append(out, r)
	}
	return NewsResponse{Code: code, Items: out}
}
