// Package dto defines data transfer objects for the quote HTTP API.
package dto

import "nikkei_backend/internal/feature/quote/domain/entity"

// QuoteResponse is the wire form of a best-effort intraday price.
type QuoteResponse struct {
	Code   string  `json:"code"`
	Price  float64 `json:"price"`
	Source string  `json:"source"`
}

// FromEntity converts a domain quote into the wire representation.
func FromEntity(q entity.Quote) QuoteResponse {
	return QuoteResponse{Code: q.Code, Price: q.Price, Source: q.Source}
}
