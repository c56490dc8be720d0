// Package entity defines the domain models for the candles feature.
package entity

import "time"

// Provenance tags describing where a series came from.
const (
	SourceCache = "cache"
	SourceDummy = "dummy"
	SourceStooq = "stooq"
)

// Candle represents one trading day's OHLCV bar.
type Candle struct {
	Time   time.Time // Calendar date of the bar
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64 // May be zero
}

// Series is a chronological sequence of daily candles for one instrument,
// oldest first, together with the provenance of the data. Dummy is set when
// the candles are synthetic placeholders rather than observed prices.
type Series struct {
	Code    string
	Source  string
	Dummy   bool
	Candles []Candle
}
