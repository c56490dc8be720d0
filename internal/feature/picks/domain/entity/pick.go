// Package entity defines the picks feature's domain model.
package entity

// MaxPicks is the Top-10 contract: a report never yields more picks
// than this, regardless of how many candidates the document mentions.
const MaxPicks = 10

// Pick is one ranked trading candidate recovered from a daily report.
// Numeric fields are pointers because an unparsable or absent value
// must stay distinguishable from zero.
type Pick struct {
	Rank       int
	Code       string
	Name       string
	Entry      *float64
	Stop       *float64
	TakeProfit *float64
	Score      *float64
	Close      *float64
	Reasons    []string
}
