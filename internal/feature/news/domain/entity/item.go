// Package entity defines the news feature's domain model.
package entity

import "time"

// Item is one headline pulled from the news feed for a stock code.
type Item struct {
	Title     string
	Link      string
	Source    string
	Published time.Time
}
