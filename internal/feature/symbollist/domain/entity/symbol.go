// Package entity defines the domain models for the symbollist feature.
package entity

// Symbol is one constituent of the tracked universe. The list is
// produced by an external job; this layer only reads it.
type Symbol struct {
	Code string // 4-digit instrument code, zero-padding preserved
	Name string // optional display name
}
