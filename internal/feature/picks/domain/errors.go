// Package domain defines the picks feature's domain errors.
package domain

import "errors"

var (
	// ErrPicksNotFound is returned when neither a picks sidecar nor a
	// report document exists for the requested date.
	ErrPicksNotFound = errors.New("picks not found")
)
