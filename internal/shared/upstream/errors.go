// Package upstream defines the error conditions shared by clients of
// external data sources.
package upstream

import (
	"errors"
	"fmt"
)

// ErrTimeout reports that an external fetch exceeded its deadline.
var ErrTimeout = errors.New("upstream timeout")

// Error describes a non-success response from an external data source.
// The HTTP status is kept so callers can decide whether to degrade.
type Error struct {
	Status   int
	Endpoint string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream %s: http %d", e.Endpoint, e.Status)
}
