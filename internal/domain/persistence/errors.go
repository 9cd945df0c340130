// Package persistence holds errors shared by every storage adapter.
package persistence

import (
	"errors"

	crerr "github.com/cockroachdb/errors"
)

// ErrUnavailable marks a lost or unusable connection. A run that sees it stops.
var ErrUnavailable = errors.New("persistence unavailable")

// IsUnavailable reports whether err carries ErrUnavailable, either wrapped or
// attached as a mark.
func IsUnavailable(err error) bool {
	return err != nil && crerr.Is(err, ErrUnavailable)
}
