package rawmatch

import (
	"errors"
	"time"
)

// Scorecard is one stored raw scorecard document, keyed by match id.
type Scorecard struct {
	MatchID    string
	Payload    []byte
	IngestedAt time.Time
}

// Commentary is the optional ball-by-ball commentary for a match.
type Commentary struct {
	MatchID    string
	Payload    []byte
	IngestedAt time.Time
}

// ErrNotFound is returned when no stored document matches.
var ErrNotFound = errors.New("raw match not found")
