package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Generator creates identifiers for pipeline runs.
type Generator interface {
	NewID() (string, error)
}

// RunIDGenerator produces sortable run ids: "run-20260415T183000Z-1a2b3c4d".
type RunIDGenerator struct {
	now func() time.Time
}

func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{now: time.Now}
}

func (g *RunIDGenerator) NewID() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	now := time.Now
	if g != nil && g.now != nil {
		now = g.now
	}
	return fmt.Sprintf("run-%s-%s", now().UTC().Format("20060102T150405Z"), hex.EncodeToString(buf)), nil
}
