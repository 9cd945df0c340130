package id

import (
	"regexp"
	"testing"
	"time"
)

func TestRunIDGenerator_NewID(t *testing.T) {
	t.Parallel()

	g := NewRunIDGenerator()
	g.now = func() time.Time { return time.Date(2026, 4, 15, 18, 30, 0, 0, time.FixedZone("IST", 19800)) }

	first, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if !regexp.MustCompile(`^run-20260415T130000Z-[0-9a-f]{8}$`).MatchString(first) {
		t.Fatalf("unexpected run id %q", first)
	}

	second, _ := g.NewID()
	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
}
