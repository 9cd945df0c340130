package team

import "strings"

// FuzzyThreshold is the exclusive lower bound for accepting a fuzzy team match.
const FuzzyThreshold = 85

// Normalizer maps any spelling of a team onto its canonical name.
// It is immutable after construction and safe for concurrent use.
type Normalizer struct {
	canonical []string
	lowered   []string
	byLower   map[string]string
}

func NewNormalizer(roster Roster) *Normalizer {
	n := &Normalizer{
		canonical: make([]string, 0, len(roster)),
		lowered:   make([]string, 0, len(roster)),
		byLower:   make(map[string]string, len(roster)*4),
	}
	for _, item := range roster {
		lower := strings.ToLower(item.Name)
		n.canonical = append(n.canonical, item.Name)
		n.lowered = append(n.lowered, lower)
		if _, ok := n.byLower[lower]; !ok {
			n.byLower[lower] = item.Name
		}
	}
	// Aliases are registered after every canonical name so a canonical spelling always wins.
	for _, item := range roster {
		for _, alias := range item.Aliases {
			lower := strings.ToLower(strings.TrimSpace(alias))
			if _, ok := n.byLower[lower]; !ok {
				n.byLower[lower] = item.Name
			}
		}
	}

	return n
}

// NewDefaultNormalizer builds a normalizer over DefaultRoster.
func NewDefaultNormalizer() *Normalizer {
	return NewNormalizer(DefaultRoster())
}

// Normalize returns the canonical team for raw, or Unknown.
func (n *Normalizer) Normalize(raw string) string {
	clean := strings.TrimSpace(raw)
	lower := strings.ToLower(clean)
	if clean == "" || lower == strings.ToLower(Unknown) {
		return Unknown
	}

	if name, ok := n.byLower[lower]; ok {
		return name
	}

	best, bestScore := -1, 0
	for i, candidate := range n.lowered {
		score := Ratio(lower, candidate)
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best >= 0 && bestScore > FuzzyThreshold {
		return n.canonical[best]
	}

	return Unknown
}

// NormalizePtr treats a nil name the same as an empty one.
func (n *Normalizer) NormalizePtr(raw *string) string {
	if raw == nil {
		return Unknown
	}
	return n.Normalize(*raw)
}

// Canonical reports the roster names in enumeration order.
func (n *Normalizer) Canonical() []string {
	return append([]string(nil), n.canonical...)
}

// IsKnown reports whether name is a resolved team rather than the sentinel.
func IsKnown(name string) bool {
	clean := strings.TrimSpace(name)
	return clean != "" && !strings.EqualFold(clean, Unknown)
}
