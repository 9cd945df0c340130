package app

import "strings"

// maxTracedQueryLength keeps multi-row gold inserts from bloating spans.
const maxTracedQueryLength = 512

// formatDBQueryForTrace collapses whitespace so the same statement always
// produces the same span attribute, then truncates it.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
