package dismissal

import (
	"regexp"
	"strings"

	"github.com/riskibarqy/cricket-stats/internal/domain/team"
)

const (
	droppedFuzzyFloor  = 80
	droppedFuzzyAccept = 85

	properName = `([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`
)

var droppedKeywords = []string{"dropped!", "spills", "drops", "put down", "missed chance", "spill", "misfield"}

var droppedPatterns = []*regexp.Regexp{
	regexp.MustCompile(properName + `\s+and\s+` + properName + `\s+(?i:converge)`),
	regexp.MustCompile(properName + `\s+(?i:drops\b|spills|spilled|puts down|misfields|put it down)`),
	regexp.MustCompile(`(?i:dropped by|put down by|spilled by|missed chance by|missed by)\s+` + properName),
	regexp.MustCompile(properName + `\s+(?i:couldn't hold on|could not hold on|can't hold on|fails to hold on)`),
	regexp.MustCompile(properName + `\s+(?i:shells)`),
}

var properNounPattern = regexp.MustCompile(`\b` + properName + `\b`)

// HasDroppedCatchKeyword gates commentary before any pattern work.
func HasDroppedCatchKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range droppedKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// ExtractDroppedCatchFielder recovers the fielder who put down a chance.
// Bold spans mentioning the drop are tried first, then the whole text, then
// a fuzzy pass over every proper noun. The result is best effort.
func ExtractDroppedCatchFielder(text string, bold []string, index Index) (DroppedCatch, bool) {
	if !HasDroppedCatchKeyword(text) && !HasDroppedCatchKeyword(strings.Join(bold, " ")) {
		return DroppedCatch{}, false
	}

	for _, span := range bold {
		lower := strings.ToLower(span)
		if !strings.Contains(lower, "drop") && !strings.Contains(lower, "spill") {
			continue
		}
		if name, ok := matchDroppedPatterns(span); ok {
			return credit(name, SourceBold, index), true
		}
	}

	if name, ok := matchDroppedPatterns(text); ok {
		return credit(name, SourceText, index), true
	}

	bestKey, bestScore := "", droppedFuzzyFloor
	for _, candidate := range properNounPattern.FindAllString(text, -1) {
		lower := strings.ToLower(candidate)
		if index == nil {
			break
		}
		for _, key := range index.IndexedNames() {
			if score := team.Ratio(lower, key); score > bestScore {
				bestKey, bestScore = key, score
			}
		}
	}
	if bestKey != "" && bestScore >= droppedFuzzyAccept {
		id, _ := index.IDForName(bestKey)
		return DroppedCatch{Name: bestKey, PlayerID: id, Source: SourceFuzzy}, true
	}

	return DroppedCatch{}, false
}

func matchDroppedPatterns(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, pattern := range droppedPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 2 && m[2] != "" && strings.Contains(lower, "the latter") {
			return m[2], true
		}
		return m[1], true
	}
	return "", false
}

func credit(name, source string, index Index) DroppedCatch {
	out := DroppedCatch{Name: strings.TrimSpace(name), Source: source}
	if id, ok := Lookup(out.Name, index); ok {
		out.PlayerID = id
	}
	return out
}
