package dismissal

import (
	"regexp"
	"strings"

	"github.com/riskibarqy/cricket-stats/internal/domain/team"
)

const (
	// LookupThreshold is the minimum similarity for a fuzzy name credit.
	LookupThreshold = 90

	nameChars = `[\p{L}\p{N}_\s.'-]`
)

var (
	caughtAndBowledPattern = regexp.MustCompile(`(?i)^c\s*&\s*b\s+(.+?)\s*$`)
	caughtPattern          = regexp.MustCompile(`(?i)^c\s+(.+?)\s+b\s+(.+?)\s*$`)
	caughtByPattern        = regexp.MustCompile(`(?i)caught by\s+(` + nameChars + `+?)(?:\s+b\s+|$)`)
	caughtOnlyPattern      = regexp.MustCompile(`(?i)^c\s+(.+?)\s*$`)
	stumpedPattern         = regexp.MustCompile(`(?i)^st\s+(.+?)\s+b\s+(.+?)\s*$`)
	runOutPattern          = regexp.MustCompile(`(?i)run out\s*\(([^)]+)\)`)
	bowlerPattern          = regexp.MustCompile(`(?i)(?:^b\s+|^bowled\s+|\sb\s+)(` + nameChars + `+?)(?:\s*\(|\s*$|\[)`)
	bowlerFallbackPattern  = regexp.MustCompile(`(?i)(?:\bb|\bbowled)\s+(` + nameChars + `+)`)
	standaloneB            = regexp.MustCompile(`\sb(\s|$)`)
	decorationPattern      = regexp.MustCompile(`(?i)\(sub\)|\[.*?\]|†`)
)

// Parser turns free-text dismissal descriptions into facts. It is stateless.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse classifies a description. Names are returned raw; Resolve attaches ids.
func (p *Parser) Parse(description string) Fact {
	text := strings.TrimSpace(description)
	lower := strings.ToLower(text)

	switch {
	case lower == "" || strings.Contains(lower, "not out") || lower == "batting":
		return Fact{Kind: KindNotOut}
	case strings.Contains(lower, "run out"):
		fact := Fact{Kind: KindRunOut}
		if m := runOutPattern.FindStringSubmatch(text); m != nil {
			first, _, _ := strings.Cut(m[1], "/")
			fact.FielderName = cleanName(first)
		}
		return fact
	case strings.HasPrefix(lower, "st "):
		fact := Fact{Kind: KindStumped}
		if m := stumpedPattern.FindStringSubmatch(text); m != nil {
			fact.FielderName = cleanName(m[1])
			fact.BowlerName = cleanName(m[2])
		}
		return fact
	}

	if fielder, bowler, ok := catchNames(text); ok {
		return Fact{Kind: KindCaught, FielderName: fielder, BowlerName: bowler}
	}
	if IsBowled(text) {
		return Fact{Kind: KindBowled, BowlerName: BowlerName(text)}
	}

	return Fact{Kind: KindOther, BowlerName: BowlerName(text)}
}

// ParseCoded maps a coded wicket type straight onto a fact.
func (p *Parser) ParseCoded(code string, fielderID, bowlerID int64) (Fact, bool) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "":
		return Fact{}, false
	case "CAUGHT":
		return Fact{Kind: KindCaught, FielderID: fielderID, BowlerID: bowlerID}, true
	case "CAUGHTBOWLED", "CAUGHT_BOWLED":
		if fielderID <= 0 {
			fielderID = bowlerID
		}
		return Fact{Kind: KindCaught, FielderID: fielderID, BowlerID: bowlerID}, true
	case "BOWLED":
		return Fact{Kind: KindBowled, BowlerID: bowlerID}, true
	case "RUNOUT", "RUN_OUT":
		return Fact{Kind: KindRunOut, FielderID: fielderID}, true
	case "STUMPED":
		return Fact{Kind: KindStumped, FielderID: fielderID, BowlerID: bowlerID}, true
	default:
		return Fact{Kind: KindOther, BowlerID: bowlerID}, true
	}
}

// Resolve fills missing ids from the names on the fact.
func (p *Parser) Resolve(fact Fact, index Index) Fact {
	if fact.FielderID <= 0 && fact.FielderName != "" {
		if id, ok := Lookup(fact.FielderName, index); ok {
			fact.FielderID = id
		}
	}
	if fact.BowlerID <= 0 && fact.BowlerName != "" {
		if id, ok := Lookup(fact.BowlerName, index); ok {
			fact.BowlerID = id
		}
	}
	return fact
}

// IsCatch reports whether a description records a catch.
func IsCatch(description string) bool {
	lower := strings.ToLower(strings.TrimSpace(description))
	if strings.Contains(lower, "run out") || strings.Contains(lower, "stumped") || strings.Contains(lower, "hit wicket") {
		return false
	}
	return strings.HasPrefix(lower, "c ") || strings.HasPrefix(lower, "c&") || strings.Contains(lower, "caught by")
}

// IsBowled reports whether a description is a clean-bowled dismissal.
func IsBowled(description string) bool {
	lower := strings.ToLower(strings.TrimSpace(description))
	for _, excluded := range []string{"c & b", "run out", "stumped", "hit wicket", "lbw", "caught by"} {
		if strings.Contains(lower, excluded) {
			return false
		}
	}
	if strings.HasPrefix(lower, "c ") || strings.HasPrefix(lower, "st ") {
		return false
	}
	return strings.HasPrefix(lower, "b ") ||
		strings.HasPrefix(lower, "bowled ") ||
		strings.Contains(lower, " bowled ") ||
		standaloneB.MatchString(lower)
}

// BowlerName extracts the credited bowler from a description.
func BowlerName(description string) string {
	text := strings.TrimSpace(description)
	if m := bowlerPattern.FindStringSubmatch(text); m != nil {
		return cleanName(m[1])
	}
	if m := bowlerFallbackPattern.FindStringSubmatch(text); m != nil {
		return cleanName(m[1])
	}
	return ""
}

func catchNames(text string) (string, string, bool) {
	if !IsCatch(text) {
		return "", "", false
	}
	if m := caughtAndBowledPattern.FindStringSubmatch(text); m != nil {
		name := cleanName(m[1])
		return name, name, true
	}
	if m := caughtPattern.FindStringSubmatch(text); m != nil {
		return cleanName(m[1]), cleanName(m[2]), true
	}
	if m := caughtByPattern.FindStringSubmatch(text); m != nil {
		return cleanName(m[1]), BowlerName(text), true
	}
	if m := caughtOnlyPattern.FindStringSubmatch(text); m != nil {
		return cleanName(m[1]), "", true
	}
	return "", "", true
}

func cleanName(raw string) string {
	out := strings.Join(strings.Fields(decorationPattern.ReplaceAllString(raw, " ")), " ")
	if strings.EqualFold(out, "sub") {
		return ""
	}
	return out
}

// Lookup resolves a name against the index: exact lowercase first, then the
// best fuzzy key when it scores at least LookupThreshold.
func Lookup(name string, index Index) (int64, bool) {
	if index == nil {
		return 0, false
	}
	clean := strings.ToLower(cleanName(name))
	if clean == "" {
		return 0, false
	}
	if id, ok := index.IDForName(clean); ok {
		return id, true
	}

	bestKey, bestScore := "", 0
	for _, key := range index.IndexedNames() {
		if score := team.Ratio(clean, key); score > bestScore {
			bestKey, bestScore = key, score
		}
	}
	if bestKey == "" || bestScore < LookupThreshold {
		return 0, false
	}
	return index.IDForName(bestKey)
}
