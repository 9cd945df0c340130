package team

import (
	"regexp"
	"strings"
)

var (
	matchIDPattern = regexp.MustCompile(`^\d+_(.+?)_vs_(.+)$`)
	camelBoundary  = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// FromMatchID reads the raw team spellings out of a "{id}_{Team1}_vs_{Team2}"
// match id, splitting CamelCase back into words.
func FromMatchID(matchID string) (string, string, bool) {
	parts := matchIDPattern.FindStringSubmatch(strings.TrimSpace(matchID))
	if parts == nil {
		return "", "", false
	}
	return SplitCamel(parts[1]), SplitCamel(parts[2]), true
}

// SplitCamel turns "ChennaiSuperKings" into "Chennai Super Kings".
func SplitCamel(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return strings.TrimSpace(camelBoundary.ReplaceAllString(s, "$1 $2"))
}

// FolderName renders the inverse: spaces are dropped from each team name.
func FolderName(matchID, team1, team2 string) string {
	strip := func(s string) string { return strings.ReplaceAll(strings.TrimSpace(s), " ", "") }
	return matchID + "_" + strip(team1) + "_vs_" + strip(team2)
}
