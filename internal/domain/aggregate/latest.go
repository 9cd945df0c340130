package aggregate

import (
	"strings"

	"github.com/riskibarqy/cricket-stats/internal/domain/identity"
	"github.com/riskibarqy/cricket-stats/internal/domain/matchfact"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/domain/stats"
	"github.com/riskibarqy/cricket-stats/internal/domain/team"
)

const (
	notAvailable         = "N/A"
	resultNotAvailable   = "Result not available"
	missingEconomyMarker = 999.0
)

// LatestMatch summarizes one match for the dashboard header: score line,
// top batter and the best bowler against each side.
func LatestMatch(doc scorecard.Document, resolver *identity.Resolver) stats.LatestMatchSummary {
	team1, team2 := resolver.Teams(doc)
	raw1, raw2, hasRaw := team.FromMatchID(doc.MatchID)
	if !team.IsKnown(team1) && hasRaw {
		team1 = raw1
	}
	if !team.IsKnown(team2) && hasRaw {
		team2 = raw2
	}

	out := stats.LatestMatchSummary{
		MatchID:    doc.MatchID,
		Team1:      team1,
		Team2:      team2,
		Team1Score: notAvailable,
		Team2Score: notAvailable,
		Result:     strings.TrimSpace(doc.Status),
	}
	if out.Result == "" {
		out.Result = resultNotAvailable
	}
	out.Team1Top = emptyPerformers()
	out.Team2Top = emptyPerformers()

	normalizer := resolver.Normalizer()
	for i, innings := range doc.Innings {
		batting := normalizer.Normalize(innings.BattingTeam)
		firstSide := batting == team1 || (batting != team2 && i == 0)

		battingSide, bowlingSide := &out.Team2Top, &out.Team1Top
		score := &out.Team2Score
		if firstSide {
			battingSide, bowlingSide = &out.Team1Top, &out.Team2Top
			score = &out.Team1Score
		}

		*score = scoreLine(innings.Score, innings.Wickets)
		topBatsman(innings.Batters, battingSide)
		topBowler(innings.Bowlers, bowlingSide)
	}

	return out
}

func emptyPerformers() stats.TopPerformers {
	return stats.TopPerformers{BatsmanName: notAvailable, BowlerName: notAvailable}
}

func scoreLine(score, wickets string) string {
	s, w := strings.TrimSpace(score), strings.TrimSpace(wickets)
	if s == "" {
		s = notAvailable
	}
	if w == "" {
		w = notAvailable
	}
	return s + "/" + w
}

func topBatsman(batters []scorecard.Batter, into *stats.TopPerformers) {
	best := -1
	for i, b := range batters {
		if best < 0 || b.Runs > batters[best].Runs {
			best = i
		}
	}
	if best < 0 {
		return
	}
	b := batters[best]
	into.BatsmanName = shortName(b.ShortName, b.Name)
	into.BatsmanRuns = b.Runs
	switch {
	case b.StrikeRate != nil:
		into.BatsmanStrikeRate = *b.StrikeRate
	case b.Balls > 0:
		into.BatsmanStrikeRate = matchfact.Round(float64(b.Runs)/float64(b.Balls)*100, 2)
	}
}

func topBowler(bowlers []scorecard.Bowler, into *stats.TopPerformers) {
	best, bestEconomy := -1, 0.0
	for i, b := range bowlers {
		economy := missingEconomyMarker
		if b.Economy != nil {
			economy = *b.Economy
		}
		if best < 0 || b.Wickets > bowlers[best].Wickets || (b.Wickets == bowlers[best].Wickets && economy < bestEconomy) {
			best, bestEconomy = i, economy
		}
	}
	if best < 0 {
		return
	}
	b := bowlers[best]
	into.BowlerName = shortName(b.ShortName, b.Name)
	into.BowlerWickets = b.Wickets
	into.BowlerEconomy = bestEconomy
}

func shortName(names ...string) string {
	for _, name := range names {
		if strings.TrimSpace(name) != "" {
			return strings.TrimSpace(name)
		}
	}
	return notAvailable
}
