package aggregate

import (
	"sort"

	"github.com/riskibarqy/cricket-stats/internal/domain/dismissal"
	"github.com/riskibarqy/cricket-stats/internal/domain/identity"
	"github.com/riskibarqy/cricket-stats/internal/domain/silver"
)

// WicketShare counts dismissals of one kind taken by a bowling side.
type WicketShare struct {
	Team  string
	Kind  dismissal.Kind
	Count int
}

// WicketDistribution attributes every silver dismissal to the fielding side.
func WicketDistribution(summaries []silver.MatchSummary, batting []silver.Batting, parser *dismissal.Parser) []WicketShare {
	if parser == nil {
		parser = dismissal.NewParser()
	}
	teams := make(map[string][2]string, len(summaries))
	for _, s := range summaries {
		teams[s.MatchID] = [2]string{s.Team1, s.Team2}
	}

	type shareKey struct {
		team string
		kind dismissal.Kind
	}
	counts := make(map[shareKey]int)
	for _, row := range batting {
		if !row.IsOut {
			continue
		}
		pair, ok := teams[row.MatchID]
		if !ok {
			continue
		}
		fielding := identity.BowlingTeam(pair[0], pair[1], row.Team)
		if !known(fielding) {
			continue
		}
		kind := parser.Parse(row.Dismissal).Kind
		if !kind.IsWicket() {
			continue
		}
		counts[shareKey{team: fielding, kind: kind}]++
	}

	out := make([]WicketShare, 0, len(counts))
	for key, count := range counts {
		out = append(out, WicketShare{Team: key.team, Kind: key.kind, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Team != out[j].Team {
			return out[i].Team < out[j].Team
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}
