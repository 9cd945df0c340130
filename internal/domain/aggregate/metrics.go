package aggregate

import (
	"sort"

	"github.com/riskibarqy/cricket-stats/internal/domain/identity"
	"github.com/riskibarqy/cricket-stats/internal/domain/matchfact"
	"github.com/riskibarqy/cricket-stats/internal/domain/silver"
	"github.com/riskibarqy/cricket-stats/internal/domain/stats"
)

// BoundaryDominanceRatio is the share of runs scored in boundaries, as a percentage.
func BoundaryDominanceRatio(runs, fours, sixes int) float64 {
	if runs <= 0 {
		return 0
	}
	return matchfact.Round(float64(fours*4+sixes*6)/float64(runs)*100, 2)
}

// EffectivenessRatio is wickets*100/(runs+1). The +1 keeps zero-run spells finite.
func EffectivenessRatio(wickets, runs int) float64 {
	return matchfact.Round(float64(wickets)*100/float64(runs+1), 4)
}

// BattingMetrics sums silver batting per (player, team) and derives the
// boundary dominance ratio over the career sums.
func BattingMetrics(rows []silver.Batting) ([]stats.BattingMetric, []Skip) {
	sums := make(map[playerTeamKey]*stats.BattingMetric)
	var skipped []Skip
	for _, row := range rows {
		key := playerTeamKey{id: row.PlayerID, team: row.Team}
		if !known(row.Team) {
			skipped = append(skipped, Skip{Key: key.String(), Reason: ReasonUnknownTeam})
			continue
		}
		item, ok := sums[key]
		if !ok {
			item = &stats.BattingMetric{PlayerID: row.PlayerID, Team: row.Team}
			sums[key] = item
		}
		item.PlayerName = preferredName(item.PlayerName, row.PlayerName)
		item.TotalRuns += row.Runs
		item.Fours += row.Fours
		item.Sixes += row.Sixes
	}

	out := make([]stats.BattingMetric, 0, len(sums))
	for _, key := range sortedKeys(sums) {
		item := *sums[key]
		if identity.IsGenericName(item.PlayerName) {
			skipped = append(skipped, Skip{Key: key.String(), Reason: ReasonGenericName})
			continue
		}
		item.BoundaryDominanceRatio = BoundaryDominanceRatio(item.TotalRuns, item.Fours, item.Sixes)
		out = append(out, item)
	}
	return out, skipped
}

// BowlingMetrics sums silver bowling per (player, team) and derives the
// effectiveness ratio.
func BowlingMetrics(rows []silver.Bowling) ([]stats.BowlingMetric, []Skip) {
	sums := make(map[playerTeamKey]*stats.BowlingMetric)
	var skipped []Skip
	for _, row := range rows {
		key := playerTeamKey{id: row.PlayerID, team: row.Team}
		if !known(row.Team) {
			skipped = append(skipped, Skip{Key: key.String(), Reason: ReasonUnknownTeam})
			continue
		}
		item, ok := sums[key]
		if !ok {
			item = &stats.BowlingMetric{PlayerID: row.PlayerID, Team: row.Team}
			sums[key] = item
		}
		item.PlayerName = preferredName(item.PlayerName, row.PlayerName)
		item.Wickets += row.Wickets
		item.RunsConceded += row.Runs
	}

	out := make([]stats.BowlingMetric, 0, len(sums))
	for _, key := range sortedKeys(sums) {
		item := *sums[key]
		if identity.IsGenericName(item.PlayerName) {
			skipped = append(skipped, Skip{Key: key.String(), Reason: ReasonGenericName})
			continue
		}
		item.EffectivenessRatio = EffectivenessRatio(item.Wickets, item.RunsConceded)
		out = append(out, item)
	}
	return out, skipped
}

// preferredName keeps the longest non-generic spelling; ties go to the
// lexicographically smaller one so reruns agree.
func preferredName(current, candidate string) string {
	switch {
	case identity.IsGenericName(candidate):
		if current == "" {
			return candidate
		}
		return current
	case identity.IsGenericName(current):
		return candidate
	case len(candidate) > len(current):
		return candidate
	case len(candidate) == len(current) && candidate < current:
		return candidate
	default:
		return current
	}
}

func sortedKeys[V any](m map[playerTeamKey]V) []playerTeamKey {
	keys := make([]playerTeamKey, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return lessPlayerTeam(keys[i], keys[j]) })
	return keys
}
