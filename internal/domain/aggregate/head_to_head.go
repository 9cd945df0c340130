package aggregate

import (
	"sort"

	"github.com/riskibarqy/cricket-stats/internal/domain/matchfact"
	"github.com/riskibarqy/cricket-stats/internal/domain/stats"
)

type pairKey struct {
	team1 string
	team2 string
}

// PairKey orders two teams lexicographically so both fixtures share a row.
func PairKey(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// HeadToHead tallies results per unordered team pair.
type HeadToHead struct {
	rows    map[pairKey]*stats.HeadToHead
	skipped []Skip
}

func NewHeadToHead() *HeadToHead {
	return &HeadToHead{rows: make(map[pairKey]*stats.HeadToHead)}
}

// Add folds one match result. Matches without two distinct known teams are skipped.
func (h *HeadToHead) Add(meta matchfact.Metadata) bool {
	if !known(meta.Team1) || !known(meta.Team2) || meta.Team1 == meta.Team2 {
		h.skipped = append(h.skipped, Skip{Key: meta.MatchID, Reason: ReasonUnknownTeam})
		return false
	}

	t1, t2 := PairKey(meta.Team1, meta.Team2)
	key := pairKey{team1: t1, team2: t2}
	row, ok := h.rows[key]
	if !ok {
		row = &stats.HeadToHead{Team1: t1, Team2: t2}
		h.rows[key] = row
	}
	row.TotalMatches++

	// A super over decides points only; the head-to-head record keeps the tie.
	winner := meta.Winner
	switch {
	case meta.Result == matchfact.ResultTie:
		row.TiesOrNoResult++
	case meta.Result == matchfact.ResultNoResult || !known(winner):
		row.TiesOrNoResult++
		if meta.Result == matchfact.ResultUnknown {
			h.skipped = append(h.skipped, Skip{Key: meta.MatchID, Reason: ReasonAmbiguousWinner})
		}
	case winner == t1:
		row.Team1Wins++
	case winner == t2:
		row.Team2Wins++
	default:
		row.TiesOrNoResult++
		h.skipped = append(h.skipped, Skip{Key: meta.MatchID, Reason: ReasonAmbiguousWinner})
	}
	return true
}

// Results returns pair rows with win percentages over decided matches.
func (h *HeadToHead) Results() ([]stats.HeadToHead, []Skip) {
	out := make([]stats.HeadToHead, 0, len(h.rows))
	for _, row := range h.rows {
		item := *row
		if decided := item.TotalMatches - item.TiesOrNoResult; decided > 0 {
			item.Team1WinPct = matchfact.Round(float64(item.Team1Wins)/float64(decided)*100, 2)
			item.Team2WinPct = matchfact.Round(float64(item.Team2Wins)/float64(decided)*100, 2)
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Team1 != out[j].Team1 {
			return out[i].Team1 < out[j].Team1
		}
		return out[i].Team2 < out[j].Team2
	})
	return out, append([]Skip(nil), h.skipped...)
}
