package silver

import (
	"github.com/riskibarqy/cricket-stats/internal/domain/matchfact"
	"github.com/riskibarqy/cricket-stats/internal/domain/team"
)

// Build flattens one match's facts into silver rows. Bowling rows are dropped
// for no-result matches whose fielding side never resolved.
func Build(facts matchfact.Facts) (MatchSummary, []Batting, []Bowling) {
	meta := facts.Metadata
	summary := MatchSummary{
		MatchID:         meta.MatchID,
		Sequence:        meta.Sequence,
		Team1:           meta.Team1,
		Team2:           meta.Team2,
		Status:          meta.Status,
		Result:          string(meta.Result),
		MarginRuns:      meta.MarginRuns,
		MarginWickets:   meta.MarginWickets,
		TossWinner:      meta.TossWinner,
		TossDecision:    meta.TossDecision,
		IsNoResult:      meta.Result == matchfact.ResultNoResult,
		IsTie:           meta.Result == matchfact.ResultTie,
		SuperOverWinner: meta.SuperOverWinner,
	}
	if team.IsKnown(meta.Winner) {
		summary.Winner = meta.Winner
	}

	var batting []Batting
	var bowling []Bowling
	for _, innings := range facts.Innings {
		for _, event := range innings.Batting {
			batting = append(batting, Batting{
				MatchID:    meta.MatchID,
				InningsID:  innings.Sequence,
				PlayerID:   event.PlayerID,
				PlayerName: event.Name,
				Team:       innings.BattingTeam,
				Runs:       event.Runs,
				Balls:      event.Balls,
				Fours:      event.Fours,
				Sixes:      event.Sixes,
				StrikeRate: event.StrikeRate,
				Dismissal:  event.Dismissal,
				IsOut:      event.IsOut,
			})
		}
		if summary.IsNoResult && !team.IsKnown(innings.BowlingTeam) {
			continue
		}
		for _, event := range innings.Bowling {
			bowling = append(bowling, Bowling{
				MatchID:     meta.MatchID,
				InningsID:   innings.Sequence,
				PlayerID:    event.PlayerID,
				PlayerName:  event.Name,
				Team:        innings.BowlingTeam,
				Overs:       event.Overs,
				BallsBowled: event.LegalBalls,
				Maidens:     event.Maidens,
				Runs:        event.Runs,
				Wickets:     event.Wickets,
				Economy:     event.Economy,
			})
		}
	}

	return summary, batting, bowling
}

// ExtrasByTeam sums main-innings extras per batting team for net run rate.
// Super over innings carry sequence 3 and above and are left out.
func ExtrasByTeam(facts matchfact.Facts) map[string]int {
	out := make(map[string]int, 2)
	for _, innings := range facts.Innings {
		if !IsMainInnings(innings.Sequence) {
			continue
		}
		out[innings.BattingTeam] += innings.Extras
	}
	return out
}

// IsMainInnings reports whether an innings sequence belongs to regulation play.
func IsMainInnings(sequence int) bool {
	return sequence == 1 || sequence == 2
}
