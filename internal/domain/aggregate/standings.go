package aggregate

import (
	"regexp"
	"sort"
	"strings"

	"github.com/riskibarqy/cricket-stats/internal/domain/matchfact"
	"github.com/riskibarqy/cricket-stats/internal/domain/silver"
	"github.com/riskibarqy/cricket-stats/internal/domain/standing"
	"github.com/riskibarqy/cricket-stats/internal/domain/team"
)

const (
	PointsWin      = 2
	PointsShared   = 1
	AllottedBalls  = 120
	minOversFactor = 0.1
)

var superOverStatus = regexp.MustCompile(`(?i)\((.*?) won the super over\)`)

// StandingsInput is everything the points table needs from the silver layer.
type StandingsInput struct {
	Summaries []silver.MatchSummary
	Batting   []silver.Batting
	// Extras is keyed by match id then batting team.
	Extras map[string]map[string]int
}

type teamLine struct {
	row          standing.TeamStanding
	runsScored   int
	ballsFaced   int
	runsConceded int
	ballsBowled  int
}

type inningsTotal struct {
	runs    int
	balls   int
	wickets int
}

// Standings builds the points table with net run rate. Matches are folded in
// match id order so reruns produce identical tables.
func Standings(in StandingsInput, normalizer *team.Normalizer) ([]standing.TeamStanding, []Skip) {
	if normalizer == nil {
		normalizer = team.NewDefaultNormalizer()
	}

	summaries := append([]silver.MatchSummary(nil), in.Summaries...)
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].MatchID < summaries[j].MatchID })

	totals := inningsTotals(in.Batting, in.Extras)
	lines := make(map[string]*teamLine)
	line := func(name string) *teamLine {
		l, ok := lines[name]
		if !ok {
			l = &teamLine{row: standing.TeamStanding{Team: name}}
			lines[name] = l
		}
		return l
	}

	var skipped []Skip
	for _, s := range summaries {
		t1, t2 := s.Team1, s.Team2
		if s.IsNoResult && (!known(t1) || !known(t2)) {
			if raw1, raw2, ok := team.FromMatchID(s.MatchID); ok {
				t1, t2 = normalizer.Normalize(raw1), normalizer.Normalize(raw2)
			}
		}
		if !known(t1) || !known(t2) || t1 == t2 {
			skipped = append(skipped, Skip{Key: s.MatchID, Reason: ReasonUnknownTeam})
			continue
		}

		a, b := line(t1), line(t2)
		a.row.Matches++
		b.row.Matches++

		if !awardPoints(s, a, b) {
			skipped = append(skipped, Skip{Key: s.MatchID, Reason: ReasonAmbiguousWinner})
		}
		if s.IsNoResult {
			continue
		}

		first, second, ok := pairInnings(totals[s.MatchID], t1, t2)
		if !ok {
			skipped = append(skipped, Skip{Key: s.MatchID, Reason: ReasonMissingInningsRun})
			continue
		}
		a.runsScored += first.runs
		a.ballsFaced += first.balls
		a.runsConceded += second.runs
		a.ballsBowled += second.balls
		b.runsScored += second.runs
		b.ballsFaced += second.balls
		b.runsConceded += first.runs
		b.ballsBowled += first.balls
	}

	out := make([]standing.TeamStanding, 0, len(lines))
	for _, l := range lines {
		row := l.row
		if l.ballsFaced > 0 || l.ballsBowled > 0 {
			row.NetRunRate = NetRunRate(l.runsScored, l.ballsFaced, l.runsConceded, l.ballsBowled)
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].NetRunRate != out[j].NetRunRate {
			return out[i].NetRunRate > out[j].NetRunRate
		}
		return out[i].Team < out[j].Team
	})
	for i := range out {
		out[i].Position = i + 1
	}
	return out, skipped
}

// awardPoints reports false when a decided match names neither team. Such a
// match is played but awards no points.
func awardPoints(s silver.MatchSummary, a, b *teamLine) bool {
	shared := func() {
		a.row.Points += PointsShared
		b.row.Points += PointsShared
	}
	win := func(winner, loser *teamLine) {
		winner.row.Won++
		winner.row.Points += PointsWin
		loser.row.Lost++
	}

	switch {
	case s.IsNoResult:
		a.row.NoResult++
		b.row.NoResult++
		shared()
		return true
	case strings.Contains(strings.ToLower(s.Status), "super over"):
		winner := s.SuperOverWinner
		if winner == "" {
			if m := superOverStatus.FindStringSubmatch(s.Status); m != nil {
				winner = matchfact.MatchKnownTeam(m[1], a.row.Team, b.row.Team)
			}
		}
		switch winner {
		case a.row.Team:
			win(a, b)
		case b.row.Team:
			win(b, a)
		default:
			a.row.Tied++
			b.row.Tied++
			shared()
		}
		return true
	case s.IsTie:
		a.row.Tied++
		b.row.Tied++
		shared()
		return true
	case s.Winner == a.row.Team:
		win(a, b)
		return true
	case s.Winner == b.row.Team:
		win(b, a)
		return true
	default:
		return false
	}
}

// NetRunRate is runs per over scored minus runs per over conceded, with
// overs floored at 0.1.
func NetRunRate(runsScored, ballsFaced, runsConceded, ballsBowled int) float64 {
	faced := oversOf(ballsFaced)
	bowled := oversOf(ballsBowled)
	return matchfact.Round(float64(runsScored)/faced-float64(runsConceded)/bowled, 3)
}

func oversOf(balls int) float64 {
	overs := float64(balls) / 6
	if overs < minOversFactor {
		return minOversFactor
	}
	return overs
}

// inningsTotals sums regulation batting per match and batting team, so
// documents that repeat or omit innings ids still pair up.
func inningsTotals(rows []silver.Batting, extras map[string]map[string]int) map[string]map[string]*inningsTotal {
	out := make(map[string]map[string]*inningsTotal)
	for _, row := range rows {
		if !silver.IsMainInnings(row.InningsID) || !known(row.Team) {
			continue
		}
		byTeam, ok := out[row.MatchID]
		if !ok {
			byTeam = make(map[string]*inningsTotal)
			out[row.MatchID] = byTeam
		}
		total, ok := byTeam[row.Team]
		if !ok {
			total = &inningsTotal{runs: extras[row.MatchID][row.Team]}
			byTeam[row.Team] = total
		}
		total.runs += row.Runs
		total.balls += row.Balls
		if row.IsOut {
			total.wickets++
		}
	}

	for _, byTeam := range out {
		for _, total := range byTeam {
			if total.wickets >= 10 && total.balls < AllottedBalls {
				total.balls = AllottedBalls
			}
		}
	}
	return out
}

// pairInnings returns the innings batted by t1 and t2 respectively.
func pairInnings(byTeam map[string]*inningsTotal, t1, t2 string) (inningsTotal, inningsTotal, bool) {
	first, ok1 := byTeam[t1]
	second, ok2 := byTeam[t2]
	if !ok1 || !ok2 {
		return inningsTotal{}, inningsTotal{}, false
	}
	return *first, *second, true
}
