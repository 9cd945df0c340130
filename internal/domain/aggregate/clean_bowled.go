package aggregate

import (
	"sort"

	"github.com/riskibarqy/cricket-stats/internal/domain/dismissal"
	"github.com/riskibarqy/cricket-stats/internal/domain/identity"
	"github.com/riskibarqy/cricket-stats/internal/domain/matchfact"
	"github.com/riskibarqy/cricket-stats/internal/domain/stats"
)

// CleanBowled counts bowled dismissals and economy per (bowler, bowling team).
type CleanBowled struct {
	rows map[playerTeamKey]*stats.CleanBowledStat
}

func NewCleanBowled() *CleanBowled {
	return &CleanBowled{rows: make(map[playerTeamKey]*stats.CleanBowledStat)}
}

// Add folds one match. It reports false when the match has no usable teams.
func (c *CleanBowled) Add(facts matchfact.Facts) bool {
	if !facts.HasKnownTeams() {
		return false
	}

	for _, innings := range facts.Innings {
		if !known(innings.BowlingTeam) {
			continue
		}
		for _, event := range innings.Bowling {
			if event.PlayerID <= 0 {
				continue
			}
			row := c.entry(event.PlayerID, innings.BowlingTeam, event.Name)
			row.RunsConceded += event.Runs
			row.BallsBowled += event.LegalBalls
		}
		for _, event := range innings.Batting {
			if event.Fact.Kind != dismissal.KindBowled || event.Fact.BowlerID <= 0 {
				continue
			}
			name := event.Fact.BowlerName
			if p, ok := facts.Players.Get(event.Fact.BowlerID); ok {
				name = p.Name
			}
			c.entry(event.Fact.BowlerID, innings.BowlingTeam, name).CleanBowledWickets++
		}
	}

	return true
}

func (c *CleanBowled) entry(id int64, teamName, name string) *stats.CleanBowledStat {
	key := playerTeamKey{id: id, team: teamName}
	row, ok := c.rows[key]
	if !ok {
		row = &stats.CleanBowledStat{BowlerID: id, Team: teamName, BowlerName: identity.PlaceholderName(id)}
		c.rows[key] = row
	}
	if identity.IsGenericName(row.BowlerName) && !identity.IsGenericName(name) {
		row.BowlerName = name
	}
	return row
}

// Results returns persistable rows ordered by team then bowler id.
func (c *CleanBowled) Results() ([]stats.CleanBowledStat, []Skip) {
	keys := make([]playerTeamKey, 0, len(c.rows))
	for key := range c.rows {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return lessPlayerTeam(keys[i], keys[j]) })

	out := make([]stats.CleanBowledStat, 0, len(keys))
	var skipped []Skip
	for _, key := range keys {
		row := *c.rows[key]
		switch {
		case !known(row.Team):
			skipped = append(skipped, Skip{Key: key.String(), Reason: ReasonUnknownTeam})
			continue
		case identity.IsGenericName(row.BowlerName):
			skipped = append(skipped, Skip{Key: key.String(), Reason: ReasonGenericName})
			continue
		case row.CleanBowledWickets == 0 && row.BallsBowled == 0:
			skipped = append(skipped, Skip{Key: key.String(), Reason: ReasonNoBallsNoWickets})
			continue
		}
		row.Economy = Economy(row.RunsConceded, row.BallsBowled)
		out = append(out, row)
	}
	return out, skipped
}

// Economy is runs per six legal balls, 0 when nothing was bowled.
func Economy(runs, balls int) float64 {
	if balls <= 0 {
		return 0
	}
	return matchfact.Round(float64(runs)*6/float64(balls), 2)
}
