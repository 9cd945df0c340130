package aggregate

import (
	"sort"

	"github.com/riskibarqy/cricket-stats/internal/domain/matchfact"
	"github.com/riskibarqy/cricket-stats/internal/domain/stats"
)

// Powerplay averages mandatory six-over powerplay runs per batting team.
// Only innings whose segment qualified during decoding carry PowerplayRuns.
type Powerplay struct {
	rows map[string]*stats.PowerplayStat
}

func NewPowerplay() *Powerplay {
	return &Powerplay{rows: make(map[string]*stats.PowerplayStat)}
}

func (p *Powerplay) Add(facts matchfact.Facts) int {
	added := 0
	for _, innings := range facts.Innings {
		if innings.PowerplayRuns == nil || !known(innings.BattingTeam) {
			continue
		}
		row, ok := p.rows[innings.BattingTeam]
		if !ok {
			row = &stats.PowerplayStat{Team: innings.BattingTeam}
			p.rows[innings.BattingTeam] = row
		}
		row.TotalRuns += *innings.PowerplayRuns
		row.InningsCount++
		added++
	}
	return added
}

func (p *Powerplay) Results() []stats.PowerplayStat {
	out := make([]stats.PowerplayStat, 0, len(p.rows))
	for _, row := range p.rows {
		item := *row
		if item.InningsCount > 0 {
			item.AverageRuns = matchfact.Round(float64(item.TotalRuns)/float64(item.InningsCount), 2)
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Team < out[j].Team })
	return out
}
