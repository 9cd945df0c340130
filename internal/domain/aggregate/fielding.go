package aggregate

import (
	"github.com/riskibarqy/cricket-stats/internal/domain/dismissal"
	"github.com/riskibarqy/cricket-stats/internal/domain/identity"
	"github.com/riskibarqy/cricket-stats/internal/domain/matchfact"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/domain/stats"
)

// FielderCatches counts resolved catches per (fielder, team).
type FielderCatches struct {
	rows    map[playerTeamKey]*stats.FielderCatchStat
	skipped []Skip
}

func NewFielderCatches() *FielderCatches {
	return &FielderCatches{rows: make(map[playerTeamKey]*stats.FielderCatchStat)}
}

func (f *FielderCatches) Add(facts matchfact.Facts) {
	for _, innings := range facts.Innings {
		for _, event := range innings.Batting {
			if event.Fact.Kind != dismissal.KindCaught {
				continue
			}
			if event.Fact.FielderID <= 0 {
				f.skipped = append(f.skipped, Skip{Key: facts.Metadata.MatchID + "/" + event.Name, Reason: ReasonUnresolvedPlayer})
				continue
			}
			f.credit(event.Fact.FielderID, facts.Players)
		}
	}
}

func (f *FielderCatches) credit(id int64, players *identity.Map) {
	teamName, name := UnknownFielderTeam, identity.FielderPlaceholderName(id)
	if p, ok := players.Get(id); ok {
		teamName = p.Team
		if !identity.IsGenericName(p.Name) {
			name = p.Name
		}
	}

	key := playerTeamKey{id: id, team: teamName}
	row, ok := f.rows[key]
	if !ok {
		row = &stats.FielderCatchStat{FielderID: id, FielderName: name, Team: teamName}
		f.rows[key] = row
	}
	row.FielderName = preferredName(row.FielderName, name)
	row.Catches++
}

// Results drops rows under UnknownFielderTeam or an unresolved team.
func (f *FielderCatches) Results() ([]stats.FielderCatchStat, []Skip) {
	out := make([]stats.FielderCatchStat, 0, len(f.rows))
	skipped := append([]Skip(nil), f.skipped...)
	for _, key := range sortedKeys(f.rows) {
		row := *f.rows[key]
		switch {
		case row.Team == UnknownFielderTeam:
			skipped = append(skipped, Skip{Key: key.String(), Reason: ReasonUnknownFielder})
		case !known(row.Team):
			skipped = append(skipped, Skip{Key: key.String(), Reason: ReasonUnknownTeam})
		default:
			out = append(out, row)
		}
	}
	return out, skipped
}

// DroppedCatches counts commentary-detected dropped chances per (fielder, team).
type DroppedCatches struct {
	rows    map[playerTeamKey]*stats.DroppedCatchStat
	skipped []Skip
}

func NewDroppedCatches() *DroppedCatches {
	return &DroppedCatches{rows: make(map[playerTeamKey]*stats.DroppedCatchStat)}
}

// Add scans one match's commentary against its player map and returns the
// number of credited drops.
func (d *DroppedCatches) Add(players *identity.Map, commentary scorecard.Commentary) int {
	credited := 0
	for _, entry := range commentary.Entries {
		drop, ok := dismissal.ExtractDroppedCatchFielder(entry.Text, entry.Bold, players)
		if !ok {
			continue
		}
		if drop.PlayerID <= 0 {
			d.skipped = append(d.skipped, Skip{Key: commentary.MatchID + "/" + drop.Name, Reason: ReasonUnresolvedPlayer})
			continue
		}
		p, found := players.Get(drop.PlayerID)
		if !found || !known(p.Team) {
			d.skipped = append(d.skipped, Skip{Key: commentary.MatchID + "/" + drop.Name, Reason: ReasonUnknownTeam})
			continue
		}

		key := playerTeamKey{id: p.ID, team: p.Team}
		row, exists := d.rows[key]
		if !exists {
			row = &stats.DroppedCatchStat{FielderID: p.ID, FielderName: p.Name, Team: p.Team}
			d.rows[key] = row
		}
		row.FielderName = preferredName(row.FielderName, p.Name)
		row.DroppedCatches++
		credited++
	}
	return credited
}

func (d *DroppedCatches) Results() ([]stats.DroppedCatchStat, []Skip) {
	out := make([]stats.DroppedCatchStat, 0, len(d.rows))
	skipped := append([]Skip(nil), d.skipped...)
	for _, key := range sortedKeys(d.rows) {
		row := *d.rows[key]
		if identity.IsGenericName(row.FielderName) {
			row.FielderName = identity.FielderPlaceholderName(row.FielderID)
		}
		out = append(out, row)
	}
	return out, skipped
}
