package identity

import (
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/domain/team"
)

// Resolver builds per-match player maps. It only reads its normalizer.
type Resolver struct {
	teams *team.Normalizer
}

func NewResolver(normalizer *team.Normalizer) *Resolver {
	if normalizer == nil {
		normalizer = team.NewDefaultNormalizer()
	}
	return &Resolver{teams: normalizer}
}

// Normalizer exposes the team normalizer the resolver was built with.
func (r *Resolver) Normalizer() *team.Normalizer {
	return r.teams
}

// Teams determines the two playing teams of a match. Header slots are
// trusted first; the remaining slots are filled from team info, innings
// batting teams, the match id and finally matchInfo, in that order.
func (r *Resolver) Teams(doc scorecard.Document) (string, string) {
	team1 := r.teams.Normalize(doc.Header.Team1)
	team2 := r.teams.Normalize(doc.Header.Team2)
	if !team.IsKnown(team1) && team.IsKnown(team2) {
		team1, team2 = team2, team.Unknown
	}
	if team1 == team2 {
		team2 = team.Unknown
	}
	if team.IsKnown(team1) && team.IsKnown(team2) {
		return team1, team2
	}

	candidates := make([]string, 0, 8)
	for _, info := range doc.Header.TeamInfo {
		candidates = append(candidates, info.TeamName, info.BattingTeamName, info.BowlingTeamName)
	}
	for _, innings := range doc.Innings {
		candidates = append(candidates, innings.BattingTeam)
	}
	if raw1, raw2, ok := team.FromMatchID(doc.MatchID); ok {
		candidates = append(candidates, raw1, raw2)
	}
	for _, item := range doc.Info.Teams {
		candidates = append(candidates, item.Name)
	}

	for _, raw := range candidates {
		name := r.teams.Normalize(raw)
		if !team.IsKnown(name) || name == team1 || name == team2 {
			continue
		}
		if !team.IsKnown(team1) {
			team1 = name
		} else {
			team2 = name
			break
		}
	}

	return team1, team2
}

// BowlingTeam infers the fielding side of an innings.
func BowlingTeam(team1, team2, batting string) string {
	known1, known2 := team.IsKnown(team1), team.IsKnown(team2)
	if known1 && known2 && team1 != team2 {
		switch batting {
		case team1:
			return team2
		case team2:
			return team1
		}
	}
	if known1 && team1 != batting {
		return team1
	}
	if known2 && team2 != batting {
		return team2
	}
	return team.Unknown
}

// Build resolves every player of the match into a fresh Map.
func (r *Resolver) Build(doc scorecard.Document) *Map {
	team1, team2 := r.Teams(doc)
	out := newMap(team1, team2)

	for _, innings := range doc.Innings {
		batting := r.teams.Normalize(innings.BattingTeam)
		bowling := BowlingTeam(team1, team2, batting)

		for _, b := range innings.Batters {
			out.observe(b.ID, batting, b.FullName, b.ShortName, b.Name)
		}
		for _, b := range innings.Bowlers {
			out.observe(b.ID, bowling, b.FullName, b.ShortName, b.Name)
		}
	}

	return out
}

// observe merges one record. names are in preference order.
func (m *Map) observe(id int64, teamName string, names ...string) {
	if id <= 0 {
		return
	}
	chosen := ""
	for _, name := range names {
		if !IsGenericName(name) {
			chosen = name
			break
		}
	}
	m.merge(id, chosen, teamName)

	// Short names are indexed too so "c Rohit b Bumrah" can be credited.
	m.index(chosen, id)
	for _, name := range names {
		m.index(name, id)
	}
}
