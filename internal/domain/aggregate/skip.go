// Package aggregate folds per-match facts and silver rows into gold rows.
// Folds are pure and deterministic; callers own persistence.
package aggregate

import (
	"strconv"

	"github.com/riskibarqy/cricket-stats/internal/domain/team"
)

// Skip reasons reported alongside fold results.
const (
	ReasonUnknownTeam       = "unknown_team"
	ReasonUnresolvedPlayer  = "unresolved_player"
	ReasonGenericName       = "generic_name"
	ReasonNoBallsNoWickets  = "no_balls_no_wickets"
	ReasonAmbiguousWinner   = "ambiguous_winner"
	ReasonUnknownFielder    = "unknown_fielder_team"
	ReasonMissingInningsRun = "missing_innings_data"
)

// UnknownFielderTeam groups fielders absent from their match's player map.
const UnknownFielderTeam = "Unknown Fielder Team"

// Skip records one entity or match left out of a result set.
type Skip struct {
	Key    string
	Reason string
}

type playerTeamKey struct {
	id   int64
	team string
}

func (k playerTeamKey) String() string {
	return strconv.FormatInt(k.id, 10) + "/" + k.team
}

func lessPlayerTeam(a, b playerTeamKey) bool {
	if a.team != b.team {
		return a.team < b.team
	}
	return a.id < b.id
}

func known(name string) bool {
	return team.IsKnown(name)
}
