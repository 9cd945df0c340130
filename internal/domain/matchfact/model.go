package matchfact

import (
	"github.com/riskibarqy/cricket-stats/internal/domain/dismissal"
	"github.com/riskibarqy/cricket-stats/internal/domain/identity"
)

// Result is the decided outcome of a match.
type Result string

const (
	ResultWin      Result = "win"
	ResultTie      Result = "tie"
	ResultNoResult Result = "no_result"
	ResultUnknown  Result = "unknown"
)

// Metadata is the match-level header of one document.
type Metadata struct {
	MatchID         string
	Sequence        *int
	Team1           string
	Team2           string
	Status          string
	Result          Result
	Winner          string
	SuperOverWinner string
	MarginRuns      *int
	MarginWickets   *int
	TossWinner      string
	TossDecision    string
	SeriesName      string
	MatchType       string
	MatchFormat     string
	StartTimestamp  int64
}

// IsNoResult reports whether the match should be scored as no result.
func (m Metadata) IsNoResult() bool {
	return m.Result == ResultNoResult
}

type BattingEvent struct {
	PlayerID   int64
	Name       string
	Runs       int
	Balls      int
	Fours      int
	Sixes      int
	StrikeRate float64
	Dismissal  string
	IsOut      bool
	Fact       dismissal.Fact
}

type BowlingEvent struct {
	PlayerID   int64
	Name       string
	Overs      float64
	LegalBalls int
	Runs       int
	Wickets    int
	Maidens    int
	Economy    float64
}

// InningsFact is one innings with both sides resolved.
type InningsFact struct {
	MatchID       string
	Sequence      int
	BattingTeam   string
	BowlingTeam   string
	Score         int
	Wickets       int
	Extras        int
	PowerplayRuns *int
	Batting       []BattingEvent
	Bowling       []BowlingEvent
}

// BattingRuns sums runs off the bat.
func (f InningsFact) BattingRuns() int {
	total := 0
	for _, event := range f.Batting {
		total += event.Runs
	}
	return total
}

// DismissalTally counts every wicket of a match, credited or not.
type DismissalTally struct {
	Total      int
	Credited   int
	Uncredited int
	ByKind     map[dismissal.Kind]int
}

func (t *DismissalTally) add(fact dismissal.Fact) {
	if !fact.Kind.IsWicket() {
		return
	}
	if t.ByKind == nil {
		t.ByKind = make(map[dismissal.Kind]int)
	}
	t.Total++
	t.ByKind[fact.Kind]++
	if fact.Credited() {
		t.Credited++
	} else {
		t.Uncredited++
	}
}

// Facts is everything extracted from one match document.
type Facts struct {
	Metadata Metadata
	Players  *identity.Map
	Innings  []InningsFact
	Tally    DismissalTally
}

// HasKnownTeams reports whether the match can feed team-keyed statistics.
func (f Facts) HasKnownTeams() bool {
	return f.Players.HasKnownTeams()
}
