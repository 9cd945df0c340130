package scorecard

// Variant identifies which of the two known scorecard shapes an innings uses.
type Variant int

const (
	VariantUnknown Variant = iota
	// VariantNested carries batTeamDetails.batsmenData / bowlTeamDetails.bowlersData maps.
	VariantNested
	// VariantFlat carries batsman[] / bowler[] lists next to batTeamName.
	VariantFlat
)

func (v Variant) String() string {
	switch v {
	case VariantNested:
		return "nested"
	case VariantFlat:
		return "flat"
	default:
		return "unknown"
	}
}

// Document is one decoded raw match scorecard.
type Document struct {
	MatchID  string
	Status   string
	SeoTitle string
	Header   Header
	Info     Info
	Innings  []Innings
}

// Header holds matchHeader metadata.
type Header struct {
	Team1          string
	Team2          string
	TeamInfo       []TeamInfo
	Winner         string
	ResultType     string
	TossWinner     string
	TossDecision   string
	StartTimestamp int64
}

type TeamInfo struct {
	TeamName        string
	BattingTeamName string
	BowlingTeamName string
}

// Info holds the optional matchInfo block.
type Info struct {
	SeriesName   string
	MatchType    string
	MatchFormat  string
	TossWinner   string
	TossDecision string
	Teams        []InfoTeam
}

type InfoTeam struct {
	Name      string
	ShortName string
}

// Innings is one batting turn, normalized across both variants.
type Innings struct {
	Position    int
	InningsID   int
	Variant     Variant
	BattingTeam string
	Score       string
	Wickets     string
	Extras      int
	Batters     []Batter
	Bowlers     []Bowler
	Powerplay   *Powerplay
}

// HasBattingData reports whether any batter row was recorded.
func (i Innings) HasBattingData() bool {
	return len(i.Batters) > 0
}

// Batter is a batting row. Names keep every raw candidate so callers can
// apply their own preference order.
type Batter struct {
	ID         int64
	Variant    Variant
	FullName   string
	ShortName  string
	Name       string
	Runs       int
	Balls      int
	Fours      int
	Sixes      int
	StrikeRate *float64
	Dismissal  string
	WicketCode string
	FielderID  int64
	BowlerID   int64
}

// Bowler is a bowling row. Balls is only set when the source carried a direct count.
type Bowler struct {
	ID        int64
	Variant   Variant
	FullName  string
	ShortName string
	Name      string
	Overs     string
	Balls     *int
	Runs      int
	Wickets   int
	Maidens   int
	Economy   *float64
}

// Powerplay is the mandatory powerplay segment of an innings.
type Powerplay struct {
	Type    string
	OversTo float64
	Runs    int
}

// IsMandatorySixOvers reports whether the segment counts towards powerplay averages.
func (p Powerplay) IsMandatorySixOvers() bool {
	return p.Type == "mandatory" && p.OversTo == 6.0
}

// Commentary is a decoded commentary feed.
type Commentary struct {
	MatchID string
	Entries []CommentaryEntry
}

type CommentaryEntry struct {
	Text string
	Bold []string
}
