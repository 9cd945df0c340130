package silver

// MatchSummary is the silver row for one match.
type MatchSummary struct {
	MatchID         string
	Sequence        *int
	Team1           string
	Team2           string
	Status          string
	Result          string
	Winner          string
	MarginRuns      *int
	MarginWickets   *int
	TossWinner      string
	TossDecision    string
	IsNoResult      bool
	IsTie           bool
	SuperOverWinner string
}

// Batting is one batter's innings.
type Batting struct {
	MatchID    string
	InningsID  int
	PlayerID   int64
	PlayerName string
	Team       string
	Runs       int
	Balls      int
	Fours      int
	Sixes      int
	StrikeRate float64
	Dismissal  string
	IsOut      bool
}

// Bowling is one bowler's spell in an innings.
type Bowling struct {
	MatchID     string
	InningsID   int
	PlayerID    int64
	PlayerName  string
	Team        string
	Overs       float64
	BallsBowled int
	Maidens     int
	Runs        int
	Wickets     int
	Economy     float64
}
