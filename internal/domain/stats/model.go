package stats

// CleanBowledStat is keyed by (BowlerID, Team).
type CleanBowledStat struct {
	BowlerID           int64
	BowlerName         string
	Team               string
	CleanBowledWickets int
	RunsConceded       int
	BallsBowled        int
	Economy            float64
}

// PowerplayStat is keyed by Team.
type PowerplayStat struct {
	Team         string
	TotalRuns    int
	InningsCount int
	AverageRuns  float64
}

// BattingMetric is keyed by (PlayerID, Team).
type BattingMetric struct {
	PlayerID               int64
	PlayerName             string
	Team                   string
	TotalRuns              int
	Fours                  int
	Sixes                  int
	BoundaryDominanceRatio float64
}

// BowlingMetric is keyed by (PlayerID, Team).
type BowlingMetric struct {
	PlayerID           int64
	PlayerName         string
	Team               string
	Wickets            int
	RunsConceded       int
	EffectivenessRatio float64
}

// HeadToHead is keyed by the lexicographically sorted team pair.
type HeadToHead struct {
	Team1          string
	Team2          string
	Team1Wins      int
	Team2Wins      int
	TiesOrNoResult int
	TotalMatches   int
	Team1WinPct    float64
	Team2WinPct    float64
}

// FielderCatchStat is keyed by (FielderID, Team).
type FielderCatchStat struct {
	FielderID   int64
	FielderName string
	Team        string
	Catches     int
}

// DroppedCatchStat is keyed by (FielderID, Team). Counts come from a text
// heuristic over commentary.
type DroppedCatchStat struct {
	FielderID      int64
	FielderName    string
	Team           string
	DroppedCatches int
}

// LatestMatchSummary is keyed by MatchID.
type LatestMatchSummary struct {
	MatchID    string
	Team1      string
	Team2      string
	Team1Score string
	Team2Score string
	Team1Top   TopPerformers
	Team2Top   TopPerformers
	Result     string
}

// TopPerformers are one side's best batter and the best bowler against it.
type TopPerformers struct {
	BatsmanName       string
	BatsmanRuns       int
	BatsmanStrikeRate float64
	BowlerName        string
	BowlerWickets     int
	BowlerEconomy     float64
}
