package leaderboard

// DefaultSize is the number of rows kept per leaderboard.
const DefaultSize = 20

type Batsman struct {
	Rank       int
	PlayerID   int64
	PlayerName string
	Team       string
	Runs       int
	Matches    int
	Innings    int
	Highest    int
	Average    *float64
	StrikeRate float64
	Hundreds   int
	Fifties    int
	Fours      int
	Sixes      int
}

type Bowler struct {
	Rank         int
	PlayerID     int64
	PlayerName   string
	Team         string
	Wickets      int
	Matches      int
	Innings      int
	Overs        float64
	RunsConceded int
	BestFigures  string
	Average      *float64
	Economy      float64
	FourWickets  int
	FiveWickets  int
}
