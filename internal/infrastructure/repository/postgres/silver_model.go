package postgres

type silverMatchSummaryModel struct {
	MatchID         string  `db:"match_id"`
	Sequence        *int    `db:"match_sequence"`
	Team1           string  `db:"team1"`
	Team2           string  `db:"team2"`
	Status          string  `db:"status"`
	Result          string  `db:"result"`
	Winner          string  `db:"winner"`
	MarginRuns      *int    `db:"margin_runs"`
	MarginWickets   *int    `db:"margin_wickets"`
	TossWinner      *string `db:"toss_winner"`
	TossDecision    *string `db:"toss_decision"`
	IsNoResult      bool    `db:"is_no_result"`
	IsTie           bool    `db:"is_tie"`
	SuperOverWinner *string `db:"super_over_winner"`
}

type silverBattingModel struct {
	MatchID    string  `db:"match_id"`
	InningsID  int     `db:"innings_id"`
	PlayerID   int64   `db:"batsman_id"`
	PlayerName string  `db:"batsman_name"`
	Team       string  `db:"batting_team"`
	Runs       int     `db:"runs"`
	Balls      int     `db:"balls"`
	Fours      int     `db:"fours"`
	Sixes      int     `db:"sixes"`
	StrikeRate float64 `db:"strike_rate"`
	Dismissal  string  `db:"dismissal"`
	IsOut      bool    `db:"is_out"`
}

type silverBowlingModel struct {
	MatchID     string  `db:"match_id"`
	InningsID   int     `db:"innings_id"`
	PlayerID    int64   `db:"bowler_id"`
	PlayerName  string  `db:"bowler_name"`
	Team        string  `db:"bowling_team"`
	Overs       float64 `db:"overs"`
	BallsBowled int     `db:"balls_bowled"`
	Maidens     int     `db:"maidens"`
	Runs        int     `db:"runs_conceded"`
	Wickets     int     `db:"wickets"`
	Economy     float64 `db:"economy"`
}
