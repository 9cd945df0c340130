package postgres

type teamStandingModel struct {
	Position   int     `db:"position"`
	Team       string  `db:"team_name"`
	Matches    int     `db:"matches_played"`
	Won        int     `db:"matches_won"`
	Lost       int     `db:"matches_lost"`
	Tied       int     `db:"matches_tied"`
	NoResult   int     `db:"matches_no_result"`
	Points     int     `db:"points"`
	NetRunRate float64 `db:"net_run_rate"`
}

type topBatsmanModel struct {
	Rank       int      `db:"position"`
	PlayerID   int64    `db:"batsman_id"`
	PlayerName string   `db:"player_name"`
	Team       string   `db:"team"`
	Runs       int      `db:"total_runs"`
	Matches    int      `db:"matches"`
	Innings    int      `db:"innings"`
	Highest    int      `db:"highest_score"`
	Average    *float64 `db:"average_runs"`
	StrikeRate float64  `db:"strike_rate"`
	Hundreds   int      `db:"hundreds"`
	Fifties    int      `db:"fifties"`
	Fours      int      `db:"fours"`
	Sixes      int      `db:"sixes"`
}

type topBowlerModel struct {
	Rank         int      `db:"position"`
	PlayerID     int64    `db:"bowler_id"`
	PlayerName   string   `db:"player_name"`
	Team         string   `db:"team"`
	Wickets      int      `db:"total_wickets"`
	Matches      int      `db:"matches"`
	Innings      int      `db:"innings"`
	Overs        float64  `db:"overs"`
	RunsConceded int      `db:"runs_conceded"`
	BestFigures  string   `db:"best_figures"`
	Average      *float64 `db:"bowling_average"`
	Economy      float64  `db:"economy_rate"`
	FourWickets  int      `db:"four_wickets"`
	FiveWickets  int      `db:"five_wickets"`
}
