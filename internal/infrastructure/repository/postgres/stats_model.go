package postgres

type cleanBowledModel struct {
	BowlerID           int64   `db:"bowler_id"`
	BowlerName         string  `db:"bowler_name"`
	Team               string  `db:"team"`
	CleanBowledWickets int     `db:"total_clean_bowled_wickets"`
	RunsConceded       int     `db:"runs_conceded"`
	BallsBowled        int     `db:"balls_bowled"`
	Economy            float64 `db:"economy_rate"`
}

type powerplayModel struct {
	Team         string  `db:"team"`
	TotalRuns    int     `db:"total_powerplay_runs"`
	InningsCount int     `db:"innings_count"`
	AverageRuns  float64 `db:"average_powerplay_runs"`
}

type battingMetricModel struct {
	PlayerID               int64   `db:"batsman_id"`
	PlayerName             string  `db:"batsman_name"`
	Team                   string  `db:"team"`
	TotalRuns              int     `db:"total_runs"`
	Fours                  int     `db:"total_fours"`
	Sixes                  int     `db:"total_sixes"`
	BoundaryDominanceRatio float64 `db:"boundary_dominance_ratio"`
}

type bowlingMetricModel struct {
	PlayerID           int64   `db:"bowler_id"`
	PlayerName         string  `db:"bowler_name"`
	Team               string  `db:"team"`
	Wickets            int     `db:"total_wickets"`
	RunsConceded       int     `db:"runs_conceded"`
	EffectivenessRatio float64 `db:"effectiveness_ratio"`
}

type headToHeadModel struct {
	Team1          string  `db:"team1"`
	Team2          string  `db:"team2"`
	Team1Wins      int     `db:"team1_wins"`
	Team2Wins      int     `db:"team2_wins"`
	TiesOrNoResult int     `db:"ties_or_no_result"`
	TotalMatches   int     `db:"total_matches"`
	Team1WinPct    float64 `db:"team1_win_pct"`
	Team2WinPct    float64 `db:"team2_win_pct"`
}

type fielderCatchModel struct {
	FielderID   int64  `db:"fielder_id"`
	FielderName string `db:"fielder_name"`
	Team        string `db:"team"`
	Catches     int    `db:"total_catches_taken"`
}

type droppedCatchModel struct {
	FielderID      int64  `db:"fielder_id"`
	FielderName    string `db:"fielder_name"`
	Team           string `db:"team"`
	DroppedCatches int    `db:"dropped_catches"`
}

type latestMatchModel struct {
	MatchID               string  `db:"match_id"`
	Team1                 string  `db:"team1"`
	Team2                 string  `db:"team2"`
	Team1Score            string  `db:"team1_score"`
	Team2Score            string  `db:"team2_score"`
	Team1TopBatsman       string  `db:"team1_top_batsman"`
	Team1TopBatsmanRuns   int     `db:"team1_top_batsman_runs"`
	Team1TopBatsmanSR     float64 `db:"team1_top_batsman_sr"`
	Team1TopBowler        string  `db:"team1_top_bowler"`
	Team1TopBowlerWickets int     `db:"team1_top_bowler_wickets"`
	Team1TopBowlerEconomy float64 `db:"team1_top_bowler_economy"`
	Team2TopBatsman       string  `db:"team2_top_batsman"`
	Team2TopBatsmanRuns   int     `db:"team2_top_batsman_runs"`
	Team2TopBatsmanSR     float64 `db:"team2_top_batsman_sr"`
	Team2TopBowler        string  `db:"team2_top_bowler"`
	Team2TopBowlerWickets int     `db:"team2_top_bowler_wickets"`
	Team2TopBowlerEconomy float64 `db:"team2_top_bowler_economy"`
	Result                string  `db:"result"`
}
