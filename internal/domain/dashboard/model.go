package dashboard

import "time"

// Projection names. Each one is a ready-to-chart JSON document.
const (
	PurpleCap           = "purple_cap"
	OrangeCap           = "orange_cap"
	PointsTable         = "points_table"
	LatestInnings       = "latest_innings"
	Catches             = "catches"
	Powerplay           = "powerplay"
	BoundaryRatio       = "boundary_ratio"
	CleanBowled         = "clean_bowled"
	WicketDistribution  = "wicket_distribution"
	BowlerEffectiveness = "bowler_effectiveness"
)

// Projection is one dashboard dataset, replaced wholesale on every run.
type Projection struct {
	Name        string
	Payload     []byte
	RowCount    int
	RefreshedAt time.Time
}

// InningsCard is one side of the latest match card.
type InningsCard struct {
	Innings          int     `json:"innings"`
	Team             string  `json:"team"`
	Score            string  `json:"score"`
	TopBatsman       string  `json:"top_batsman"`
	TopBatsmanRuns   int     `json:"top_batsman_runs"`
	TopBatsmanSR     float64 `json:"top_batsman_strike_rate"`
	TopBowler        string  `json:"top_bowler"`
	TopBowlerWickets int     `json:"top_bowler_wickets"`
	TopBowlerEconomy float64 `json:"top_bowler_economy"`
}
