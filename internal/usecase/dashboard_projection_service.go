package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/cricket-stats/internal/domain/aggregate"
	"github.com/riskibarqy/cricket-stats/internal/domain/dashboard"
	"github.com/riskibarqy/cricket-stats/internal/domain/dismissal"
	"github.com/riskibarqy/cricket-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/cricket-stats/internal/domain/matchfact"
	"github.com/riskibarqy/cricket-stats/internal/domain/silver"
	"github.com/riskibarqy/cricket-stats/internal/domain/standing"
	"github.com/riskibarqy/cricket-stats/internal/domain/stats"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

const (
	StageDashboardProjections = "dashboard_projections"

	cleanBowledProjectionSize   = 20
	effectivenessMinWickets     = 5
	projectionRowLimit          = 1000
	pointsTableNetRunRatePlaces = 3
)

type pointsTableRow struct {
	Position   int     `json:"position"`
	Team       string  `json:"team"`
	Played     int     `json:"pld"`
	Won        int     `json:"won"`
	Lost       int     `json:"lost"`
	NoResult   int     `json:"nr"`
	Points     int     `json:"pts"`
	NetRunRate float64 `json:"nrr"`
}

type orangeCapRow struct {
	Position   int      `json:"position"`
	PlayerName string   `json:"player_name"`
	Team       string   `json:"team"`
	Runs       int      `json:"total_runs"`
	Matches    int      `json:"matches_played"`
	Innings    int      `json:"innings_played"`
	Highest    int      `json:"highest_score"`
	Average    *float64 `json:"average_runs"`
	StrikeRate float64  `json:"strike_rate"`
	Hundreds   int      `json:"centuries"`
	Fifties    int      `json:"half_centuries"`
	Fours      int      `json:"fours"`
	Sixes      int      `json:"sixes"`
}

type purpleCapRow struct {
	Position     int      `json:"position"`
	PlayerName   string   `json:"player_name"`
	Team         string   `json:"team"`
	Wickets      int      `json:"total_wickets"`
	Matches      int      `json:"matches_played"`
	Innings      int      `json:"innings_bowled"`
	Overs        float64  `json:"overs_bowled"`
	RunsConceded int      `json:"runs_conceded"`
	BestFigures  string   `json:"best_bowling_fig"`
	Average      *float64 `json:"bowling_average"`
	Economy      float64  `json:"economy"`
	FourWickets  int      `json:"four_wickets"`
	FiveWickets  int      `json:"five_wickets"`
}

type catchRow struct {
	FielderName string `json:"fielder_name"`
	Team        string `json:"team_name"`
	Catches     int    `json:"total_catches_taken"`
}

type powerplayRow struct {
	Team         string  `json:"team_name"`
	InningsCount int     `json:"total_powerplay_innings"`
	TotalRuns    int     `json:"total_powerplay_runs"`
	AverageRuns  float64 `json:"average_powerplay_score"`
}

type boundaryRatioRow struct {
	PlayerID   int64   `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Team       string  `json:"team_name"`
	TotalRuns  int     `json:"total_runs"`
	Ratio      float64 `json:"boundary_dominance_ratio"`
}

type cleanBowledRow struct {
	BowlerName string  `json:"bowler_name"`
	Team       string  `json:"team_name"`
	Wickets    int     `json:"total_clean_bowled_wickets"`
	Economy    float64 `json:"economy"`
}

type wicketDistributionRow struct {
	Team    string `json:"team"`
	Kind    string `json:"kind"`
	Wickets int    `json:"wickets"`
}

type effectivenessRow struct {
	PlayerName string  `json:"player_name"`
	Team       string  `json:"team_name"`
	Wickets    int     `json:"total_wickets"`
	Ratio      float64 `json:"effectiveness_ratio"`
}

// DashboardProjectionService renders the gold tables into chart-ready JSON
// datasets and swaps them in one transaction.
type DashboardProjectionService struct {
	leaderboardRepo leaderboard.Repository
	standingRepo    standing.Repository
	statsRepo       stats.Repository
	silverRepo      silver.Repository
	dashboardRepo   dashboard.Repository
	parser          *dismissal.Parser
	now             func() time.Time
	logger          *logging.Logger
}

func NewDashboardProjectionService(
	leaderboardRepo leaderboard.Repository,
	standingRepo standing.Repository,
	statsRepo stats.Repository,
	silverRepo silver.Repository,
	dashboardRepo dashboard.Repository,
	logger *logging.Logger,
) *DashboardProjectionService {
	return &DashboardProjectionService{
		leaderboardRepo: leaderboardRepo,
		standingRepo:    standingRepo,
		statsRepo:       statsRepo,
		silverRepo:      silverRepo,
		dashboardRepo:   dashboardRepo,
		parser:          dismissal.NewParser(),
		now:             time.Now,
		logger:          loggerOrDefault(logger).Named("pipeline.dashboard"),
	}
}

func (s *DashboardProjectionService) Refresh(ctx context.Context) (StatRunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardProjectionService.Refresh")
	defer span.End()

	run := beginStat(StageDashboardProjections)
	err := s.refresh(ctx, run)
	summary := run.finish(err)
	logStatSummary(ctx, s.logger, summary)
	return summary, err
}

type projectionBuilder struct {
	name  string
	build func(ctx context.Context) (any, int, error)
}

func (s *DashboardProjectionService) builders() []projectionBuilder {
	return []projectionBuilder{
		{name: dashboard.PurpleCap, build: s.purpleCap},
		{name: dashboard.OrangeCap, build: s.orangeCap},
		{name: dashboard.PointsTable, build: s.pointsTable},
		{name: dashboard.LatestInnings, build: s.latestInnings},
		{name: dashboard.Catches, build: s.catches},
		{name: dashboard.Powerplay, build: s.powerplay},
		{name: dashboard.BoundaryRatio, build: s.boundaryRatio},
		{name: dashboard.CleanBowled, build: s.cleanBowled},
		{name: dashboard.WicketDistribution, build: s.wicketDistribution},
		{name: dashboard.BowlerEffectiveness, build: s.bowlerEffectiveness},
	}
}

func (s *DashboardProjectionService) refresh(ctx context.Context, run *statRun) error {
	refreshedAt := s.now().UTC()
	builders := s.builders()
	items := make([]dashboard.Projection, 0, len(builders))
	for _, b := range builders {
		rows, count, err := b.build(ctx)
		if err != nil {
			return fmt.Errorf("build projection %s: %w", b.name, err)
		}
		payload, err := sonic.Marshal(rows)
		if err != nil {
			return fmt.Errorf("encode projection %s: %w", b.name, err)
		}
		items = append(items, dashboard.Projection{
			Name:        b.name,
			Payload:     payload,
			RowCount:    count,
			RefreshedAt: refreshedAt,
		})
		s.logger.DebugContext(ctx, "projection built", "projection", b.name, "rows", count)
	}

	if err := s.dashboardRepo.ReplaceAll(ctx, items); err != nil {
		return fmt.Errorf("replace dashboard projections: %w", err)
	}
	run.processed(len(items))
	return nil
}

func (s *DashboardProjectionService) purpleCap(ctx context.Context) (any, int, error) {
	items, err := s.leaderboardRepo.ListBowlers(ctx, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("list top bowlers: %w", err)
	}
	rows := make([]purpleCapRow, 0, len(items))
	for _, b := range items {
		rows = append(rows, purpleCapRow{
			Position:     b.Rank,
			PlayerName:   b.PlayerName,
			Team:         b.Team,
			Wickets:      b.Wickets,
			Matches:      b.Matches,
			Innings:      b.Innings,
			Overs:        b.Overs,
			RunsConceded: b.RunsConceded,
			BestFigures:  b.BestFigures,
			Average:      b.Average,
			Economy:      b.Economy,
			FourWickets:  b.FourWickets,
			FiveWickets:  b.FiveWickets,
		})
	}
	return rows, len(rows), nil
}

func (s *DashboardProjectionService) orangeCap(ctx context.Context) (any, int, error) {
	items, err := s.leaderboardRepo.ListBatsmen(ctx, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("list top batsmen: %w", err)
	}
	rows := make([]orangeCapRow, 0, len(items))
	for _, b := range items {
		rows = append(rows, orangeCapRow{
			Position:   b.Rank,
			PlayerName: b.PlayerName,
			Team:       b.Team,
			Runs:       b.Runs,
			Matches:    b.Matches,
			Innings:    b.Innings,
			Highest:    b.Highest,
			Average:    b.Average,
			StrikeRate: b.StrikeRate,
			Hundreds:   b.Hundreds,
			Fifties:    b.Fifties,
			Fours:      b.Fours,
			Sixes:      b.Sixes,
		})
	}
	return rows, len(rows), nil
}

func (s *DashboardProjectionService) pointsTable(ctx context.Context) (any, int, error) {
	items, err := s.standingRepo.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list team standings: %w", err)
	}
	rows := make([]pointsTableRow, 0, len(items))
	for _, t := range items {
		rows = append(rows, pointsTableRow{
			Position:   t.Position,
			Team:       t.Team,
			Played:     t.Matches,
			Won:        t.Won,
			Lost:       t.Lost,
			NoResult:   t.NoResult,
			Points:     t.Points,
			NetRunRate: matchfact.Round(t.NetRunRate, pointsTableNetRunRatePlaces),
		})
	}
	return rows, len(rows), nil
}

// latestInnings renders one card per side of the most recent match. Each
// card pairs a side's top batter with the best bowler against it.
func (s *DashboardProjectionService) latestInnings(ctx context.Context) (any, int, error) {
	latest, ok, err := s.statsRepo.GetLatestMatch(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("get latest match: %w", err)
	}
	if !ok {
		return []dashboard.InningsCard{}, 0, nil
	}
	cards := []dashboard.InningsCard{
		inningsCard(1, latest.Team1, latest.Team1Score, latest.Team1Top),
		inningsCard(2, latest.Team2, latest.Team2Score, latest.Team2Top),
	}
	return cards, len(cards), nil
}

func inningsCard(innings int, teamName, score string, top stats.TopPerformers) dashboard.InningsCard {
	return dashboard.InningsCard{
		Innings:          innings,
		Team:             teamName,
		Score:            score,
		TopBatsman:       top.BatsmanName,
		TopBatsmanRuns:   top.BatsmanRuns,
		TopBatsmanSR:     top.BatsmanStrikeRate,
		TopBowler:        top.BowlerName,
		TopBowlerWickets: top.BowlerWickets,
		TopBowlerEconomy: top.BowlerEconomy,
	}
}

func (s *DashboardProjectionService) catches(ctx context.Context) (any, int, error) {
	items, err := s.statsRepo.ListFielderCatches(ctx, projectionRowLimit)
	if err != nil {
		return nil, 0, fmt.Errorf("list fielder catches: %w", err)
	}
	rows := make([]catchRow, 0, len(items))
	for _, c := range items {
		rows = append(rows, catchRow{FielderName: c.FielderName, Team: c.Team, Catches: c.Catches})
	}
	return rows, len(rows), nil
}

func (s *DashboardProjectionService) powerplay(ctx context.Context) (any, int, error) {
	items, err := s.statsRepo.ListPowerplay(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list powerplay stats: %w", err)
	}
	rows := make([]powerplayRow, 0, len(items))
	for _, p := range items {
		rows = append(rows, powerplayRow{
			Team:         p.Team,
			InningsCount: p.InningsCount,
			TotalRuns:    p.TotalRuns,
			AverageRuns:  p.AverageRuns,
		})
	}
	return rows, len(rows), nil
}

func (s *DashboardProjectionService) boundaryRatio(ctx context.Context) (any, int, error) {
	items, err := s.statsRepo.ListBattingMetrics(ctx, projectionRowLimit)
	if err != nil {
		return nil, 0, fmt.Errorf("list batting metrics: %w", err)
	}
	rows := make([]boundaryRatioRow, 0, len(items))
	for _, m := range items {
		rows = append(rows, boundaryRatioRow{
			PlayerID:   m.PlayerID,
			PlayerName: m.PlayerName,
			Team:       m.Team,
			TotalRuns:  m.TotalRuns,
			Ratio:      m.BoundaryDominanceRatio,
		})
	}
	return rows, len(rows), nil
}

func (s *DashboardProjectionService) cleanBowled(ctx context.Context) (any, int, error) {
	items, err := s.statsRepo.ListCleanBowled(ctx, cleanBowledProjectionSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list clean bowled stats: %w", err)
	}
	rows := make([]cleanBowledRow, 0, len(items))
	for _, c := range items {
		rows = append(rows, cleanBowledRow{
			BowlerName: c.BowlerName,
			Team:       c.Team,
			Wickets:    c.CleanBowledWickets,
			Economy:    c.Economy,
		})
	}
	return rows, len(rows), nil
}

func (s *DashboardProjectionService) wicketDistribution(ctx context.Context) (any, int, error) {
	summaries, err := s.silverRepo.ListSummaries(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list silver summaries: %w", err)
	}
	batting, err := s.silverRepo.ListBatting(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list silver batting: %w", err)
	}
	shares := aggregate.WicketDistribution(summaries, batting, s.parser)
	rows := make([]wicketDistributionRow, 0, len(shares))
	for _, share := range shares {
		rows = append(rows, wicketDistributionRow{Team: share.Team, Kind: string(share.Kind), Wickets: share.Count})
	}
	return rows, len(rows), nil
}

func (s *DashboardProjectionService) bowlerEffectiveness(ctx context.Context) (any, int, error) {
	items, err := s.statsRepo.ListBowlingMetrics(ctx, projectionRowLimit)
	if err != nil {
		return nil, 0, fmt.Errorf("list bowling metrics: %w", err)
	}
	rows := make([]effectivenessRow, 0, len(items))
	for _, m := range items {
		if m.Wickets < effectivenessMinWickets {
			continue
		}
		rows = append(rows, effectivenessRow{
			PlayerName: m.PlayerName,
			Team:       m.Team,
			Wickets:    m.Wickets,
			Ratio:      m.EffectivenessRatio,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Ratio > rows[j].Ratio
	})
	return rows, len(rows), nil
}
