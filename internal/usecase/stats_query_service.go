package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/cricket-stats/internal/domain/aggregate"
	"github.com/riskibarqy/cricket-stats/internal/domain/dashboard"
	"github.com/riskibarqy/cricket-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/cricket-stats/internal/domain/standing"
	"github.com/riskibarqy/cricket-stats/internal/domain/stats"
	"github.com/riskibarqy/cricket-stats/internal/domain/team"
	"github.com/riskibarqy/cricket-stats/internal/platform/cache"
)

const (
	cacheNamespaceStandings   = "standings"
	cacheNamespaceLeaderboard = "leaderboard"
	cacheNamespaceStats       = "stats"
	cacheNamespaceDashboard   = "dashboard"

	maxQueryLimit = 500
)

// StatsQueryService serves the gold tables to readers through a TTL cache
// that the pipeline purges after every run.
type StatsQueryService struct {
	standingRepo    standing.Repository
	leaderboardRepo leaderboard.Repository
	statsRepo       stats.Repository
	dashboardRepo   dashboard.Repository
	normalizer      *team.Normalizer
	cache           *cache.Store
}

func NewStatsQueryService(
	standingRepo standing.Repository,
	leaderboardRepo leaderboard.Repository,
	statsRepo stats.Repository,
	dashboardRepo dashboard.Repository,
	normalizer *team.Normalizer,
	readCache *cache.Store,
) *StatsQueryService {
	if normalizer == nil {
		normalizer = team.NewDefaultNormalizer()
	}
	return &StatsQueryService{
		standingRepo:    standingRepo,
		leaderboardRepo: leaderboardRepo,
		statsRepo:       statsRepo,
		dashboardRepo:   dashboardRepo,
		normalizer:      normalizer,
		cache:           readCache,
	}
}

func (s *StatsQueryService) ListStandings(ctx context.Context) ([]standing.TeamStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsQueryService.ListStandings")
	defer span.End()

	items, err := cache.Load(ctx, s.cache, cache.Key(cacheNamespaceStandings), s.standingRepo.List)
	if err != nil {
		return nil, fmt.Errorf("list team standings: %w", err)
	}
	return items, nil
}

func (s *StatsQueryService) ListTopBatsmen(ctx context.Context, limit int) ([]leaderboard.Batsman, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsQueryService.ListTopBatsmen")
	defer span.End()

	limit, err := normalizeQueryLimit(limit, leaderboard.DefaultSize)
	if err != nil {
		return nil, err
	}
	items, err := cache.Load(ctx, s.cache, cache.Key(cacheNamespaceLeaderboard, "batsmen", limit),
		func(ctx context.Context) ([]leaderboard.Batsman, error) {
			return s.leaderboardRepo.ListBatsmen(ctx, limit)
		})
	if err != nil {
		return nil, fmt.Errorf("list top batsmen: %w", err)
	}
	return items, nil
}

func (s *StatsQueryService) ListTopBowlers(ctx context.Context, limit int) ([]leaderboard.Bowler, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsQueryService.ListTopBowlers")
	defer span.End()

	limit, err := normalizeQueryLimit(limit, leaderboard.DefaultSize)
	if err != nil {
		return nil, err
	}
	items, err := cache.Load(ctx, s.cache, cache.Key(cacheNamespaceLeaderboard, "bowlers", limit),
		func(ctx context.Context) ([]leaderboard.Bowler, error) {
			return s.leaderboardRepo.ListBowlers(ctx, limit)
		})
	if err != nil {
		return nil, fmt.Errorf("list top bowlers: %w", err)
	}
	return items, nil
}

func (s *StatsQueryService) ListCleanBowled(ctx context.Context, limit int) ([]stats.CleanBowledStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsQueryService.ListCleanBowled")
	defer span.End()

	return listStat(ctx, s, StatCleanBowled, limit, s.statsRepo.ListCleanBowled)
}

func (s *StatsQueryService) ListPowerplay(ctx context.Context) ([]stats.PowerplayStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsQueryService.ListPowerplay")
	defer span.End()

	items, err := cache.Load(ctx, s.cache, cache.Key(cacheNamespaceStats, StatPowerplay), s.statsRepo.ListPowerplay)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", StatPowerplay, err)
	}
	return items, nil
}

func (s *StatsQueryService) ListBattingMetrics(ctx context.Context, limit int) ([]stats.BattingMetric, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsQueryService.ListBattingMetrics")
	defer span.End()

	return listStat(ctx, s, StatBoundaryDominance, limit, s.statsRepo.ListBattingMetrics)
}

func (s *StatsQueryService) ListBowlingMetrics(ctx context.Context, limit int) ([]stats.BowlingMetric, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsQueryService.ListBowlingMetrics")
	defer span.End()

	return listStat(ctx, s, StatBowlerEffectiveness, limit, s.statsRepo.ListBowlingMetrics)
}

func (s *StatsQueryService) ListFielderCatches(ctx context.Context, limit int) ([]stats.FielderCatchStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsQueryService.ListFielderCatches")
	defer span.End()

	return listStat(ctx, s, StatFielderCatches, limit, s.statsRepo.ListFielderCatches)
}

func (s *StatsQueryService) ListDroppedCatches(ctx context.Context, limit int) ([]stats.DroppedCatchStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsQueryService.ListDroppedCatches")
	defer span.End()

	return listStat(ctx, s, StatDroppedCatches, limit, s.statsRepo.ListDroppedCatches)
}

// HeadToHead accepts team names in any spelling the normalizer understands,
// in either order. The returned row is keyed by the sorted pair.
func (s *StatsQueryService) HeadToHead(ctx context.Context, teamA, teamB string) (stats.HeadToHead, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsQueryService.HeadToHead")
	defer span.End()

	a, b := s.normalizer.Normalize(teamA), s.normalizer.Normalize(teamB)
	if !team.IsKnown(a) || !team.IsKnown(b) {
		return stats.HeadToHead{}, fmt.Errorf("%w: unrecognized team in %q vs %q", ErrInvalidInput, teamA, teamB)
	}
	if a == b {
		return stats.HeadToHead{}, fmt.Errorf("%w: teams must differ", ErrInvalidInput)
	}

	t1, t2 := aggregate.PairKey(a, b)
	type lookup struct {
		row   stats.HeadToHead
		found bool
	}
	got, err := cache.Load(ctx, s.cache, cache.Key(cacheNamespaceStats, StatHeadToHead, t1, t2),
		func(ctx context.Context) (lookup, error) {
			row, found, err := s.statsRepo.GetHeadToHead(ctx, t1, t2)
			return lookup{row: row, found: found}, err
		})
	if err != nil {
		return stats.HeadToHead{}, fmt.Errorf("get head to head: %w", err)
	}
	if !got.found {
		return stats.HeadToHead{}, fmt.Errorf("%w: head to head %s vs %s", ErrNotFound, t1, t2)
	}
	return got.row, nil
}

func (s *StatsQueryService) LatestMatch(ctx context.Context) (stats.LatestMatchSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsQueryService.LatestMatch")
	defer span.End()

	row, found, err := s.statsRepo.GetLatestMatch(ctx)
	if err != nil {
		return stats.LatestMatchSummary{}, fmt.Errorf("get latest match: %w", err)
	}
	if !found {
		return stats.LatestMatchSummary{}, fmt.Errorf("%w: no match summarized yet", ErrNotFound)
	}
	return row, nil
}

func (s *StatsQueryService) Projection(ctx context.Context, name string) (dashboard.Projection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsQueryService.Projection")
	defer span.End()

	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return dashboard.Projection{}, fmt.Errorf("%w: projection name is required", ErrInvalidInput)
	}
	type lookup struct {
		item  dashboard.Projection
		found bool
	}
	got, err := cache.Load(ctx, s.cache, cache.Key(cacheNamespaceDashboard, name),
		func(ctx context.Context) (lookup, error) {
			item, found, err := s.dashboardRepo.Get(ctx, name)
			return lookup{item: item, found: found}, err
		})
	if err != nil {
		return dashboard.Projection{}, fmt.Errorf("get projection: %w", err)
	}
	if !got.found {
		return dashboard.Projection{}, fmt.Errorf("%w: projection=%s", ErrNotFound, name)
	}
	return got.item, nil
}

// NormalizeTeam maps any spelling to a canonical franchise name or "Unknown".
func (s *StatsQueryService) NormalizeTeam(raw string) string {
	return s.normalizer.Normalize(raw)
}

// CacheStats exposes read cache counters for the health endpoint.
func (s *StatsQueryService) CacheStats() cache.Stats {
	return s.cache.Stats()
}

func listStat[T any](
	ctx context.Context,
	s *StatsQueryService,
	name string,
	limit int,
	list func(context.Context, int) ([]T, error),
) ([]T, error) {
	limit, err := normalizeQueryLimit(limit, leaderboard.DefaultSize)
	if err != nil {
		return nil, err
	}
	items, err := cache.Load(ctx, s.cache, cache.Key(cacheNamespaceStats, name, limit),
		func(ctx context.Context) ([]T, error) {
			return list(ctx, limit)
		})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", name, err)
	}
	return items, nil
}

func normalizeQueryLimit(limit, fallback int) (int, error) {
	switch {
	case limit < 0:
		return 0, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	case limit == 0:
		return fallback, nil
	case limit > maxQueryLimit:
		return maxQueryLimit, nil
	default:
		return limit, nil
	}
}
