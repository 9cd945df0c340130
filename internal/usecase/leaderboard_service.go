package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/cricket-stats/internal/domain/aggregate"
	"github.com/riskibarqy/cricket-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/cricket-stats/internal/domain/silver"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

const (
	StageTopBatsmen = "top_batsmen"
	StageTopBowlers = "top_bowlers"
)

// LeaderboardService rebuilds the top batsmen and top bowlers tables.
type LeaderboardService struct {
	silverRepo      silver.Repository
	leaderboardRepo leaderboard.Repository
	size            int
	logger          *logging.Logger
}

func NewLeaderboardService(
	silverRepo silver.Repository,
	leaderboardRepo leaderboard.Repository,
	size int,
	logger *logging.Logger,
) *LeaderboardService {
	if size <= 0 {
		size = leaderboard.DefaultSize
	}
	return &LeaderboardService{
		silverRepo:      silverRepo,
		leaderboardRepo: leaderboardRepo,
		size:            size,
		logger:          loggerOrDefault(logger).Named("pipeline.leaderboard"),
	}
}

// Rebuild runs both boards. A failed board does not stop the other one; the
// first error is returned.
func (s *LeaderboardService) Rebuild(ctx context.Context) ([]StatRunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Rebuild")
	defer span.End()

	batsmen, batErr := s.rebuildBatsmen(ctx)
	bowlers, bowlErr := s.rebuildBowlers(ctx)
	out := []StatRunSummary{batsmen, bowlers}
	if batErr != nil {
		return out, batErr
	}
	return out, bowlErr
}

func (s *LeaderboardService) rebuildBatsmen(ctx context.Context) (StatRunSummary, error) {
	run := beginStat(StageTopBatsmen)
	err := func() error {
		rows, err := s.silverRepo.ListBatting(ctx)
		if err != nil {
			return fmt.Errorf("list silver batting: %w", err)
		}
		board := aggregate.TopBatsmen(rows, s.size)
		if err := s.leaderboardRepo.ReplaceBatsmen(ctx, board); err != nil {
			return fmt.Errorf("replace top batsmen: %w", err)
		}
		run.processed(len(board))
		return nil
	}()
	summary := run.finish(err)
	logStatSummary(ctx, s.logger, summary)
	return summary, err
}

func (s *LeaderboardService) rebuildBowlers(ctx context.Context) (StatRunSummary, error) {
	run := beginStat(StageTopBowlers)
	err := func() error {
		rows, err := s.silverRepo.ListBowling(ctx)
		if err != nil {
			return fmt.Errorf("list silver bowling: %w", err)
		}
		board := aggregate.TopBowlers(rows, s.size)
		if err := s.leaderboardRepo.ReplaceBowlers(ctx, board); err != nil {
			return fmt.Errorf("replace top bowlers: %w", err)
		}
		run.processed(len(board))
		return nil
	}()
	summary := run.finish(err)
	logStatSummary(ctx, s.logger, summary)
	return summary, err
}
