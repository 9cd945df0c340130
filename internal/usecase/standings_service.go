package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/cricket-stats/internal/domain/aggregate"
	"github.com/riskibarqy/cricket-stats/internal/domain/matchfact"
	"github.com/riskibarqy/cricket-stats/internal/domain/rawmatch"
	"github.com/riskibarqy/cricket-stats/internal/domain/silver"
	"github.com/riskibarqy/cricket-stats/internal/domain/standing"
	"github.com/riskibarqy/cricket-stats/internal/domain/team"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

const StageStandings = "team_standings"

// StandingsService rebuilds the points table from silver rows. Innings extras
// are not kept in silver, so they are read back from the raw scorecards.
type StandingsService struct {
	silverRepo   silver.Repository
	standingRepo standing.Repository
	normalizer   *team.Normalizer
	stream       factStream
	logger       *logging.Logger
}

func NewStandingsService(
	rawRepo rawmatch.Repository,
	silverRepo silver.Repository,
	standingRepo standing.Repository,
	extractor *matchfact.Extractor,
	logger *logging.Logger,
) *StandingsService {
	if extractor == nil {
		extractor = matchfact.NewExtractor(nil, nil)
	}
	logger = loggerOrDefault(logger).Named("pipeline.standings")
	return &StandingsService{
		silverRepo:   silverRepo,
		standingRepo: standingRepo,
		normalizer:   extractor.Resolver().Normalizer(),
		stream:       factStream{raw: rawRepo, extractor: extractor, logger: logger},
		logger:       logger,
	}
}

func (s *StandingsService) Rebuild(ctx context.Context) (StatRunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Rebuild")
	defer span.End()

	run := beginStat(StageStandings)
	err := s.rebuild(ctx, run)
	summary := run.finish(err)
	logStatSummary(ctx, s.logger, summary)
	return summary, err
}

func (s *StandingsService) rebuild(ctx context.Context, run *statRun) error {
	summaries, err := s.silverRepo.ListSummaries(ctx)
	if err != nil {
		return fmt.Errorf("list silver summaries: %w", err)
	}
	batting, err := s.silverRepo.ListBatting(ctx)
	if err != nil {
		return fmt.Errorf("list silver batting: %w", err)
	}

	extras := make(map[string]map[string]int, len(summaries))
	err = s.stream.each(ctx, run, StageStandings, func(facts matchfact.Facts) error {
		extras[facts.Metadata.MatchID] = silver.ExtrasByTeam(facts)
		return nil
	})
	if err != nil {
		return fmt.Errorf("collect innings extras: %w", err)
	}

	rows, skips := aggregate.Standings(aggregate.StandingsInput{
		Summaries: summaries,
		Batting:   batting,
		Extras:    extras,
	}, s.normalizer)
	logSkips(ctx, s.logger, StageStandings, skips)
	run.skipped(len(skips))

	if err := s.standingRepo.ReplaceAll(ctx, rows); err != nil {
		return fmt.Errorf("replace team standings: %w", err)
	}
	run.processed(len(rows))
	return nil
}
