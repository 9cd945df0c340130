package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/cricket-stats/internal/domain/matchfact"
	"github.com/riskibarqy/cricket-stats/internal/domain/persistence"
	"github.com/riskibarqy/cricket-stats/internal/domain/rawmatch"
	"github.com/riskibarqy/cricket-stats/internal/domain/silver"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

const StageSilver = "silver_transform"

// SilverTransformService rebuilds the silver tables from every raw scorecard.
type SilverTransformService struct {
	silverRepo silver.Repository
	stream     factStream
	logger     *logging.Logger
}

func NewSilverTransformService(
	rawRepo rawmatch.Repository,
	silverRepo silver.Repository,
	extractor *matchfact.Extractor,
	logger *logging.Logger,
) *SilverTransformService {
	if extractor == nil {
		extractor = matchfact.NewExtractor(nil, nil)
	}
	logger = loggerOrDefault(logger).Named("pipeline.silver")
	return &SilverTransformService{
		silverRepo: silverRepo,
		stream:     factStream{raw: rawRepo, extractor: extractor, logger: logger},
		logger:     logger,
	}
}

// Transform truncates silver and re-inserts one summary plus its batting and
// bowling rows per match. A failed match is rolled back on its own.
func (s *SilverTransformService) Transform(ctx context.Context) (StatRunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SilverTransformService.Transform")
	defer span.End()

	run := beginStat(StageSilver)
	err := s.transform(ctx, run)
	summary := run.finish(err)
	logStatSummary(ctx, s.logger, summary)
	return summary, err
}

func (s *SilverTransformService) transform(ctx context.Context, run *statRun) error {
	if err := s.silverRepo.Truncate(ctx); err != nil {
		return fmt.Errorf("truncate silver tables: %w", err)
	}

	err := s.stream.each(ctx, run, StageSilver, func(facts matchfact.Facts) error {
		summary, batting, bowling := silver.Build(facts)
		if err := s.silverRepo.InsertMatch(ctx, summary, batting, bowling); err != nil {
			if persistence.IsUnavailable(err) {
				return err
			}
			run.failed(1)
			s.logger.ErrorContext(ctx, "insert silver match failed",
				"match_id", summary.MatchID,
				"reason", reasonDBError,
				"error", err,
			)
			return nil
		}
		run.processed(1)
		s.logger.DebugContext(ctx, "silver match stored",
			"match_id", summary.MatchID,
			"batting_rows", len(batting),
			"bowling_rows", len(bowling),
		)
		return nil
	})
	if err != nil {
		return fmt.Errorf("stream raw scorecards: %w", err)
	}
	return nil
}
