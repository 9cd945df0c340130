package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/riskibarqy/cricket-stats/internal/domain/aggregate"
	"github.com/riskibarqy/cricket-stats/internal/domain/matchfact"
	"github.com/riskibarqy/cricket-stats/internal/domain/persistence"
	"github.com/riskibarqy/cricket-stats/internal/domain/rawmatch"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/domain/silver"
	"github.com/riskibarqy/cricket-stats/internal/domain/stats"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

const (
	StatCleanBowled         = "clean_bowled"
	StatPowerplay           = "powerplay"
	StatBoundaryDominance   = "boundary_dominance"
	StatBowlerEffectiveness = "bowler_effectiveness"
	StatHeadToHead          = "head_to_head"
	StatFielderCatches      = "fielder_catches"
	StatDroppedCatches      = "dropped_catches"
	StatLatestMatch         = "latest_match_summary"
)

// CustomStatsService truncates the custom gold tables and recomputes them.
type CustomStatsService struct {
	raw        rawmatch.Repository
	silverRepo silver.Repository
	statsRepo  stats.Repository
	extractor  *matchfact.Extractor
	stream     factStream
	logger     *logging.Logger
}

func NewCustomStatsService(
	rawRepo rawmatch.Repository,
	silverRepo silver.Repository,
	statsRepo stats.Repository,
	extractor *matchfact.Extractor,
	logger *logging.Logger,
) *CustomStatsService {
	if extractor == nil {
		extractor = matchfact.NewExtractor(nil, nil)
	}
	logger = loggerOrDefault(logger).Named("pipeline.custom_stats")
	return &CustomStatsService{
		raw:        rawRepo,
		silverRepo: silverRepo,
		statsRepo:  statsRepo,
		extractor:  extractor,
		stream:     factStream{raw: rawRepo, extractor: extractor, logger: logger},
		logger:     logger,
	}
}

type customStatStep struct {
	name string
	run  func(ctx context.Context, run *statRun) error
}

func (s *CustomStatsService) steps() []customStatStep {
	return []customStatStep{
		{name: StatCleanBowled, run: s.cleanBowled},
		{name: StatPowerplay, run: s.powerplay},
		{name: StatBoundaryDominance, run: s.boundaryDominance},
		{name: StatBowlerEffectiveness, run: s.bowlerEffectiveness},
		{name: StatHeadToHead, run: s.headToHead},
		{name: StatFielderCatches, run: s.fielderCatches},
		{name: StatDroppedCatches, run: s.droppedCatches},
		{name: StatLatestMatch, run: s.latestMatch},
	}
}

// RunAll recomputes every custom statistic in a fixed order. A failing step
// is logged and the next one still runs; a lost connection stops the run.
func (s *CustomStatsService) RunAll(ctx context.Context) ([]StatRunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CustomStatsService.RunAll")
	defer span.End()

	if err := s.statsRepo.TruncateAll(ctx); err != nil {
		return nil, fmt.Errorf("truncate custom gold tables: %w", err)
	}

	steps := s.steps()
	out := make([]StatRunSummary, 0, len(steps))
	var firstErr error
	for _, step := range steps {
		run := beginStat(step.name)
		err := step.run(ctx, run)
		summary := run.finish(err)
		logStatSummary(ctx, s.logger, summary)
		out = append(out, summary)

		if err == nil {
			continue
		}
		if firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", step.name, err)
		}
		if persistence.IsUnavailable(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			s.logger.ErrorContext(ctx, "custom stats aborted", "stat", step.name, "error", err)
			return out, firstErr
		}
	}
	return out, firstErr
}

func (s *CustomStatsService) cleanBowled(ctx context.Context, run *statRun) error {
	fold := aggregate.NewCleanBowled()
	err := s.stream.each(ctx, run, StatCleanBowled, func(facts matchfact.Facts) error {
		if !fold.Add(facts) {
			run.skipped(1)
			s.logger.WarnContext(ctx, "match skipped", "stat", StatCleanBowled, "match_id", facts.Metadata.MatchID, "reason", aggregate.ReasonUnknownTeam)
		}
		return nil
	})
	if err != nil {
		return err
	}
	rows, skips := fold.Results()
	s.recordSkips(ctx, run, StatCleanBowled, skips)
	return upsertRows(ctx, s, run, StatCleanBowled, rows, func(r stats.CleanBowledStat) string {
		return strconv.FormatInt(r.BowlerID, 10) + "/" + r.Team
	}, s.statsRepo.UpsertCleanBowled)
}

func (s *CustomStatsService) powerplay(ctx context.Context, run *statRun) error {
	fold := aggregate.NewPowerplay()
	err := s.stream.each(ctx, run, StatPowerplay, func(facts matchfact.Facts) error {
		if fold.Add(facts) == 0 {
			run.skipped(1)
			s.logger.DebugContext(ctx, "no powerplay segment", "match_id", facts.Metadata.MatchID)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return upsertRows(ctx, s, run, StatPowerplay, fold.Results(), func(r stats.PowerplayStat) string {
		return r.Team
	}, s.statsRepo.UpsertPowerplay)
}

func (s *CustomStatsService) boundaryDominance(ctx context.Context, run *statRun) error {
	batting, err := s.silverRepo.ListBatting(ctx)
	if err != nil {
		return fmt.Errorf("list silver batting: %w", err)
	}
	rows, skips := aggregate.BattingMetrics(batting)
	s.recordSkips(ctx, run, StatBoundaryDominance, skips)
	return upsertRows(ctx, s, run, StatBoundaryDominance, rows, func(r stats.BattingMetric) string {
		return strconv.FormatInt(r.PlayerID, 10) + "/" + r.Team
	}, s.statsRepo.UpsertBattingMetric)
}

func (s *CustomStatsService) bowlerEffectiveness(ctx context.Context, run *statRun) error {
	bowling, err := s.silverRepo.ListBowling(ctx)
	if err != nil {
		return fmt.Errorf("list silver bowling: %w", err)
	}
	rows, skips := aggregate.BowlingMetrics(bowling)
	s.recordSkips(ctx, run, StatBowlerEffectiveness, skips)
	return upsertRows(ctx, s, run, StatBowlerEffectiveness, rows, func(r stats.BowlingMetric) string {
		return strconv.FormatInt(r.PlayerID, 10) + "/" + r.Team
	}, s.statsRepo.UpsertBowlingMetric)
}

func (s *CustomStatsService) headToHead(ctx context.Context, run *statRun) error {
	fold := aggregate.NewHeadToHead()
	err := s.stream.each(ctx, run, StatHeadToHead, func(facts matchfact.Facts) error {
		fold.Add(facts.Metadata)
		return nil
	})
	if err != nil {
		return err
	}
	rows, skips := fold.Results()
	s.recordSkips(ctx, run, StatHeadToHead, skips)
	return upsertRows(ctx, s, run, StatHeadToHead, rows, func(r stats.HeadToHead) string {
		return r.Team1 + "/" + r.Team2
	}, s.statsRepo.UpsertHeadToHead)
}

func (s *CustomStatsService) fielderCatches(ctx context.Context, run *statRun) error {
	fold := aggregate.NewFielderCatches()
	err := s.stream.each(ctx, run, StatFielderCatches, func(facts matchfact.Facts) error {
		fold.Add(facts)
		return nil
	})
	if err != nil {
		return err
	}
	rows, skips := fold.Results()
	s.recordSkips(ctx, run, StatFielderCatches, skips)
	return upsertRows(ctx, s, run, StatFielderCatches, rows, func(r stats.FielderCatchStat) string {
		return strconv.FormatInt(r.FielderID, 10) + "/" + r.Team
	}, s.statsRepo.UpsertFielderCatch)
}

// droppedCatches pairs each commentary with its scorecard's player map. The
// text heuristic never fails the step; unreadable documents are skipped.
func (s *CustomStatsService) droppedCatches(ctx context.Context, run *statRun) error {
	fold := aggregate.NewDroppedCatches()
	err := s.raw.ForEachCommentary(ctx, func(doc rawmatch.Commentary) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		card, err := s.raw.GetScorecard(ctx, doc.MatchID)
		if err != nil {
			if errors.Is(err, rawmatch.ErrNotFound) {
				run.skipped(1)
				s.logger.WarnContext(ctx, "commentary without scorecard", "stat", StatDroppedCatches, "match_id", doc.MatchID)
				return nil
			}
			return fmt.Errorf("get scorecard match=%s: %w", doc.MatchID, err)
		}
		facts, err := s.extractor.ExtractPayload(card.MatchID, card.Payload)
		if err != nil {
			run.skipped(1)
			s.logger.WarnContext(ctx, "match skipped", "stat", StatDroppedCatches, "match_id", doc.MatchID, "reason", reasonParseError, "error", err)
			return nil
		}
		commentary, err := scorecard.DecodeCommentary(doc.MatchID, doc.Payload)
		if err != nil {
			run.skipped(1)
			s.logger.WarnContext(ctx, "commentary skipped", "stat", StatDroppedCatches, "match_id", doc.MatchID, "reason", reasonParseError, "error", err)
			return nil
		}
		credited := fold.Add(facts.Players, commentary)
		s.logger.DebugContext(ctx, "commentary scanned", "match_id", doc.MatchID, "entries", len(commentary.Entries), "credited", credited)
		return nil
	})
	if err != nil {
		return err
	}
	rows, skips := fold.Results()
	s.recordSkips(ctx, run, StatDroppedCatches, skips)
	return upsertRows(ctx, s, run, StatDroppedCatches, rows, func(r stats.DroppedCatchStat) string {
		return strconv.FormatInt(r.FielderID, 10) + "/" + r.Team
	}, s.statsRepo.UpsertDroppedCatch)
}

func (s *CustomStatsService) latestMatch(ctx context.Context, run *statRun) error {
	card, err := s.raw.LatestScorecard(ctx)
	if errors.Is(err, rawmatch.ErrNotFound) {
		s.logger.WarnContext(ctx, "no raw scorecards stored", "stat", StatLatestMatch)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get latest scorecard: %w", err)
	}
	doc, err := scorecard.Decode(card.MatchID, card.Payload)
	if err != nil {
		run.skipped(1)
		s.logger.WarnContext(ctx, "match skipped", "stat", StatLatestMatch, "match_id", card.MatchID, "reason", reasonParseError, "error", err)
		return nil
	}
	row := aggregate.LatestMatch(doc, s.extractor.Resolver())
	return upsertRows(ctx, s, run, StatLatestMatch, []stats.LatestMatchSummary{row}, func(r stats.LatestMatchSummary) string {
		return r.MatchID
	}, s.statsRepo.UpsertLatestMatch)
}

func (s *CustomStatsService) recordSkips(ctx context.Context, run *statRun, stat string, skips []aggregate.Skip) {
	logSkips(ctx, s.logger, stat, skips)
	run.skipped(len(skips))
}

// upsertRows writes rows one transaction at a time. Row failures are counted
// and logged; only a lost connection is returned.
func upsertRows[T any](
	ctx context.Context,
	s *CustomStatsService,
	run *statRun,
	stat string,
	rows []T,
	key func(T) string,
	upsert func(context.Context, T) error,
) error {
	for _, row := range rows {
		if err := upsert(ctx, row); err != nil {
			if persistence.IsUnavailable(err) {
				return fmt.Errorf("upsert %s key=%s: %w", stat, key(row), err)
			}
			run.failed(1)
			s.logger.ErrorContext(ctx, "upsert row failed",
				"stat", stat,
				"key", key(row),
				"reason", reasonDBError,
				"error", err,
			)
			continue
		}
		run.processed(1)
	}
	return nil
}
