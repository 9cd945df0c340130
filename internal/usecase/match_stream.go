package usecase

import (
	"context"

	"github.com/riskibarqy/cricket-stats/internal/domain/matchfact"
	"github.com/riskibarqy/cricket-stats/internal/domain/rawmatch"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

// factStream walks raw scorecards in match id order and hands each decoded
// match to fn. Undecodable documents are logged and counted, never fatal.
type factStream struct {
	raw       rawmatch.Repository
	extractor *matchfact.Extractor
	logger    *logging.Logger
}

func (f factStream) each(ctx context.Context, run *statRun, stat string, fn func(matchfact.Facts) error) error {
	return f.raw.ForEachScorecard(ctx, func(doc rawmatch.Scorecard) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		facts, err := f.extractor.ExtractPayload(doc.MatchID, doc.Payload)
		if err != nil {
			run.skipped(1)
			f.logger.WarnContext(ctx, "match skipped",
				"stat", stat,
				"match_id", doc.MatchID,
				"reason", reasonParseError,
				"error", err,
			)
			return nil
		}
		return fn(facts)
	})
}
