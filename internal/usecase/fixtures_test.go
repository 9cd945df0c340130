package usecase

import (
	"context"
	"errors"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricket-stats/internal/domain/matchfact"
	"github.com/riskibarqy/cricket-stats/internal/domain/persistence"
	"github.com/riskibarqy/cricket-stats/internal/domain/rawmatch"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard/scorecardtest"
	"github.com/riskibarqy/cricket-stats/internal/domain/silver"
)

func fixtureScorecards() []rawmatch.Scorecard {
	return []rawmatch.Scorecard{
		{MatchID: scorecardtest.FlatMatchID, Payload: []byte(scorecardtest.FlatMatchJSON)},
		{MatchID: scorecardtest.NestedMatchID, Payload: []byte(scorecardtest.NestedMatchJSON)},
		{MatchID: scorecardtest.NoResultMatchID, Payload: []byte(scorecardtest.NoResultMatchJSON)},
	}
}

// streamScorecards replays docs through the callback the way the postgres
// cursor does.
func streamScorecards(docs ...rawmatch.Scorecard) func(context.Context, func(rawmatch.Scorecard) error) error {
	return func(_ context.Context, fn func(rawmatch.Scorecard) error) error {
		for _, doc := range docs {
			if err := fn(doc); err != nil {
				return err
			}
		}
		return nil
	}
}

func streamCommentary(docs ...rawmatch.Commentary) func(context.Context, func(rawmatch.Commentary) error) error {
	return func(_ context.Context, fn func(rawmatch.Commentary) error) error {
		for _, doc := range docs {
			if err := fn(doc); err != nil {
				return err
			}
		}
		return nil
	}
}

type silverFixture struct {
	summaries []silver.MatchSummary
	batting   []silver.Batting
	bowling   []silver.Bowling
}

func buildSilverFixture(t *testing.T) silverFixture {
	t.Helper()

	extractor := matchfact.NewExtractor(nil, nil)
	var out silverFixture
	for _, doc := range fixtureScorecards() {
		facts, err := extractor.ExtractPayload(doc.MatchID, doc.Payload)
		if err != nil {
			t.Fatalf("extract %s: %v", doc.MatchID, err)
		}
		summary, batting, bowling := silver.Build(facts)
		out.summaries = append(out.summaries, summary)
		out.batting = append(out.batting, batting...)
		out.bowling = append(out.bowling, bowling...)
	}
	return out
}

func connectionLost() error {
	return crerr.Mark(errors.New("connection reset by peer"), persistence.ErrUnavailable)
}
