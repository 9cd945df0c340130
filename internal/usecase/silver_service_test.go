package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/cricket-stats/internal/domain/persistence"
	"github.com/riskibarqy/cricket-stats/internal/domain/rawmatch"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard/scorecardtest"
	"github.com/riskibarqy/cricket-stats/internal/domain/silver"
	rawmatchmock "github.com/riskibarqy/cricket-stats/internal/mocks/domain/rawmatch"
	silvermock "github.com/riskibarqy/cricket-stats/internal/mocks/domain/silver"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func summaryFor(matchID string) any {
	return mock.MatchedBy(func(v silver.MatchSummary) bool { return v.MatchID == matchID })
}

func TestSilverTransformService_TransformSkipsUnparseableDocuments(t *testing.T) {
	t.Parallel()

	docs := append(fixtureScorecards(), rawmatch.Scorecard{MatchID: "999_Broken", Payload: []byte(`{"scorecard": `)})
	rawRepo := rawmatchmock.NewRepository(t)
	silverRepo := silvermock.NewRepository(t)

	silverRepo.On("Truncate", mock.Anything).Return(nil).Once()
	rawRepo.On("ForEachScorecard", mock.Anything, mock.Anything).Return(streamScorecards(docs...)).Once()
	silverRepo.
		On("InsertMatch", mock.Anything, summaryFor(scorecardtest.FlatMatchID), mock.MatchedBy(func(v []silver.Batting) bool {
			return len(v) == 5
		}), mock.MatchedBy(func(v []silver.Bowling) bool {
			return len(v) == 3
		})).
		Return(nil).
		Once()
	silverRepo.On("InsertMatch", mock.Anything, summaryFor(scorecardtest.NestedMatchID), mock.Anything, mock.Anything).Return(nil).Once()
	silverRepo.On("InsertMatch", mock.Anything, summaryFor(scorecardtest.NoResultMatchID), mock.Anything, mock.Anything).Return(nil).Once()

	service := NewSilverTransformService(rawRepo, silverRepo, nil, logging.NewNop())
	got, err := service.Transform(context.Background())
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if got.Processed != 3 || got.Skipped != 1 || got.Failed != 0 {
		t.Fatalf("unexpected counters %+v", got)
	}
	if got.Status != StatStatusSuccess {
		t.Fatalf("expected success, got %s", got.Status)
	}
}

func TestSilverTransformService_TransformCountsRowFailures(t *testing.T) {
	t.Parallel()

	rawRepo := rawmatchmock.NewRepository(t)
	silverRepo := silvermock.NewRepository(t)

	silverRepo.On("Truncate", mock.Anything).Return(nil).Once()
	rawRepo.On("ForEachScorecard", mock.Anything, mock.Anything).Return(streamScorecards(fixtureScorecards()...)).Once()
	silverRepo.
		On("InsertMatch", mock.Anything, summaryFor(scorecardtest.FlatMatchID), mock.Anything, mock.Anything).
		Return(errors.New("duplicate key value violates unique constraint")).
		Once()
	silverRepo.On("InsertMatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()

	service := NewSilverTransformService(rawRepo, silverRepo, nil, logging.NewNop())
	got, err := service.Transform(context.Background())
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if got.Processed != 2 || got.Failed != 1 || got.Status != StatStatusPartial {
		t.Fatalf("unexpected summary %+v", got)
	}
}

func TestSilverTransformService_TransformStopsOnLostConnection(t *testing.T) {
	t.Parallel()

	rawRepo := rawmatchmock.NewRepository(t)
	silverRepo := silvermock.NewRepository(t)

	silverRepo.On("Truncate", mock.Anything).Return(nil).Once()
	rawRepo.On("ForEachScorecard", mock.Anything, mock.Anything).Return(streamScorecards(fixtureScorecards()...)).Once()
	silverRepo.On("InsertMatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(connectionLost()).Once()

	service := NewSilverTransformService(rawRepo, silverRepo, nil, logging.NewNop())
	got, err := service.Transform(context.Background())
	if !persistence.IsUnavailable(err) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
	if got.Status != StatStatusFailed || got.Processed != 0 {
		t.Fatalf("unexpected summary %+v", got)
	}
}

func TestSilverTransformService_TruncateFailure(t *testing.T) {
	t.Parallel()

	rawRepo := rawmatchmock.NewRepository(t)
	silverRepo := silvermock.NewRepository(t)
	silverRepo.On("Truncate", mock.Anything).Return(errors.New("permission denied")).Once()

	service := NewSilverTransformService(rawRepo, silverRepo, nil, logging.NewNop())
	if _, err := service.Transform(context.Background()); err == nil {
		t.Fatalf("expected truncate error")
	}
	rawRepo.AssertNotCalled(t, "ForEachScorecard", mock.Anything, mock.Anything)
}
