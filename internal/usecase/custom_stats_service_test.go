package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/cricket-stats/internal/domain/persistence"
	"github.com/riskibarqy/cricket-stats/internal/domain/rawmatch"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard/scorecardtest"
	"github.com/riskibarqy/cricket-stats/internal/domain/stats"
	rawmatchmock "github.com/riskibarqy/cricket-stats/internal/mocks/domain/rawmatch"
	silvermock "github.com/riskibarqy/cricket-stats/internal/mocks/domain/silver"
	statsmock "github.com/riskibarqy/cricket-stats/internal/mocks/domain/stats"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

var customStatOrder = []string{
	StatCleanBowled,
	StatPowerplay,
	StatBoundaryDominance,
	StatBowlerEffectiveness,
	StatHeadToHead,
	StatFielderCatches,
	StatDroppedCatches,
	StatLatestMatch,
}

func expectCustomStatInputs(t *testing.T, rawRepo *rawmatchmock.Repository, silverRepo *silvermock.Repository, battingErr error) {
	t.Helper()

	fixture := buildSilverFixture(t)
	flat := rawmatch.Scorecard{MatchID: scorecardtest.FlatMatchID, Payload: []byte(scorecardtest.FlatMatchJSON)}
	nested := rawmatch.Scorecard{MatchID: scorecardtest.NestedMatchID, Payload: []byte(scorecardtest.NestedMatchJSON)}

	rawRepo.On("ForEachScorecard", mock.Anything, mock.Anything).Return(streamScorecards(fixtureScorecards()...)).Times(4)
	rawRepo.
		On("ForEachCommentary", mock.Anything, mock.Anything).
		Return(streamCommentary(
			rawmatch.Commentary{MatchID: scorecardtest.FlatMatchID, Payload: []byte(scorecardtest.CommentaryJSON)},
			rawmatch.Commentary{MatchID: "404_Orphan", Payload: []byte(scorecardtest.CommentaryJSON)},
		)).
		Once()
	rawRepo.On("GetScorecard", mock.Anything, scorecardtest.FlatMatchID).Return(flat, nil).Once()
	rawRepo.On("GetScorecard", mock.Anything, "404_Orphan").Return(rawmatch.Scorecard{}, rawmatch.ErrNotFound).Once()
	rawRepo.On("LatestScorecard", mock.Anything).Return(nested, nil).Once()

	if battingErr != nil {
		silverRepo.On("ListBatting", mock.Anything).Return(nil, battingErr).Once()
	} else {
		silverRepo.On("ListBatting", mock.Anything).Return(fixture.batting, nil).Once()
	}
	silverRepo.On("ListBowling", mock.Anything).Return(fixture.bowling, nil).Once()
}

func expectCustomStatUpserts(statsRepo *statsmock.Repository) {
	statsRepo.On("TruncateAll", mock.Anything).Return(nil).Once()
	for _, method := range []string{
		"UpsertCleanBowled",
		"UpsertPowerplay",
		"UpsertBattingMetric",
		"UpsertBowlingMetric",
		"UpsertFielderCatch",
		"UpsertDroppedCatch",
		"UpsertLatestMatch",
	} {
		statsRepo.On(method, mock.Anything, mock.Anything).Return(nil).Maybe()
	}
}

func TestCustomStatsService_RunAllComputesEveryStatInOrder(t *testing.T) {
	t.Parallel()

	rawRepo := rawmatchmock.NewRepository(t)
	silverRepo := silvermock.NewRepository(t)
	statsRepo := statsmock.NewRepository(t)
	expectCustomStatInputs(t, rawRepo, silverRepo, nil)

	// Specific expectations first; mock picks the first matching call.
	statsRepo.
		On("UpsertHeadToHead", mock.Anything, mock.MatchedBy(func(v stats.HeadToHead) bool {
			return v.Team1 == "Chennai Super Kings" &&
				v.Team2 == "Mumbai Indians" &&
				v.Team1Wins == 1 &&
				v.Team2Wins == 1 &&
				v.TotalMatches == 3
		})).
		Return(nil).
		Once()
	statsRepo.
		On("UpsertDroppedCatch", mock.Anything, mock.MatchedBy(func(v stats.DroppedCatchStat) bool {
			return v.FielderID == 10 && v.Team == "Mumbai Indians"
		})).
		Return(nil).
		Once()
	statsRepo.
		On("UpsertLatestMatch", mock.Anything, mock.MatchedBy(func(v stats.LatestMatchSummary) bool {
			return v.MatchID == scorecardtest.NestedMatchID
		})).
		Return(nil).
		Once()
	expectCustomStatUpserts(statsRepo)

	service := NewCustomStatsService(rawRepo, silverRepo, statsRepo, nil, logging.NewNop())
	got, err := service.RunAll(context.Background())
	if err != nil {
		t.Fatalf("run all: %v", err)
	}
	if len(got) != len(customStatOrder) {
		t.Fatalf("expected %d summaries, got %+v", len(customStatOrder), got)
	}
	for i, name := range customStatOrder {
		if got[i].Name != name {
			t.Fatalf("step %d: got %s want %s", i, got[i].Name, name)
		}
		if got[i].Status == StatStatusFailed {
			t.Fatalf("step %s failed: %+v", name, got[i])
		}
	}
	if dropped := got[6]; dropped.Processed != 1 || dropped.Skipped != 1 {
		t.Fatalf("orphan commentary should be skipped, got %+v", dropped)
	}
}

func TestCustomStatsService_RunAllContinuesAfterStepFailure(t *testing.T) {
	t.Parallel()

	rawRepo := rawmatchmock.NewRepository(t)
	silverRepo := silvermock.NewRepository(t)
	statsRepo := statsmock.NewRepository(t)
	expectCustomStatInputs(t, rawRepo, silverRepo, errors.New("relation silver_batting does not exist"))
	expectCustomStatUpserts(statsRepo)
	statsRepo.On("UpsertHeadToHead", mock.Anything, mock.Anything).Return(nil).Once()

	service := NewCustomStatsService(rawRepo, silverRepo, statsRepo, nil, logging.NewNop())
	got, err := service.RunAll(context.Background())
	if err == nil {
		t.Fatalf("expected the failed step to be reported")
	}
	if len(got) != len(customStatOrder) {
		t.Fatalf("later steps must still run, got %d summaries", len(got))
	}
	if got[2].Name != StatBoundaryDominance || got[2].Status != StatStatusFailed {
		t.Fatalf("unexpected boundary summary %+v", got[2])
	}
	if got[3].Status == StatStatusFailed {
		t.Fatalf("effectiveness should not be affected: %+v", got[3])
	}
}

func TestCustomStatsService_RunAllStopsOnLostConnection(t *testing.T) {
	t.Parallel()

	rawRepo := rawmatchmock.NewRepository(t)
	statsRepo := statsmock.NewRepository(t)

	statsRepo.On("TruncateAll", mock.Anything).Return(nil).Once()
	rawRepo.On("ForEachScorecard", mock.Anything, mock.Anything).Return(streamScorecards(fixtureScorecards()...)).Once()
	statsRepo.On("UpsertCleanBowled", mock.Anything, mock.Anything).Return(connectionLost()).Once()

	service := NewCustomStatsService(rawRepo, silvermock.NewRepository(t), statsRepo, nil, logging.NewNop())
	got, err := service.RunAll(context.Background())
	if !persistence.IsUnavailable(err) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
	if len(got) != 1 || got[0].Status != StatStatusFailed {
		t.Fatalf("expected a single failed step, got %+v", got)
	}
}

func TestCustomStatsService_RowFailureMarksStepPartial(t *testing.T) {
	t.Parallel()

	rawRepo := rawmatchmock.NewRepository(t)
	statsRepo := statsmock.NewRepository(t)
	rawRepo.On("ForEachScorecard", mock.Anything, mock.Anything).Return(streamScorecards(fixtureScorecards()...)).Once()
	statsRepo.On("UpsertPowerplay", mock.Anything, mock.MatchedBy(func(v stats.PowerplayStat) bool {
		return v.Team == "Mumbai Indians"
	})).Return(errors.New("numeric field overflow")).Once()
	statsRepo.On("UpsertPowerplay", mock.Anything, mock.Anything).Return(nil)

	service := NewCustomStatsService(rawRepo, silvermock.NewRepository(t), statsRepo, nil, logging.NewNop())
	run := beginStat(StatPowerplay)
	if err := service.powerplay(context.Background(), run); err != nil {
		t.Fatalf("powerplay: %v", err)
	}
	got := run.finish(nil)
	if got.Failed != 1 || got.Processed != 1 || got.Status != StatStatusPartial {
		t.Fatalf("unexpected summary %+v", got)
	}
}
