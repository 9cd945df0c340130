package aggregate_test

import (
	"reflect"
	"testing"

	"github.com/riskibarqy/cricket-stats/internal/domain/aggregate"
	"github.com/riskibarqy/cricket-stats/internal/domain/identity"
	"github.com/riskibarqy/cricket-stats/internal/domain/matchfact"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard/scorecardtest"
	"github.com/riskibarqy/cricket-stats/internal/domain/silver"
	"github.com/riskibarqy/cricket-stats/internal/domain/team"
)

type fixtureSet struct {
	facts   []matchfact.Facts
	summary []silver.MatchSummary
	batting []silver.Batting
	bowling []silver.Bowling
	extras  map[string]map[string]int
}

func loadFixtures(t *testing.T) fixtureSet {
	t.Helper()

	extractor := matchfact.NewExtractor(nil, nil)
	out := fixtureSet{extras: make(map[string]map[string]int)}
	for _, item := range []struct{ id, payload string }{
		{scorecardtest.FlatMatchID, scorecardtest.FlatMatchJSON},
		{scorecardtest.NestedMatchID, scorecardtest.NestedMatchJSON},
		{scorecardtest.NoResultMatchID, scorecardtest.NoResultMatchJSON},
	} {
		facts, err := extractor.ExtractPayload(item.id, []byte(item.payload))
		if err != nil {
			t.Fatalf("extract %s: %v", item.id, err)
		}
		summary, batting, bowling := silver.Build(facts)
		out.facts = append(out.facts, facts)
		out.summary = append(out.summary, summary)
		out.batting = append(out.batting, batting...)
		out.bowling = append(out.bowling, bowling...)
		out.extras[item.id] = silver.ExtrasByTeam(facts)
	}
	return out
}

func TestCleanBowled_EconomyAndExclusion(t *testing.T) {
	t.Parallel()

	doc := scorecard.Document{
		MatchID: "9_MumbaiIndians_vs_DelhiCapitals",
		Status:  "Mumbai Indians won by 10 runs",
		Header:  scorecard.Header{Team1: "Mumbai Indians", Team2: "Delhi Capitals"},
		Innings: []scorecard.Innings{
			{
				InningsID:   1,
				BattingTeam: "Delhi Capitals",
				Batters: []scorecard.Batter{
					{ID: 1, FullName: "Prithvi Shaw", Runs: 4, Balls: 3, Dismissal: "b Bumrah"},
				},
				Bowlers: []scorecard.Bowler{
					{ID: 11, FullName: "Jasprit Bumrah", ShortName: "Bumrah", Overs: "3", Runs: 30, Wickets: 1},
					{ID: 12, FullName: "Piyush Chawla", Overs: "0", Runs: 0},
				},
			},
		},
	}
	facts := matchfact.NewExtractor(nil, nil).Extract(doc)

	fold := aggregate.NewCleanBowled()
	if !fold.Add(facts) {
		t.Fatalf("expected match with known teams to be folded")
	}
	rows, skipped := fold.Results()
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %+v", rows)
	}
	row := rows[0]
	if row.BowlerID != 11 || row.Team != "Mumbai Indians" || row.CleanBowledWickets != 1 {
		t.Fatalf("unexpected row %+v", row)
	}
	if row.BallsBowled != 18 || row.Economy != 10.0 {
		t.Fatalf("expected 18 balls at 10.0, got %d at %v", row.BallsBowled, row.Economy)
	}
	if len(skipped) != 1 || skipped[0].Reason != aggregate.ReasonNoBallsNoWickets {
		t.Fatalf("expected chawla skipped for no balls, got %+v", skipped)
	}

	if aggregate.Economy(12, 0) != 0 {
		t.Fatalf("zero balls must give zero economy")
	}
}

func TestCleanBowled_SkipsUnknownTeams(t *testing.T) {
	t.Parallel()

	doc := scorecard.Document{
		MatchID: "x",
		Innings: []scorecard.Innings{{
			BattingTeam: "Somewhere XI",
			Bowlers:     []scorecard.Bowler{{ID: 3, Name: "Anyone", Overs: "4", Runs: 20}},
		}},
	}
	fold := aggregate.NewCleanBowled()
	if fold.Add(matchfact.NewExtractor(nil, nil).Extract(doc)) {
		t.Fatalf("unresolved match must be skipped")
	}
	if rows, _ := fold.Results(); len(rows) != 0 {
		t.Fatalf("expected no rows, got %+v", rows)
	}
}

func TestPowerplay_AveragesQualifyingInnings(t *testing.T) {
	t.Parallel()

	set := loadFixtures(t)
	fold := aggregate.NewPowerplay()
	for _, facts := range set.facts {
		fold.Add(facts)
	}
	rows := fold.Results()
	if len(rows) != 2 {
		t.Fatalf("expected two teams, got %+v", rows)
	}
	if rows[0].Team != "Chennai Super Kings" || rows[0].TotalRuns != 103 || rows[0].AverageRuns != 51.5 {
		t.Fatalf("unexpected csk powerplay %+v", rows[0])
	}
	if rows[1].Team != "Mumbai Indians" || rows[1].InningsCount != 2 || rows[1].AverageRuns != 48.5 {
		t.Fatalf("unexpected mi powerplay %+v", rows[1])
	}
}

func TestBoundaryDominanceAndEffectiveness(t *testing.T) {
	t.Parallel()

	if got := aggregate.BoundaryDominanceRatio(50, 4, 2); got != 56.0 {
		t.Fatalf("BDR = %v, want 56.0", got)
	}
	if got := aggregate.BoundaryDominanceRatio(0, 0, 0); got != 0 {
		t.Fatalf("BDR with zero runs = %v", got)
	}
	if got := aggregate.EffectivenessRatio(2, 24); got != 8.0 {
		t.Fatalf("effectiveness = %v, want 8.0", got)
	}
	if got := aggregate.EffectivenessRatio(1, 0); got != 100 {
		t.Fatalf("effectiveness for zero runs = %v", got)
	}

	rows, _ := aggregate.BattingMetrics([]silver.Batting{
		{MatchID: "1", PlayerID: 5, PlayerName: "S Yadav", Team: "Mumbai Indians", Runs: 30, Fours: 2, Sixes: 1},
		{MatchID: "2", PlayerID: 5, PlayerName: "Suryakumar Yadav", Team: "Mumbai Indians", Runs: 20, Fours: 2, Sixes: 1},
		{MatchID: "2", PlayerID: 6, PlayerName: "Ghost", Team: team.Unknown, Runs: 99},
	})
	if len(rows) != 1 || rows[0].TotalRuns != 50 || rows[0].BoundaryDominanceRatio != 56.0 {
		t.Fatalf("unexpected batting metrics %+v", rows)
	}
	if rows[0].PlayerName != "Suryakumar Yadav" {
		t.Fatalf("expected longest name, got %q", rows[0].PlayerName)
	}
}

func TestHeadToHead_ThreeMatchScenario(t *testing.T) {
	t.Parallel()

	set := loadFixtures(t)
	fold := aggregate.NewHeadToHead()
	for _, facts := range set.facts {
		fold.Add(facts.Metadata)
	}
	rows, _ := fold.Results()
	if len(rows) != 1 {
		t.Fatalf("both orderings must share one key, got %+v", rows)
	}
	row := rows[0]
	if row.Team1 != "Chennai Super Kings" || row.Team2 != "Mumbai Indians" {
		t.Fatalf("unexpected pair %q/%q", row.Team1, row.Team2)
	}
	if row.Team1Wins != 1 || row.Team2Wins != 1 || row.TiesOrNoResult != 1 || row.TotalMatches != 3 {
		t.Fatalf("unexpected tallies %+v", row)
	}
	if row.Team1WinPct != 50.0 || row.Team2WinPct != 50.0 {
		t.Fatalf("unexpected percentages %+v", row)
	}
}

func TestHeadToHead_AmbiguousWinnerCountsAsTie(t *testing.T) {
	t.Parallel()

	fold := aggregate.NewHeadToHead()
	fold.Add(matchfact.Metadata{MatchID: "1", Team1: "Mumbai Indians", Team2: "Delhi Capitals", Result: matchfact.ResultWin, Winner: "Punjab Kings"})
	rows, skipped := fold.Results()
	if rows[0].TiesOrNoResult != 1 || rows[0].Team1WinPct != 0 {
		t.Fatalf("unexpected row %+v", rows[0])
	}
	if len(skipped) != 1 || skipped[0].Reason != aggregate.ReasonAmbiguousWinner {
		t.Fatalf("expected ambiguous winner logged, got %+v", skipped)
	}

	t1, t2 := aggregate.PairKey("Mumbai Indians", "Chennai Super Kings")
	if t1 != "Chennai Super Kings" || t2 != "Mumbai Indians" {
		t.Fatalf("pair key not sorted: %q %q", t1, t2)
	}
}

func TestHeadToHead_SuperOverStaysATie(t *testing.T) {
	t.Parallel()

	fold := aggregate.NewHeadToHead()
	fold.Add(matchfact.Metadata{
		MatchID: "1", Team1: "Mumbai Indians", Team2: "Delhi Capitals",
		Result: matchfact.ResultTie, SuperOverWinner: "Delhi Capitals",
		Status: "Match tied (Delhi Capitals won the Super Over)",
	})
	rows, skipped := fold.Results()
	row := rows[0]
	if row.TiesOrNoResult != 1 || row.Team1Wins != 0 || row.Team2Wins != 0 {
		t.Fatalf("super over result must count as a tie, got %+v", row)
	}
	if row.Team1WinPct != 0 || row.Team2WinPct != 0 {
		t.Fatalf("no decided matches, got %+v", row)
	}
	if len(skipped) != 0 {
		t.Fatalf("a tie is not ambiguous, got %+v", skipped)
	}
}

func TestStandings_PointsAndNetRunRate(t *testing.T) {
	t.Parallel()

	set := loadFixtures(t)
	input := aggregate.StandingsInput{Summaries: set.summary, Batting: set.batting, Extras: set.extras}
	rows, skipped := aggregate.Standings(input, team.NewDefaultNormalizer())
	if len(skipped) != 0 {
		t.Fatalf("unexpected skips %+v", skipped)
	}
	if len(rows) != 2 {
		t.Fatalf("expected two teams, got %+v", rows)
	}

	csk, mi := rows[0], rows[1]
	if csk.Team != "Chennai Super Kings" || csk.Position != 1 || mi.Position != 2 {
		t.Fatalf("unexpected order %+v", rows)
	}
	if csk.Points != 3 || csk.Won != 1 || csk.Lost != 1 || csk.NoResult != 1 || csk.Matches != 3 {
		t.Fatalf("unexpected csk line %+v", csk)
	}
	if csk.NetRunRate != 0.294 || mi.NetRunRate != -0.294 {
		t.Fatalf("unexpected nrr %v / %v", csk.NetRunRate, mi.NetRunRate)
	}

	again, _ := aggregate.Standings(input, team.NewDefaultNormalizer())
	if !reflect.DeepEqual(rows, again) {
		t.Fatalf("rerun must produce identical standings")
	}
}

func TestStandings_SuperOverAndAllOut(t *testing.T) {
	t.Parallel()

	summaries := []silver.MatchSummary{{
		MatchID: "1", Team1: "Mumbai Indians", Team2: "Delhi Capitals",
		Status: "Match tied (Delhi Capitals won the Super Over)", IsTie: true,
	}}
	rows, _ := aggregate.Standings(aggregate.StandingsInput{Summaries: summaries}, nil)
	if rows[0].Team != "Delhi Capitals" || rows[0].Points != 2 || rows[1].Lost != 1 {
		t.Fatalf("super over winner should take the points, got %+v", rows)
	}

	batting := []silver.Batting{{MatchID: "2", InningsID: 1, PlayerID: 1, Team: "Mumbai Indians", Runs: 150, Balls: 120}}
	for i := 0; i < 10; i++ {
		batting = append(batting, silver.Batting{
			MatchID: "2", InningsID: 2, PlayerID: int64(20 + i), Team: "Delhi Capitals",
			Runs: 10, Balls: 6, IsOut: true,
		})
	}
	allOut := []silver.MatchSummary{{
		MatchID: "2", Team1: "Mumbai Indians", Team2: "Delhi Capitals",
		Status: "Mumbai Indians won by 50 runs", Winner: "Mumbai Indians",
	}}
	rows, skipped := aggregate.Standings(aggregate.StandingsInput{Summaries: allOut, Batting: batting}, nil)
	if len(skipped) != 0 {
		t.Fatalf("unexpected skips %+v", skipped)
	}
	if rows[0].Team != "Mumbai Indians" || rows[0].NetRunRate != 2.5 || rows[1].NetRunRate != -2.5 {
		t.Fatalf("all out innings should count 20 overs, got %+v", rows)
	}

	if got := aggregate.NetRunRate(120, 120, 100, 0); got != 6-1000 {
		t.Fatalf("overs must floor at 0.1, got %v", got)
	}
}

func TestStandings_MatchWithoutInningsIDs(t *testing.T) {
	t.Parallel()

	payload := scorecardtest.WithoutInningsIDs(scorecardtest.FlatMatchJSON)
	facts, err := matchfact.NewExtractor(nil, nil).ExtractPayload(scorecardtest.FlatMatchID, []byte(payload))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	extras := silver.ExtrasByTeam(facts)
	if extras["Chennai Super Kings"] != 10 || extras["Mumbai Indians"] != 5 {
		t.Fatalf("unexpected extras %+v", extras)
	}

	summary, batting, _ := silver.Build(facts)
	rows, skipped := aggregate.Standings(aggregate.StandingsInput{
		Summaries: []silver.MatchSummary{summary},
		Batting:   batting,
		Extras:    map[string]map[string]int{scorecardtest.FlatMatchID: extras},
	}, nil)
	if len(skipped) != 0 {
		t.Fatalf("unexpected skips %+v", skipped)
	}
	// 100 runs in 65 balls against 47 in 33 balls.
	if rows[0].Team != "Chennai Super Kings" || rows[0].NetRunRate != 0.685 || rows[1].NetRunRate != -0.685 {
		t.Fatalf("unexpected standings %+v", rows)
	}
}

func TestStandings_UnmatchedWinnerAwardsNoPoints(t *testing.T) {
	t.Parallel()

	summaries := []silver.MatchSummary{{
		MatchID: "3", Team1: "Mumbai Indians", Team2: "Delhi Capitals",
		Status: "Punjab Kings won by 5 runs", Winner: "Punjab Kings", Result: "win",
	}}
	rows, skipped := aggregate.Standings(aggregate.StandingsInput{Summaries: summaries}, nil)
	for _, row := range rows {
		if row.Points != 0 || row.NoResult != 0 || row.Matches != 1 {
			t.Fatalf("expected a played match with no points, got %+v", row)
		}
	}
	if len(skipped) == 0 || skipped[0].Reason != aggregate.ReasonAmbiguousWinner {
		t.Fatalf("expected ambiguous winner skip, got %+v", skipped)
	}
}

func TestTopBatsmenAndBowlers(t *testing.T) {
	t.Parallel()

	set := loadFixtures(t)

	batsmen := aggregate.TopBatsmen(set.batting, 2)
	if len(batsmen) != 2 {
		t.Fatalf("expected top 2, got %d", len(batsmen))
	}
	rohit := batsmen[0]
	if rohit.PlayerName != "Rohit Sharma" || rohit.Runs != 110 || rohit.Matches != 2 || rohit.Highest != 70 || rohit.Fifties != 1 {
		t.Fatalf("unexpected leader %+v", rohit)
	}
	if rohit.Average == nil || *rohit.Average != 110 || rohit.StrikeRate != 146.67 {
		t.Fatalf("unexpected rates %+v", rohit)
	}
	if batsmen[1].PlayerName != "Shivam Dube" || batsmen[1].Rank != 2 {
		t.Fatalf("unexpected second %+v", batsmen[1])
	}

	bowlers := aggregate.TopBowlers(set.bowling, 0)
	if len(bowlers) != 2 {
		t.Fatalf("expected two wicket takers, got %+v", bowlers)
	}
	bumrah := bowlers[0]
	if bumrah.PlayerName != "Jasprit Bumrah" || bumrah.Wickets != 4 || bumrah.Team != "Mumbai Indians" {
		t.Fatalf("unexpected leader %+v", bumrah)
	}
	if bumrah.Economy != 7.25 || bumrah.BestFigures != "2/28" || bumrah.Overs != 8 {
		t.Fatalf("unexpected figures %+v", bumrah)
	}
	if bowlers[1].Overs != 7.4 || bowlers[1].Economy != 7.04 {
		t.Fatalf("unexpected jadeja figures %+v", bowlers[1])
	}
}

func TestFielderCatches_UnknownFielderNotPersisted(t *testing.T) {
	t.Parallel()

	set := loadFixtures(t)
	fold := aggregate.NewFielderCatches()
	for _, facts := range set.facts {
		fold.Add(facts)
	}
	rows, skipped := fold.Results()

	byID := make(map[int64]int)
	for _, row := range rows {
		byID[row.FielderID] = row.Catches
		if row.Team == aggregate.UnknownFielderTeam {
			t.Fatalf("placeholder team must not be persisted")
		}
	}
	if byID[10] != 2 || byID[2] != 1 {
		t.Fatalf("unexpected catches %+v", rows)
	}
	found := false
	for _, skip := range skipped {
		if skip.Reason == aggregate.ReasonUnknownFielder {
			found = true
		}
	}
	if !found {
		t.Fatalf("fielder 99 should be reported under the placeholder team")
	}
}

func TestDroppedCatches(t *testing.T) {
	t.Parallel()

	doc, err := scorecard.Decode(scorecardtest.FlatMatchID, []byte(scorecardtest.FlatMatchJSON))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	players := identity.NewResolver(nil).Build(doc)
	comm, err := scorecard.DecodeCommentary(scorecardtest.FlatMatchID, []byte(scorecardtest.CommentaryJSON))
	if err != nil {
		t.Fatalf("decode commentary: %v", err)
	}

	fold := aggregate.NewDroppedCatches()
	if got := fold.Add(players, comm); got != 1 {
		t.Fatalf("expected one drop, got %d", got)
	}
	rows, _ := fold.Results()
	if len(rows) != 1 || rows[0].FielderID != 10 || rows[0].Team != "Mumbai Indians" {
		t.Fatalf("unexpected dropped catches %+v", rows)
	}
}

func TestLatestMatch(t *testing.T) {
	t.Parallel()

	doc, err := scorecard.Decode(scorecardtest.NestedMatchID, []byte(scorecardtest.NestedMatchJSON))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := aggregate.LatestMatch(doc, identity.NewResolver(nil))

	if got.Team1 != "Mumbai Indians" || got.Team1Score != "151/4" || got.Team2Score != "150/6" {
		t.Fatalf("unexpected score lines %+v", got)
	}
	if got.Team1Top.BatsmanName != "Rohit" || got.Team1Top.BatsmanRuns != 70 {
		t.Fatalf("unexpected mi batter %+v", got.Team1Top)
	}
	if got.Team1Top.BowlerName != "Bumrah" || got.Team1Top.BowlerWickets != 2 {
		t.Fatalf("mi bowler should come from the csk innings, got %+v", got.Team1Top)
	}
	if got.Team2Top.BowlerName != "Jadeja" || got.Team2Top.BowlerEconomy != 8.18 {
		t.Fatalf("unexpected csk bowler %+v", got.Team2Top)
	}
	if got.Result != "Mumbai Indians won by 4 wkts" {
		t.Fatalf("unexpected result %q", got.Result)
	}

	empty := aggregate.LatestMatch(scorecard.Document{MatchID: "5_PunjabKings_vs_GujaratTitans"}, identity.NewResolver(nil))
	if empty.Team1 != "Punjab Kings" || empty.Team1Score != "N/A" || empty.Result != "Result not available" {
		t.Fatalf("unexpected empty summary %+v", empty)
	}
}

func TestWicketDistribution(t *testing.T) {
	t.Parallel()

	set := loadFixtures(t)
	shares := aggregate.WicketDistribution(set.summary, set.batting, nil)
	total := 0
	for _, share := range shares {
		total += share.Count
	}
	if total != 7 {
		t.Fatalf("expected 7 dismissals, got %d (%+v)", total, shares)
	}
}
