package identity_test

import (
	"testing"

	"github.com/riskibarqy/cricket-stats/internal/domain/identity"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard/scorecardtest"
	"github.com/riskibarqy/cricket-stats/internal/domain/team"
)

func newResolver() *identity.Resolver {
	return identity.NewResolver(team.NewDefaultNormalizer())
}

func TestBuild_FullerNameWins(t *testing.T) {
	t.Parallel()

	doc := scorecard.Document{
		MatchID: "1_ChennaiSuperKings_vs_MumbaiIndians",
		Header:  scorecard.Header{Team1: "CSK", Team2: "MI"},
		Innings: []scorecard.Innings{
			{
				BattingTeam: "Chennai Super Kings",
				Batters:     []scorecard.Batter{{ID: 7, FullName: "J. Smith"}},
			},
			{
				BattingTeam: "Mumbai Indians",
				Bowlers:     []scorecard.Bowler{{ID: 7, FullName: "John Smith"}},
			},
		},
	}

	m := newResolver().Build(doc)
	p, ok := m.Get(7)
	if !ok {
		t.Fatalf("expected player 7")
	}
	if p.Name != "John Smith" {
		t.Fatalf("expected fuller name, got %q", p.Name)
	}
	if p.Team != "Chennai Super Kings" {
		t.Fatalf("team must not be overwritten once known, got %q", p.Team)
	}
	if id, ok := m.IDForName("j. smith"); !ok || id != 7 {
		t.Fatalf("expected both spellings indexed")
	}
}

func TestBuild_GenericNamesArePlaceholders(t *testing.T) {
	t.Parallel()

	doc := scorecard.Document{
		Header: scorecard.Header{Team1: "Mumbai Indians", Team2: "Delhi Capitals"},
		Innings: []scorecard.Innings{
			{BattingTeam: "MI", Batters: []scorecard.Batter{{ID: 9}}},
			{BattingTeam: "DC", Bowlers: []scorecard.Bowler{{ID: 9, Name: "Player ID 9"}}},
			{BattingTeam: "DC", Bowlers: []scorecard.Bowler{{ID: 9, Name: "Ishan"}}},
		},
	}

	m := newResolver().Build(doc)
	p, _ := m.Get(9)
	if p.Name != "Ishan" {
		t.Fatalf("non-generic name should replace placeholder, got %q", p.Name)
	}
	if _, ok := m.IDForName("player id 9"); ok {
		t.Fatalf("generic names must not be indexed")
	}
}

func TestBuild_EqualLengthPrefersMoreTokens(t *testing.T) {
	t.Parallel()

	doc := scorecard.Document{
		Header: scorecard.Header{Team1: "MI", Team2: "CSK"},
		Innings: []scorecard.Innings{
			{BattingTeam: "MI", Batters: []scorecard.Batter{{ID: 3, FullName: "AbcdeFghij"}}},
			{BattingTeam: "MI", Batters: []scorecard.Batter{{ID: 3, FullName: "Abcd Fghij"}}},
		},
	}

	p, _ := newResolver().Build(doc).Get(3)
	if p.Name != "Abcd Fghij" {
		t.Fatalf("expected spaced name, got %q", p.Name)
	}
}

func TestTeams_Fallbacks(t *testing.T) {
	t.Parallel()

	r := newResolver()

	t1, t2 := r.Teams(scorecard.Document{
		Header: scorecard.Header{Team1: "Mumbai Indians", Team2: "Mumbai Indians"},
		Innings: []scorecard.Innings{
			{BattingTeam: "Mumbai Indians"},
			{BattingTeam: "Punjab Kings"},
		},
	})
	if t1 != "Mumbai Indians" || t2 != "Punjab Kings" {
		t.Fatalf("degenerate header should fall back to innings: %q %q", t1, t2)
	}

	t1, t2 = r.Teams(scorecard.Document{MatchID: scorecardtest.NoResultMatchID})
	if t1 != "Chennai Super Kings" || t2 != "Mumbai Indians" {
		t.Fatalf("expected match id fallback, got %q %q", t1, t2)
	}

	t1, t2 = r.Teams(scorecard.Document{MatchID: "x"})
	if t1 != team.Unknown || t2 != team.Unknown {
		t.Fatalf("expected both unknown, got %q %q", t1, t2)
	}
}

func TestBowlingTeam(t *testing.T) {
	t.Parallel()

	cases := []struct {
		team1, team2, batting, want string
	}{
		{"Mumbai Indians", "Chennai Super Kings", "Mumbai Indians", "Chennai Super Kings"},
		{"Mumbai Indians", "Chennai Super Kings", "Chennai Super Kings", "Mumbai Indians"},
		{"Mumbai Indians", team.Unknown, "Chennai Super Kings", "Mumbai Indians"},
		{"Mumbai Indians", team.Unknown, "Mumbai Indians", team.Unknown},
		{team.Unknown, team.Unknown, "Mumbai Indians", team.Unknown},
	}
	for _, tc := range cases {
		if got := identity.BowlingTeam(tc.team1, tc.team2, tc.batting); got != tc.want {
			t.Fatalf("BowlingTeam(%q,%q,%q) = %q, want %q", tc.team1, tc.team2, tc.batting, got, tc.want)
		}
	}
}

func TestBuild_FromFixture(t *testing.T) {
	t.Parallel()

	doc, err := scorecard.Decode(scorecardtest.NestedMatchID, []byte(scorecardtest.NestedMatchJSON))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m := newResolver().Build(doc)

	if m.Team1 != "Mumbai Indians" || m.Team2 != "Chennai Super Kings" {
		t.Fatalf("unexpected teams %q %q", m.Team1, m.Team2)
	}
	bumrah, _ := m.Get(11)
	if bumrah.Name != "Jasprit Bumrah" || bumrah.Team != "Mumbai Indians" {
		t.Fatalf("unexpected bowler identity %+v", bumrah)
	}
	if id, ok := m.IDForName("rohit"); !ok || id != 10 {
		t.Fatalf("short name should be indexed")
	}
	if !m.HasKnownTeams() {
		t.Fatalf("expected known teams")
	}
}

func TestIsGenericName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "  ", "Unknown", "Player ID 4", "Fielder ID 2"} {
		if !identity.IsGenericName(name) {
			t.Fatalf("%q should be generic", name)
		}
	}
	if identity.IsGenericName("Rohit Sharma") {
		t.Fatalf("real name flagged generic")
	}
}
