package dismissal_test

import (
	"testing"

	"github.com/riskibarqy/cricket-stats/internal/domain/dismissal"
)

type fakeIndex map[string]int64

func (f fakeIndex) IDForName(name string) (int64, bool) {
	id, ok := f[name]
	return id, ok
}

func (f fakeIndex) IndexedNames() []string {
	// Fixed order keeps fuzzy ties deterministic in tests.
	keys := []string{"rohit sharma", "rohit", "jasprit bumrah", "bumrah", "ravindra jadeja", "jadeja", "shivam dube"}
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := f[key]; ok {
			out = append(out, key)
		}
	}
	return out
}

func newIndex() fakeIndex {
	return fakeIndex{
		"rohit sharma":    10,
		"rohit":           10,
		"jasprit bumrah":  11,
		"bumrah":          11,
		"ravindra jadeja": 21,
		"jadeja":          21,
		"shivam dube":     2,
	}
}

func TestParse_Kinds(t *testing.T) {
	t.Parallel()

	p := dismissal.NewParser()
	cases := []struct {
		text    string
		kind    dismissal.Kind
		fielder string
		bowler  string
	}{
		{"c Rohit b Bumrah", dismissal.KindCaught, "Rohit", "Bumrah"},
		{"c & b Jadeja", dismissal.KindCaught, "Jadeja", "Jadeja"},
		{"c (sub) Tilak Varma b Bumrah", dismissal.KindCaught, "Tilak Varma", "Bumrah"},
		{"caught by Rohit Sharma", dismissal.KindCaught, "Rohit Sharma", ""},
		{"b Bumrah", dismissal.KindBowled, "", "Bumrah"},
		{"bowled Jasprit Bumrah", dismissal.KindBowled, "", "Jasprit Bumrah"},
		{"run out (Dube/Dhoni)", dismissal.KindRunOut, "Dube", ""},
		{"st Dhoni b Jadeja", dismissal.KindStumped, "Dhoni", "Jadeja"},
		{"lbw b Bumrah", dismissal.KindOther, "", "Bumrah"},
		{"hit wicket b Bumrah", dismissal.KindOther, "", "Bumrah"},
		{"not out", dismissal.KindNotOut, "", ""},
		{"", dismissal.KindNotOut, "", ""},
	}
	for _, tc := range cases {
		got := p.Parse(tc.text)
		if got.Kind != tc.kind || got.FielderName != tc.fielder || got.BowlerName != tc.bowler {
			t.Fatalf("Parse(%q) = %+v, want kind=%s fielder=%q bowler=%q", tc.text, got, tc.kind, tc.fielder, tc.bowler)
		}
	}
}

func TestIsBowled_Exclusions(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"c & b Jadeja", "run out (Dube) b", "stumped b Jadeja", "hit wicket b Bumrah", "c Rohit b Bumrah", "lbw b Bumrah"} {
		if dismissal.IsBowled(text) {
			t.Fatalf("%q must not count as bowled", text)
		}
	}
	for _, text := range []string{"b Bumrah", "B Bumrah", "bowled Bumrah"} {
		if !dismissal.IsBowled(text) {
			t.Fatalf("%q should count as bowled", text)
		}
	}
}

func TestParseCoded(t *testing.T) {
	t.Parallel()

	p := dismissal.NewParser()
	fact, ok := p.ParseCoded("CAUGHT", 10, 11)
	if !ok || fact.Kind != dismissal.KindCaught || fact.FielderID != 10 || fact.BowlerID != 11 {
		t.Fatalf("unexpected caught fact %+v", fact)
	}
	fact, ok = p.ParseCoded("bowled", 0, 11)
	if !ok || fact.Kind != dismissal.KindBowled || !fact.Credited() {
		t.Fatalf("unexpected bowled fact %+v", fact)
	}
	if _, ok := p.ParseCoded("", 1, 2); ok {
		t.Fatalf("empty code must fall through to text parsing")
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	index := newIndex()
	if id, ok := dismissal.Lookup("Rohit", index); !ok || id != 10 {
		t.Fatalf("exact lookup failed")
	}
	if id, ok := dismissal.Lookup("Ravindra Jadeya", index); !ok || id != 21 {
		t.Fatalf("fuzzy lookup failed: %d %v", id, ok)
	}
	if _, ok := dismissal.Lookup("Hardik Pandya", index); ok {
		t.Fatalf("unrelated name must not resolve")
	}
}

func TestResolve_UnresolvedStaysUncredited(t *testing.T) {
	t.Parallel()

	p := dismissal.NewParser()
	fact := p.Resolve(p.Parse("c sub b Jadeja"), newIndex())
	if fact.Kind != dismissal.KindCaught {
		t.Fatalf("expected catch, got %s", fact.Kind)
	}
	if fact.Credited() {
		t.Fatalf("substitute catch should stay uncredited")
	}
	if fact.BowlerID != 21 {
		t.Fatalf("bowler should still resolve, got %d", fact.BowlerID)
	}
}

func TestExtractDroppedCatchFielder(t *testing.T) {
	t.Parallel()

	index := newIndex()

	got, ok := dismissal.ExtractDroppedCatchFielder("Bumrah to Dube, dropped! Rohit Sharma spills a sitter at long-on", []string{"dropped!"}, index)
	if !ok || got.PlayerID != 10 || got.Source != dismissal.SourceText {
		t.Fatalf("unexpected credit %+v", got)
	}

	got, ok = dismissal.ExtractDroppedCatchFielder("Put down by Jadeja at cover", nil, index)
	if !ok || got.PlayerID != 21 {
		t.Fatalf("expected jadeja, got %+v", got)
	}

	got, ok = dismissal.ExtractDroppedCatchFielder("Rohit and Bumrah converge, the latter spills it", nil, index)
	if !ok || got.PlayerID != 11 {
		t.Fatalf("expected the latter to be credited, got %+v", got)
	}

	if _, ok := dismissal.ExtractDroppedCatchFielder("Bumrah to Dube, no run", nil, index); ok {
		t.Fatalf("text without a drop keyword must be ignored")
	}
}
