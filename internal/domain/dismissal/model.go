package dismissal

// Kind classifies how a batter was dismissed.
type Kind string

const (
	KindBowled  Kind = "bowled"
	KindCaught  Kind = "caught"
	KindRunOut  Kind = "run_out"
	KindStumped Kind = "stumped"
	KindNotOut  Kind = "not_out"
	KindOther   Kind = "other"
)

// IsWicket reports whether the kind takes a wicket.
func (k Kind) IsWicket() bool {
	return k != KindNotOut && k != ""
}

// Fact is one parsed dismissal. IDs are zero when no credit could be resolved.
type Fact struct {
	Kind        Kind
	FielderName string
	BowlerName  string
	FielderID   int64
	BowlerID    int64
}

// Credited reports whether the fact names a resolved player for its kind.
func (f Fact) Credited() bool {
	switch f.Kind {
	case KindCaught, KindRunOut, KindStumped:
		return f.FielderID > 0
	case KindBowled:
		return f.BowlerID > 0
	default:
		return false
	}
}

// Index is the per-match lowercase name index a parser resolves against.
type Index interface {
	IDForName(name string) (int64, bool)
	IndexedNames() []string
}

// DroppedCatch is a heuristic credit recovered from commentary text.
// PlayerID is zero when the captured name could not be resolved.
type DroppedCatch struct {
	Name     string
	PlayerID int64
	Source   string
}

const (
	SourceBold  = "bold"
	SourceText  = "text"
	SourceFuzzy = "fuzzy"
)
