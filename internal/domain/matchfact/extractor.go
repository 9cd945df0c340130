package matchfact

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/riskibarqy/cricket-stats/internal/domain/dismissal"
	"github.com/riskibarqy/cricket-stats/internal/domain/identity"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/domain/team"
)

// WinnerSimilarity is the exclusive floor for accepting a status-text winner.
const WinnerSimilarity = 80

var (
	sequencePattern  = regexp.MustCompile(`(?i)(\d+)(?:st|nd|rd|th)\s+Match`)
	winnerPattern    = regexp.MustCompile(`(?i)^(.+?)\s+(?:won by|beat)\b`)
	marginRunsPat    = regexp.MustCompile(`(?i)\bby\s+(\d+)\s+run`)
	marginWicketsPat = regexp.MustCompile(`(?i)\bby\s+(\d+)\s+(?:wicket|wkt)`)
	superOverPattern = regexp.MustCompile(`(?i)\((.*?) won the super over\)`)
)

// Extractor turns a decoded scorecard into typed facts.
type Extractor struct {
	resolver *identity.Resolver
	parser   *dismissal.Parser
}

func NewExtractor(resolver *identity.Resolver, parser *dismissal.Parser) *Extractor {
	if resolver == nil {
		resolver = identity.NewResolver(nil)
	}
	if parser == nil {
		parser = dismissal.NewParser()
	}
	return &Extractor{resolver: resolver, parser: parser}
}

// Resolver returns the identity resolver used by the extractor.
func (e *Extractor) Resolver() *identity.Resolver {
	return e.resolver
}

// Parser returns the dismissal parser used by the extractor.
func (e *Extractor) Parser() *dismissal.Parser {
	return e.parser
}

// ExtractPayload decodes and extracts in one step.
func (e *Extractor) ExtractPayload(matchID string, payload []byte) (Facts, error) {
	doc, err := scorecard.Decode(matchID, payload)
	if err != nil {
		return Facts{}, fmt.Errorf("extract match=%s: %w", matchID, err)
	}
	return e.Extract(doc), nil
}

// Extract builds the full fact set for one match.
func (e *Extractor) Extract(doc scorecard.Document) Facts {
	players := e.resolver.Build(doc)
	normalizer := e.resolver.Normalizer()

	out := Facts{
		Players:  players,
		Metadata: e.metadata(doc, players.Team1, players.Team2),
		Innings:  make([]InningsFact, 0, len(doc.Innings)),
	}

	for _, innings := range doc.Innings {
		batting := normalizer.Normalize(innings.BattingTeam)
		fact := InningsFact{
			MatchID:     doc.MatchID,
			Sequence:    innings.InningsID,
			BattingTeam: batting,
			BowlingTeam: identity.BowlingTeam(players.Team1, players.Team2, batting),
			Score:       atoi(innings.Score),
			Wickets:     atoi(innings.Wickets),
			Extras:      innings.Extras,
		}
		if innings.Powerplay != nil {
			runs := innings.Powerplay.Runs
			fact.PowerplayRuns = &runs
		}

		for _, b := range innings.Batters {
			event := e.battingEvent(b, players)
			out.Tally.add(event.Fact)
			fact.Batting = append(fact.Batting, event)
		}
		for _, b := range innings.Bowlers {
			fact.Bowling = append(fact.Bowling, bowlingEvent(b, players))
		}

		out.Innings = append(out.Innings, fact)
	}

	return out
}

func (e *Extractor) battingEvent(b scorecard.Batter, players *identity.Map) BattingEvent {
	event := BattingEvent{
		PlayerID:  b.ID,
		Name:      displayName(b.ID, players, b.FullName, b.ShortName, b.Name),
		Runs:      b.Runs,
		Balls:     b.Balls,
		Fours:     b.Fours,
		Sixes:     b.Sixes,
		Dismissal: strings.TrimSpace(b.Dismissal),
	}
	if event.Dismissal == "" {
		event.Dismissal = "not out"
	}
	event.IsOut = !strings.Contains(strings.ToLower(event.Dismissal), "not out")

	if b.StrikeRate != nil {
		event.StrikeRate = *b.StrikeRate
	} else if b.Balls > 0 {
		event.StrikeRate = Round(float64(b.Runs)/float64(b.Balls)*100, 2)
	}

	fact, coded := e.parser.ParseCoded(b.WicketCode, b.FielderID, b.BowlerID)
	if coded {
		parsed := e.parser.Parse(event.Dismissal)
		fact.FielderName, fact.BowlerName = parsed.FielderName, parsed.BowlerName
	} else {
		fact = e.parser.Parse(event.Dismissal)
	}
	event.Fact = e.parser.Resolve(fact, players)

	return event
}

func bowlingEvent(b scorecard.Bowler, players *identity.Map) BowlingEvent {
	event := BowlingEvent{
		PlayerID:   b.ID,
		Name:       displayName(b.ID, players, b.FullName, b.ShortName, b.Name),
		Overs:      b.OversValue(),
		LegalBalls: b.LegalBalls(),
		Runs:       b.Runs,
		Wickets:    b.Wickets,
		Maidens:    b.Maidens,
	}
	if b.Economy != nil {
		event.Economy = *b.Economy
	} else if event.LegalBalls > 0 {
		event.Economy = Round(float64(b.Runs)*6/float64(event.LegalBalls), 2)
	}
	return event
}

func (e *Extractor) metadata(doc scorecard.Document, team1, team2 string) Metadata {
	meta := Metadata{
		MatchID:        doc.MatchID,
		Team1:          team1,
		Team2:          team2,
		Status:         strings.TrimSpace(doc.Status),
		TossWinner:     firstNonEmpty(doc.Header.TossWinner, doc.Info.TossWinner),
		TossDecision:   firstNonEmpty(doc.Header.TossDecision, doc.Info.TossDecision),
		SeriesName:     doc.Info.SeriesName,
		MatchType:      doc.Info.MatchType,
		MatchFormat:    doc.Info.MatchFormat,
		StartTimestamp: doc.Header.StartTimestamp,
		Sequence:       ParseSequence(doc.SeoTitle),
		Result:         ResultUnknown,
	}

	status := strings.ToLower(meta.Status)
	bothKnown := team.IsKnown(team1) && team.IsKnown(team2)
	switch {
	case meta.Status == "",
		strings.Contains(status, "no result"),
		strings.Contains(status, "abandoned"),
		bothKnown && !doc.HasBattingData():
		meta.Result = ResultNoResult
		return meta
	case strings.Contains(status, "tie"):
		meta.Result = ResultTie
		meta.SuperOverWinner = e.superOverWinner(meta.Status, team1, team2)
		return meta
	}

	meta.Winner = e.winner(doc, meta.Status, team1, team2)
	if team.IsKnown(meta.Winner) {
		meta.Result = ResultWin
	}
	meta.MarginRuns, meta.MarginWickets = ParseMargin(meta.Status)

	return meta
}

func (e *Extractor) winner(doc scorecard.Document, status, team1, team2 string) string {
	normalizer := e.resolver.Normalizer()
	if explicit := normalizer.Normalize(doc.Header.Winner); team.IsKnown(explicit) {
		return explicit
	}

	m := winnerPattern.FindStringSubmatch(strings.TrimSpace(status))
	if m == nil {
		return team.Unknown
	}
	return MatchKnownTeam(normalizer.Normalize(m[1]), team1, team2)
}

func (e *Extractor) superOverWinner(status, team1, team2 string) string {
	m := superOverPattern.FindStringSubmatch(status)
	if m == nil {
		return ""
	}
	winner := MatchKnownTeam(e.resolver.Normalizer().Normalize(m[1]), team1, team2)
	if !team.IsKnown(winner) {
		return ""
	}
	return winner
}

// MatchKnownTeam returns whichever of team1/team2 candidate resembles above
// WinnerSimilarity, or Unknown.
func MatchKnownTeam(candidate, team1, team2 string) string {
	if !team.IsKnown(candidate) {
		return team.Unknown
	}
	lower := strings.ToLower(candidate)
	for _, known := range []string{team1, team2} {
		if team.IsKnown(known) && team.Ratio(lower, strings.ToLower(known)) > WinnerSimilarity {
			return known
		}
	}
	return team.Unknown
}

// ParseSequence reads the match number out of an seo title such as
// "CSK vs MI, 5th Match, Indian Premier League 2025".
func ParseSequence(seoTitle string) *int {
	m := sequencePattern.FindStringSubmatch(seoTitle)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

// ParseMargin reads "by N runs" or "by N wkts" out of a status line.
func ParseMargin(status string) (*int, *int) {
	if m := marginRunsPat.FindStringSubmatch(status); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return &n, nil
		}
	}
	if m := marginWicketsPat.FindStringSubmatch(status); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return nil, &n
		}
	}
	return nil, nil
}

// Round rounds half away from zero to the given decimal places.
func Round(value float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(value*pow) / pow
}

func displayName(id int64, players *identity.Map, raw ...string) string {
	if p, ok := players.Get(id); ok && !identity.IsGenericName(p.Name) {
		return p.Name
	}
	for _, name := range raw {
		if !identity.IsGenericName(name) {
			return strings.TrimSpace(name)
		}
	}
	return identity.PlaceholderName(id)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func atoi(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		f, ferr := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return n
}
