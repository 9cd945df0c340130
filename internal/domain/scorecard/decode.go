package scorecard

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

var ErrEmptyDocument = errors.New("empty scorecard document")

// Decode parses a raw scorecard payload. Shape detection happens per innings.
func Decode(matchID string, payload []byte) (Document, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return Document{}, ErrEmptyDocument
	}

	var root map[string]any
	if err := sonic.Unmarshal(payload, &root); err != nil {
		return Document{}, fmt.Errorf("decode scorecard match=%s: %w", matchID, err)
	}
	if root == nil {
		return Document{}, ErrEmptyDocument
	}

	return FromTree(matchID, root), nil
}

// FromTree builds a Document from an already decoded JSON tree.
func FromTree(matchID string, root map[string]any) Document {
	header := child(root, "matchHeader")
	doc := Document{
		MatchID:  matchID,
		Status:   firstString(root, "status"),
		SeoTitle: firstString(child(root, "appIndex"), "seoTitle"),
		Header:   decodeHeader(header),
		Info:     decodeInfo(child(root, "matchInfo")),
	}
	if doc.Status == "" {
		doc.Status = firstString(header, "status")
	}

	inningsList := records(root["scoreCard"])
	if len(inningsList) == 0 {
		inningsList = records(root["scorecard"])
	}
	doc.Innings = make([]Innings, 0, len(inningsList))
	for i, raw := range inningsList {
		doc.Innings = append(doc.Innings, decodeInnings(i, raw))
	}

	return doc
}

// HasBattingData reports whether any innings recorded a batter.
func (d Document) HasBattingData() bool {
	for _, innings := range d.Innings {
		if innings.HasBattingData() {
			return true
		}
	}
	return false
}

func decodeHeader(m object) Header {
	h := Header{
		Team1:          firstString(child(m, "team1"), "name", "teamName"),
		Team2:          firstString(child(m, "team2"), "name", "teamName"),
		Winner:         firstString(child(m, "result"), "winningTeam"),
		ResultType:     firstString(child(m, "result"), "resultType"),
		TossWinner:     firstString(child(m, "tossResults"), "tossWinnerName"),
		TossDecision:   firstString(child(m, "tossResults"), "decision"),
		StartTimestamp: firstID(m, "matchStartTimestamp"),
	}
	for _, info := range records(m["matchTeamInfo"]) {
		h.TeamInfo = append(h.TeamInfo, TeamInfo{
			TeamName:        firstString(info, "teamName"),
			BattingTeamName: firstString(info, "battingTeamName"),
			BowlingTeamName: firstString(info, "bowlingTeamName"),
		})
	}
	return h
}

func decodeInfo(m object) Info {
	info := Info{
		SeriesName:   firstString(child(m, "series"), "name"),
		MatchType:    firstString(m, "matchTypeActualKey"),
		MatchFormat:  firstString(m, "matchFormatActualKey"),
		TossWinner:   firstString(m, "tossWinnerActualKey"),
		TossDecision: firstString(m, "tossDecisionActualKey"),
	}
	for _, item := range records(m["teams"]) {
		info.Teams = append(info.Teams, InfoTeam{
			Name:      firstString(item, "name"),
			ShortName: firstString(item, "shortName"),
		})
	}
	return info
}

func decodeInnings(position int, m object) Innings {
	in := Innings{
		Position:  position,
		InningsID: position + 1,
		Score:     firstString(m, "score"),
		Wickets:   firstString(m, "wickets"),
	}
	if id, ok := intOf(m["inningsId"]); ok {
		in.InningsID = id
	}

	batDetails := child(m, "batTeamDetails")
	bowlDetails := child(m, "bowlTeamDetails")
	switch {
	case has(m, "batTeamDetails"):
		in.Variant = VariantNested
		in.BattingTeam = firstString(batDetails, "batTeamName")
	case has(m, "batsman") || has(m, "bowler") || has(m, "batTeamName"):
		in.Variant = VariantFlat
		in.BattingTeam = firstString(m, "batTeamName")
	}

	if scoreDetails := child(m, "scoreDetails"); scoreDetails != nil {
		if in.Score == "" {
			in.Score = firstString(scoreDetails, "runs")
		}
		if in.Wickets == "" {
			in.Wickets = firstString(scoreDetails, "wickets")
		}
	}

	extras := child(m, "extras")
	if extras == nil {
		extras = child(m, "extrasData")
	}
	in.Extras = firstInt(extras, "total")

	// Flat lists win when both shapes are present so no row is counted twice.
	if flat := records(m["batsman"]); len(flat) > 0 {
		for _, raw := range flat {
			in.Batters = append(in.Batters, decodeBatter(raw, VariantFlat))
		}
	} else {
		for _, raw := range records(batDetails["batsmenData"]) {
			in.Batters = append(in.Batters, decodeBatter(raw, VariantNested))
		}
	}
	if flat := records(m["bowler"]); len(flat) > 0 {
		for _, raw := range flat {
			in.Bowlers = append(in.Bowlers, decodeBowler(raw, VariantFlat))
		}
	} else {
		for _, raw := range records(bowlDetails["bowlersData"]) {
			in.Bowlers = append(in.Bowlers, decodeBowler(raw, VariantNested))
		}
	}

	in.Powerplay = decodePowerplay(m)
	return in
}

func decodeBatter(m object, variant Variant) Batter {
	b := Batter{
		Variant:    variant,
		FullName:   firstString(m, "fullName"),
		ShortName:  firstString(m, "batName"),
		Name:       firstString(m, "name"),
		Runs:       firstInt(m, "r", "runs"),
		Balls:      firstInt(m, "b", "balls"),
		Fours:      firstInt(m, "4s", "fours"),
		Sixes:      firstInt(m, "6s", "sixes"),
		Dismissal:  firstString(m, "outDec", "outDesc"),
		WicketCode: firstString(m, "wicketCode"),
		FielderID:  firstID(m, "fielderId1"),
		BowlerID:   firstID(m, "bowlerId"),
	}
	if variant == VariantNested {
		b.ID = firstID(m, "batId", "id")
	} else {
		b.ID = firstID(m, "id", "batId")
	}
	if sr, ok := firstFloat(m, "strkRate", "strikeRate"); ok {
		b.StrikeRate = &sr
	}
	return b
}

func decodeBowler(m object, variant Variant) Bowler {
	b := Bowler{
		Variant:   variant,
		FullName:  firstString(m, "fullName"),
		ShortName: firstString(m, "bowlName"),
		Name:      firstString(m, "name"),
		Overs:     stringOf(m["ov"]),
		Runs:      firstInt(m, "r", "runs"),
		Wickets:   firstInt(m, "w", "wickets"),
		Maidens:   firstInt(m, "m", "maidens"),
	}
	if b.Overs == "" {
		b.Overs = stringOf(m["overs"])
	}
	if variant == VariantNested {
		b.ID = firstID(m, "bowlerId", "id")
	} else {
		b.ID = firstID(m, "id", "bowlerId")
	}
	if balls, ok := intOf(m["balls"]); ok {
		b.Balls = &balls
	}
	if econ, ok := firstFloat(m, "econ", "economy"); ok {
		b.Economy = &econ
	}
	return b
}

func decodePowerplay(m object) *Powerplay {
	if has(m, "batTeamDetails") && has(m, "ppData") {
		segment := child(child(m, "ppData"), "pp_1")
		if segment == nil || !has(segment, "runsScored") {
			return nil
		}
		oversTo, _ := floatOf(segment["ppOversTo"])
		pp := Powerplay{
			Type:    firstString(segment, "ppType"),
			OversTo: oversTo,
			Runs:    firstInt(segment, "runsScored"),
		}
		if !pp.IsMandatorySixOvers() {
			return nil
		}
		return &pp
	}

	if has(m, "pp") && has(m, "batTeamName") {
		for _, segment := range records(child(m, "pp")["powerPlay"]) {
			if !has(segment, "run") {
				continue
			}
			oversTo, _ := floatOf(segment["ovrTo"])
			pp := Powerplay{
				Type:    firstString(segment, "ppType"),
				OversTo: oversTo,
				Runs:    firstInt(segment, "run"),
			}
			if pp.IsMandatorySixOvers() {
				return &pp
			}
		}
	}

	return nil
}

// DecodeCommentary parses a raw commentary payload.
func DecodeCommentary(matchID string, payload []byte) (Commentary, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return Commentary{}, ErrEmptyDocument
	}

	var root map[string]any
	if err := sonic.Unmarshal(payload, &root); err != nil {
		return Commentary{}, fmt.Errorf("decode commentary match=%s: %w", matchID, err)
	}

	out := Commentary{MatchID: matchID}
	for _, item := range records(root["commentaryList"]) {
		entry := CommentaryEntry{Text: firstString(item, "commText")}
		bold := child(child(item, "commentaryFormats"), "bold")
		if values, ok := bold["formatValue"].([]any); ok {
			for _, value := range values {
				if s := stringOf(value); s != "" {
					entry.Bold = append(entry.Bold, s)
				}
			}
		}
		if entry.Text == "" {
			continue
		}
		// Bold spans are referenced from the text as B0$, B1$, ...
		for i, value := range entry.Bold {
			entry.Text = strings.ReplaceAll(entry.Text, "B"+strconv.Itoa(i)+"$", value)
		}
		out.Entries = append(out.Entries, entry)
	}

	return out, nil
}
