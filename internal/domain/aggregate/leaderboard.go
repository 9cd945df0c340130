package aggregate

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/riskibarqy/cricket-stats/internal/domain/identity"
	"github.com/riskibarqy/cricket-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/cricket-stats/internal/domain/matchfact"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/domain/silver"
)

type inningsRef struct {
	matchID string
	innings int
}

type batsmanAcc struct {
	item    leaderboard.Batsman
	balls   int
	outs    int
	matches map[string]struct{}
	innings map[inningsRef]struct{}
}

// TopBatsmen ranks run scorers grouped by (player, team).
func TopBatsmen(rows []silver.Batting, size int) []leaderboard.Batsman {
	if size <= 0 {
		size = leaderboard.DefaultSize
	}

	accs := make(map[playerTeamKey]*batsmanAcc)
	for _, row := range rows {
		if identity.IsGenericName(row.PlayerName) || !known(row.Team) {
			continue
		}
		key := playerTeamKey{id: row.PlayerID, team: row.Team}
		acc, ok := accs[key]
		if !ok {
			acc = &batsmanAcc{
				item:    leaderboard.Batsman{PlayerID: row.PlayerID, Team: row.Team},
				matches: make(map[string]struct{}),
				innings: make(map[inningsRef]struct{}),
			}
			accs[key] = acc
		}
		acc.item.PlayerName = preferredName(acc.item.PlayerName, row.PlayerName)
		acc.item.Runs += row.Runs
		acc.item.Fours += row.Fours
		acc.item.Sixes += row.Sixes
		acc.balls += row.Balls
		acc.matches[row.MatchID] = struct{}{}
		acc.innings[inningsRef{matchID: row.MatchID, innings: row.InningsID}] = struct{}{}
		if row.Runs > acc.item.Highest {
			acc.item.Highest = row.Runs
		}
		switch {
		case row.Runs >= 100:
			acc.item.Hundreds++
		case row.Runs >= 50:
			acc.item.Fifties++
		}
		if row.IsOut {
			acc.outs++
		}
	}

	out := make([]leaderboard.Batsman, 0, len(accs))
	for _, key := range sortedKeys(accs) {
		acc := accs[key]
		if acc.item.Runs <= 0 {
			continue
		}
		item := acc.item
		item.Matches = len(acc.matches)
		item.Innings = len(acc.innings)
		if acc.outs > 0 {
			avg := matchfact.Round(float64(item.Runs)/float64(acc.outs), 2)
			item.Average = &avg
		}
		if acc.balls > 0 {
			item.StrikeRate = matchfact.Round(float64(item.Runs)/float64(acc.balls)*100, 2)
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Runs != out[j].Runs {
			return out[i].Runs > out[j].Runs
		}
		if ai, aj := averageOrFloor(out[i].Average), averageOrFloor(out[j].Average); ai != aj {
			return ai > aj
		}
		return out[i].StrikeRate > out[j].StrikeRate
	})
	return rankBatsmen(out, size)
}

type bowlerAcc struct {
	item        leaderboard.Bowler
	balls       int
	matches     map[string]struct{}
	innings     map[inningsRef]struct{}
	bestWickets int
	bestRuns    int
}

// TopBowlers ranks wicket takers grouped by player id. The team is the first
// one seen in match order.
func TopBowlers(rows []silver.Bowling, size int) []leaderboard.Bowler {
	if size <= 0 {
		size = leaderboard.DefaultSize
	}

	ordered := append([]silver.Bowling(nil), rows...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].MatchID != ordered[j].MatchID {
			return ordered[i].MatchID < ordered[j].MatchID
		}
		return ordered[i].InningsID < ordered[j].InningsID
	})

	accs := make(map[int64]*bowlerAcc)
	ids := make([]int64, 0)
	for _, row := range ordered {
		if strings.HasPrefix(strings.TrimSpace(row.PlayerName), "Unknown") || identity.IsGenericName(row.PlayerName) {
			continue
		}
		acc, ok := accs[row.PlayerID]
		if !ok {
			acc = &bowlerAcc{
				item:     leaderboard.Bowler{PlayerID: row.PlayerID, Team: row.Team},
				matches:  make(map[string]struct{}),
				innings:  make(map[inningsRef]struct{}),
				bestRuns: math.MaxInt,
			}
			accs[row.PlayerID] = acc
			ids = append(ids, row.PlayerID)
		}
		acc.item.PlayerName = preferredName(acc.item.PlayerName, row.PlayerName)
		acc.item.Wickets += row.Wickets
		acc.item.RunsConceded += row.Runs
		acc.balls += row.BallsBowled
		acc.matches[row.MatchID] = struct{}{}
		acc.innings[inningsRef{matchID: row.MatchID, innings: row.InningsID}] = struct{}{}
		switch {
		case row.Wickets >= 5:
			acc.item.FiveWickets++
		case row.Wickets == 4:
			acc.item.FourWickets++
		}
		if row.Wickets > 0 && (row.Wickets > acc.bestWickets || (row.Wickets == acc.bestWickets && row.Runs < acc.bestRuns)) {
			acc.bestWickets, acc.bestRuns = row.Wickets, row.Runs
		}
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]leaderboard.Bowler, 0, len(accs))
	for _, id := range ids {
		acc := accs[id]
		if acc.item.Wickets <= 0 || !known(acc.item.Team) {
			continue
		}
		item := acc.item
		item.Matches = len(acc.matches)
		item.Innings = len(acc.innings)
		item.Overs = scorecard.BallsToOvers(acc.balls)
		item.Economy = Economy(item.RunsConceded, acc.balls)
		avg := matchfact.Round(float64(item.RunsConceded)/float64(item.Wickets), 2)
		item.Average = &avg
		if acc.bestWickets > 0 {
			item.BestFigures = fmt.Sprintf("%d/%d", acc.bestWickets, acc.bestRuns)
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wickets != out[j].Wickets {
			return out[i].Wickets > out[j].Wickets
		}
		if out[i].Economy != out[j].Economy {
			return out[i].Economy < out[j].Economy
		}
		return *out[i].Average < *out[j].Average
	})
	if len(out) > size {
		out = out[:size]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

func averageOrFloor(avg *float64) float64 {
	if avg == nil {
		return -1
	}
	return *avg
}

func rankBatsmen(items []leaderboard.Batsman, size int) []leaderboard.Batsman {
	if len(items) > size {
		items = items[:size]
	}
	for i := range items {
		items[i].Rank = i + 1
	}
	return items
}
