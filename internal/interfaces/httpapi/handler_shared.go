package httpapi

import (
	"encoding/json"
	"time"

	"github.com/riskibarqy/cricket-stats/internal/domain/dashboard"
	"github.com/riskibarqy/cricket-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/cricket-stats/internal/domain/pipelinerun"
	"github.com/riskibarqy/cricket-stats/internal/domain/standing"
	"github.com/riskibarqy/cricket-stats/internal/domain/stats"
)

type healthDTO struct {
	Status string         `json:"status"`
	Cache  *cacheStatsDTO `json:"cache,omitempty"`
}

type cacheStatsDTO struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

type standingDTO struct {
	Position   int     `json:"position"`
	Team       string  `json:"team"`
	Matches    int     `json:"matches"`
	Won        int     `json:"won"`
	Lost       int     `json:"lost"`
	Tied       int     `json:"tied"`
	NoResult   int     `json:"noResult"`
	Points     int     `json:"points"`
	NetRunRate float64 `json:"netRunRate"`
}

type batsmanDTO struct {
	Rank       int      `json:"rank"`
	PlayerID   int64    `json:"playerId"`
	PlayerName string   `json:"playerName"`
	Team       string   `json:"team"`
	Runs       int      `json:"runs"`
	Matches    int      `json:"matches"`
	Innings    int      `json:"innings"`
	Highest    int      `json:"highest"`
	Average    *float64 `json:"average"`
	StrikeRate float64  `json:"strikeRate"`
	Hundreds   int      `json:"hundreds"`
	Fifties    int      `json:"fifties"`
	Fours      int      `json:"fours"`
	Sixes      int      `json:"sixes"`
}

type bowlerDTO struct {
	Rank         int      `json:"rank"`
	PlayerID     int64    `json:"playerId"`
	PlayerName   string   `json:"playerName"`
	Team         string   `json:"team"`
	Wickets      int      `json:"wickets"`
	Matches      int      `json:"matches"`
	Innings      int      `json:"innings"`
	Overs        float64  `json:"overs"`
	RunsConceded int      `json:"runsConceded"`
	BestFigures  string   `json:"bestFigures"`
	Average      *float64 `json:"average"`
	Economy      float64  `json:"economy"`
	FourWickets  int      `json:"fourWickets"`
	FiveWickets  int      `json:"fiveWickets"`
}

type cleanBowledDTO struct {
	BowlerID           int64   `json:"bowlerId"`
	BowlerName         string  `json:"bowlerName"`
	Team               string  `json:"team"`
	CleanBowledWickets int     `json:"cleanBowledWickets"`
	RunsConceded       int     `json:"runsConceded"`
	BallsBowled        int     `json:"ballsBowled"`
	Economy            float64 `json:"economy"`
}

type powerplayDTO struct {
	Team         string  `json:"team"`
	TotalRuns    int     `json:"totalRuns"`
	InningsCount int     `json:"inningsCount"`
	AverageRuns  float64 `json:"averageRuns"`
}

type battingMetricDTO struct {
	PlayerID               int64   `json:"playerId"`
	PlayerName             string  `json:"playerName"`
	Team                   string  `json:"team"`
	TotalRuns              int     `json:"totalRuns"`
	Fours                  int     `json:"fours"`
	Sixes                  int     `json:"sixes"`
	BoundaryDominanceRatio float64 `json:"boundaryDominanceRatio"`
}

type bowlingMetricDTO struct {
	PlayerID           int64   `json:"playerId"`
	PlayerName         string  `json:"playerName"`
	Team               string  `json:"team"`
	Wickets            int     `json:"wickets"`
	RunsConceded       int     `json:"runsConceded"`
	EffectivenessRatio float64 `json:"effectivenessRatio"`
}

type fielderCatchDTO struct {
	FielderID   int64  `json:"fielderId"`
	FielderName string `json:"fielderName"`
	Team        string `json:"team"`
	Catches     int    `json:"catches"`
}

type droppedCatchDTO struct {
	FielderID      int64  `json:"fielderId"`
	FielderName    string `json:"fielderName"`
	Team           string `json:"team"`
	DroppedCatches int    `json:"droppedCatches"`
}

type headToHeadDTO struct {
	Team1          string  `json:"team1"`
	Team2          string  `json:"team2"`
	Team1Wins      int     `json:"team1Wins"`
	Team2Wins      int     `json:"team2Wins"`
	TiesOrNoResult int     `json:"tiesOrNoResult"`
	TotalMatches   int     `json:"totalMatches"`
	Team1WinPct    float64 `json:"team1WinPct"`
	Team2WinPct    float64 `json:"team2WinPct"`
}

type latestMatchDTO struct {
	MatchID    string           `json:"matchId"`
	Team1      string           `json:"team1"`
	Team2      string           `json:"team2"`
	Team1Score string           `json:"team1Score"`
	Team2Score string           `json:"team2Score"`
	Team1Top   topPerformersDTO `json:"team1Top"`
	Team2Top   topPerformersDTO `json:"team2Top"`
	Result     string           `json:"result"`
}

type topPerformersDTO struct {
	BatsmanName       string  `json:"batsmanName"`
	BatsmanRuns       int     `json:"batsmanRuns"`
	BatsmanStrikeRate float64 `json:"batsmanStrikeRate"`
	BowlerName        string  `json:"bowlerName"`
	BowlerWickets     int     `json:"bowlerWickets"`
	BowlerEconomy     float64 `json:"bowlerEconomy"`
}

type normalizedTeamDTO struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
	Known      bool   `json:"known"`
}

type projectionDTO struct {
	Name        string          `json:"name"`
	RowCount    int             `json:"rowCount"`
	RefreshedAt string          `json:"refreshedAt"`
	Rows        json.RawMessage `json:"rows"`
}

type pipelineRunDTO struct {
	RunID      string          `json:"runId"`
	Trigger    string          `json:"trigger"`
	Status     string          `json:"status"`
	StartedAt  string          `json:"startedAt"`
	FinishedAt string          `json:"finishedAt,omitempty"`
	Summary    json.RawMessage `json:"summary,omitempty"`
	LastError  string          `json:"lastError,omitempty"`
}

func standingToDTO(v standing.TeamStanding) standingDTO {
	return standingDTO{
		Position:   v.Position,
		Team:       v.Team,
		Matches:    v.Matches,
		Won:        v.Won,
		Lost:       v.Lost,
		Tied:       v.Tied,
		NoResult:   v.NoResult,
		Points:     v.Points,
		NetRunRate: v.NetRunRate,
	}
}

func batsmanToDTO(v leaderboard.Batsman) batsmanDTO {
	return batsmanDTO{
		Rank:       v.Rank,
		PlayerID:   v.PlayerID,
		PlayerName: v.PlayerName,
		Team:       v.Team,
		Runs:       v.Runs,
		Matches:    v.Matches,
		Innings:    v.Innings,
		Highest:    v.Highest,
		Average:    v.Average,
		StrikeRate: v.StrikeRate,
		Hundreds:   v.Hundreds,
		Fifties:    v.Fifties,
		Fours:      v.Fours,
		Sixes:      v.Sixes,
	}
}

func bowlerToDTO(v leaderboard.Bowler) bowlerDTO {
	return bowlerDTO{
		Rank:         v.Rank,
		PlayerID:     v.PlayerID,
		PlayerName:   v.PlayerName,
		Team:         v.Team,
		Wickets:      v.Wickets,
		Matches:      v.Matches,
		Innings:      v.Innings,
		Overs:        v.Overs,
		RunsConceded: v.RunsConceded,
		BestFigures:  v.BestFigures,
		Average:      v.Average,
		Economy:      v.Economy,
		FourWickets:  v.FourWickets,
		FiveWickets:  v.FiveWickets,
	}
}

func cleanBowledToDTO(v stats.CleanBowledStat) cleanBowledDTO {
	return cleanBowledDTO{
		BowlerID:           v.BowlerID,
		BowlerName:         v.BowlerName,
		Team:               v.Team,
		CleanBowledWickets: v.CleanBowledWickets,
		RunsConceded:       v.RunsConceded,
		BallsBowled:        v.BallsBowled,
		Economy:            v.Economy,
	}
}

func powerplayToDTO(v stats.PowerplayStat) powerplayDTO {
	return powerplayDTO{
		Team:         v.Team,
		TotalRuns:    v.TotalRuns,
		InningsCount: v.InningsCount,
		AverageRuns:  v.AverageRuns,
	}
}

func battingMetricToDTO(v stats.BattingMetric) battingMetricDTO {
	return battingMetricDTO{
		PlayerID:               v.PlayerID,
		PlayerName:             v.PlayerName,
		Team:                   v.Team,
		TotalRuns:              v.TotalRuns,
		Fours:                  v.Fours,
		Sixes:                  v.Sixes,
		BoundaryDominanceRatio: v.BoundaryDominanceRatio,
	}
}

func bowlingMetricToDTO(v stats.BowlingMetric) bowlingMetricDTO {
	return bowlingMetricDTO{
		PlayerID:           v.PlayerID,
		PlayerName:         v.PlayerName,
		Team:               v.Team,
		Wickets:            v.Wickets,
		RunsConceded:       v.RunsConceded,
		EffectivenessRatio: v.EffectivenessRatio,
	}
}

func fielderCatchToDTO(v stats.FielderCatchStat) fielderCatchDTO {
	return fielderCatchDTO{
		FielderID:   v.FielderID,
		FielderName: v.FielderName,
		Team:        v.Team,
		Catches:     v.Catches,
	}
}

func droppedCatchToDTO(v stats.DroppedCatchStat) droppedCatchDTO {
	return droppedCatchDTO{
		FielderID:      v.FielderID,
		FielderName:    v.FielderName,
		Team:           v.Team,
		DroppedCatches: v.DroppedCatches,
	}
}

func headToHeadToDTO(v stats.HeadToHead) headToHeadDTO {
	return headToHeadDTO{
		Team1:          v.Team1,
		Team2:          v.Team2,
		Team1Wins:      v.Team1Wins,
		Team2Wins:      v.Team2Wins,
		TiesOrNoResult: v.TiesOrNoResult,
		TotalMatches:   v.TotalMatches,
		Team1WinPct:    v.Team1WinPct,
		Team2WinPct:    v.Team2WinPct,
	}
}

func latestMatchToDTO(v stats.LatestMatchSummary) latestMatchDTO {
	return latestMatchDTO{
		MatchID:    v.MatchID,
		Team1:      v.Team1,
		Team2:      v.Team2,
		Team1Score: v.Team1Score,
		Team2Score: v.Team2Score,
		Team1Top:   topPerformersToDTO(v.Team1Top),
		Team2Top:   topPerformersToDTO(v.Team2Top),
		Result:     v.Result,
	}
}

func topPerformersToDTO(v stats.TopPerformers) topPerformersDTO {
	return topPerformersDTO{
		BatsmanName:       v.BatsmanName,
		BatsmanRuns:       v.BatsmanRuns,
		BatsmanStrikeRate: v.BatsmanStrikeRate,
		BowlerName:        v.BowlerName,
		BowlerWickets:     v.BowlerWickets,
		BowlerEconomy:     v.BowlerEconomy,
	}
}

// projectionToDTO embeds the stored payload as-is; it is already JSON.
func projectionToDTO(v dashboard.Projection) projectionDTO {
	rows := json.RawMessage(v.Payload)
	if len(rows) == 0 {
		rows = json.RawMessage(`[]`)
	}
	return projectionDTO{
		Name:        v.Name,
		RowCount:    v.RowCount,
		RefreshedAt: formatTime(v.RefreshedAt),
		Rows:        rows,
	}
}

func pipelineRunToDTO(v pipelinerun.Run) pipelineRunDTO {
	out := pipelineRunDTO{
		RunID:     v.RunID,
		Trigger:   v.Trigger,
		Status:    string(v.Status),
		StartedAt: formatTime(v.StartedAt),
		LastError: v.LastError,
	}
	if v.FinishedAt != nil {
		out.FinishedAt = formatTime(*v.FinishedAt)
	}
	if len(v.Summary) > 0 {
		out.Summary = json.RawMessage(v.Summary)
	}
	return out
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
