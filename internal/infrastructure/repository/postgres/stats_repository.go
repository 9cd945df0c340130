package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-stats/internal/domain/stats"
	qb "github.com/riskibarqy/cricket-stats/internal/platform/querybuilder"
)

const (
	cleanBowledTable   = "gold_bowler_clean_bowled_stats"
	powerplayTable     = "gold_team_powerplay_stats"
	battingMetricTable = "gold_batsman_performance_metrics"
	bowlingMetricTable = "gold_bowler_performance_metrics"
	headToHeadTable    = "gold_team_head_to_head_stats"
	fielderCatchTable  = "gold_fielder_catch_stats"
	droppedCatchTable  = "gold_fielder_dropped_catch_stats"
	latestMatchTable   = "gold_latest_match_summary"

	defaultStatsLimit = 100
)

var customGoldTables = []string{
	cleanBowledTable,
	powerplayTable,
	battingMetricTable,
	bowlingMetricTable,
	headToHeadTable,
	fielderCatchTable,
	droppedCatchTable,
	latestMatchTable,
}

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) TruncateAll(ctx context.Context) error {
	query, err := qb.Truncate(customGoldTables...)
	if err != nil {
		return fmt.Errorf("build truncate gold query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return classify(fmt.Errorf("truncate custom gold tables: %w", err))
	}
	return nil
}

// upsert writes one row in its own transaction.
func (r *StatsRepository) upsert(ctx context.Context, table, label string, model any, conflict ...string) error {
	return withTx(ctx, r.db, "upsert "+table, func(tx *sqlx.Tx) error {
		query, args, err := qb.UpsertModel(table, model, conflict...)
		if err != nil {
			return fmt.Errorf("build upsert %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert %s %s: %w", table, label, err)
		}
		return nil
	})
}

func (r *StatsRepository) UpsertCleanBowled(ctx context.Context, item stats.CleanBowledStat) error {
	label := fmt.Sprintf("bowler_id=%d team=%s", item.BowlerID, item.Team)
	return r.upsert(ctx, cleanBowledTable, label, cleanBowledModel(item), "bowler_id", "team")
}

func (r *StatsRepository) UpsertPowerplay(ctx context.Context, item stats.PowerplayStat) error {
	return r.upsert(ctx, powerplayTable, "team="+item.Team, powerplayModel(item), "team")
}

func (r *StatsRepository) UpsertBattingMetric(ctx context.Context, item stats.BattingMetric) error {
	label := fmt.Sprintf("batsman_id=%d team=%s", item.PlayerID, item.Team)
	return r.upsert(ctx, battingMetricTable, label, battingMetricModel(item), "batsman_id", "team")
}

func (r *StatsRepository) UpsertBowlingMetric(ctx context.Context, item stats.BowlingMetric) error {
	label := fmt.Sprintf("bowler_id=%d team=%s", item.PlayerID, item.Team)
	return r.upsert(ctx, bowlingMetricTable, label, bowlingMetricModel(item), "bowler_id", "team")
}

func (r *StatsRepository) UpsertHeadToHead(ctx context.Context, item stats.HeadToHead) error {
	label := fmt.Sprintf("team1=%s team2=%s", item.Team1, item.Team2)
	return r.upsert(ctx, headToHeadTable, label, headToHeadModel(item), "team1", "team2")
}

func (r *StatsRepository) UpsertFielderCatch(ctx context.Context, item stats.FielderCatchStat) error {
	label := fmt.Sprintf("fielder_id=%d team=%s", item.FielderID, item.Team)
	return r.upsert(ctx, fielderCatchTable, label, fielderCatchModel(item), "fielder_id", "team")
}

func (r *StatsRepository) UpsertDroppedCatch(ctx context.Context, item stats.DroppedCatchStat) error {
	label := fmt.Sprintf("fielder_id=%d team=%s", item.FielderID, item.Team)
	return r.upsert(ctx, droppedCatchTable, label, droppedCatchModel(item), "fielder_id", "team")
}

func (r *StatsRepository) UpsertLatestMatch(ctx context.Context, item stats.LatestMatchSummary) error {
	return r.upsert(ctx, latestMatchTable, "match_id="+item.MatchID, latestToModel(item), "match_id")
}

func (r *StatsRepository) ListCleanBowled(ctx context.Context, limit int) ([]stats.CleanBowledStat, error) {
	var rows []cleanBowledModel
	err := r.list(ctx, cleanBowledTable, cleanBowledModel{}, &rows, limit,
		"total_clean_bowled_wickets DESC", "economy_rate ASC", "bowler_name ASC")
	if err != nil {
		return nil, err
	}
	out := make([]stats.CleanBowledStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.CleanBowledStat(row))
	}
	return out, nil
}

func (r *StatsRepository) ListPowerplay(ctx context.Context) ([]stats.PowerplayStat, error) {
	var rows []powerplayModel
	if err := r.list(ctx, powerplayTable, powerplayModel{}, &rows, 0, "average_powerplay_runs DESC", "team ASC"); err != nil {
		return nil, err
	}
	out := make([]stats.PowerplayStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.PowerplayStat(row))
	}
	return out, nil
}

func (r *StatsRepository) ListBattingMetrics(ctx context.Context, limit int) ([]stats.BattingMetric, error) {
	var rows []battingMetricModel
	err := r.list(ctx, battingMetricTable, battingMetricModel{}, &rows, limitOrDefault(limit, defaultStatsLimit),
		"total_runs DESC", "batsman_name ASC")
	if err != nil {
		return nil, err
	}
	out := make([]stats.BattingMetric, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.BattingMetric(row))
	}
	return out, nil
}

func (r *StatsRepository) ListBowlingMetrics(ctx context.Context, limit int) ([]stats.BowlingMetric, error) {
	var rows []bowlingMetricModel
	err := r.list(ctx, bowlingMetricTable, bowlingMetricModel{}, &rows, limitOrDefault(limit, defaultStatsLimit),
		"total_wickets DESC", "effectiveness_ratio DESC", "bowler_name ASC")
	if err != nil {
		return nil, err
	}
	out := make([]stats.BowlingMetric, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.BowlingMetric(row))
	}
	return out, nil
}

func (r *StatsRepository) ListFielderCatches(ctx context.Context, limit int) ([]stats.FielderCatchStat, error) {
	var rows []fielderCatchModel
	err := r.list(ctx, fielderCatchTable, fielderCatchModel{}, &rows, limitOrDefault(limit, defaultStatsLimit),
		"total_catches_taken DESC", "fielder_name ASC")
	if err != nil {
		return nil, err
	}
	out := make([]stats.FielderCatchStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.FielderCatchStat(row))
	}
	return out, nil
}

func (r *StatsRepository) ListDroppedCatches(ctx context.Context, limit int) ([]stats.DroppedCatchStat, error) {
	var rows []droppedCatchModel
	err := r.list(ctx, droppedCatchTable, droppedCatchModel{}, &rows, limitOrDefault(limit, defaultStatsLimit),
		"dropped_catches DESC", "fielder_name ASC")
	if err != nil {
		return nil, err
	}
	out := make([]stats.DroppedCatchStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.DroppedCatchStat(row))
	}
	return out, nil
}

func (r *StatsRepository) GetHeadToHead(ctx context.Context, team1, team2 string) (stats.HeadToHead, bool, error) {
	cols, err := qb.Columns(headToHeadModel{})
	if err != nil {
		return stats.HeadToHead{}, false, err
	}
	query, args, err := qb.Select(cols...).
		From(headToHeadTable).
		Where(qb.Eq("team1", team1), qb.Eq("team2", team2)).
		Limit(1).
		ToSQL()
	if err != nil {
		return stats.HeadToHead{}, false, fmt.Errorf("build get head to head query: %w", err)
	}

	var row headToHeadModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return stats.HeadToHead{}, false, nil
		}
		return stats.HeadToHead{}, false, classify(fmt.Errorf("get head to head team1=%s team2=%s: %w", team1, team2, err))
	}
	return stats.HeadToHead(row), true, nil
}

func (r *StatsRepository) GetLatestMatch(ctx context.Context) (stats.LatestMatchSummary, bool, error) {
	cols, err := qb.Columns(latestMatchModel{})
	if err != nil {
		return stats.LatestMatchSummary{}, false, err
	}
	query, args, err := qb.Select(cols...).From(latestMatchTable).OrderBy(orderByMatchID(true)).Limit(1).ToSQL()
	if err != nil {
		return stats.LatestMatchSummary{}, false, fmt.Errorf("build get latest match query: %w", err)
	}

	var row latestMatchModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return stats.LatestMatchSummary{}, false, nil
		}
		return stats.LatestMatchSummary{}, false, classify(fmt.Errorf("get latest match: %w", err))
	}
	return latestFromModel(row), true, nil
}

func (r *StatsRepository) list(ctx context.Context, table string, model any, dest any, limit int, orderBy ...string) error {
	return selectOrdered(ctx, r.db, table, model, dest, limit, orderBy...)
}

func latestToModel(item stats.LatestMatchSummary) latestMatchModel {
	return latestMatchModel{
		MatchID:               item.MatchID,
		Team1:                 item.Team1,
		Team2:                 item.Team2,
		Team1Score:            item.Team1Score,
		Team2Score:            item.Team2Score,
		Team1TopBatsman:       item.Team1Top.BatsmanName,
		Team1TopBatsmanRuns:   item.Team1Top.BatsmanRuns,
		Team1TopBatsmanSR:     item.Team1Top.BatsmanStrikeRate,
		Team1TopBowler:        item.Team1Top.BowlerName,
		Team1TopBowlerWickets: item.Team1Top.BowlerWickets,
		Team1TopBowlerEconomy: item.Team1Top.BowlerEconomy,
		Team2TopBatsman:       item.Team2Top.BatsmanName,
		Team2TopBatsmanRuns:   item.Team2Top.BatsmanRuns,
		Team2TopBatsmanSR:     item.Team2Top.BatsmanStrikeRate,
		Team2TopBowler:        item.Team2Top.BowlerName,
		Team2TopBowlerWickets: item.Team2Top.BowlerWickets,
		Team2TopBowlerEconomy: item.Team2Top.BowlerEconomy,
		Result:                item.Result,
	}
}

func latestFromModel(row latestMatchModel) stats.LatestMatchSummary {
	return stats.LatestMatchSummary{
		MatchID:    row.MatchID,
		Team1:      row.Team1,
		Team2:      row.Team2,
		Team1Score: row.Team1Score,
		Team2Score: row.Team2Score,
		Team1Top: stats.TopPerformers{
			BatsmanName:       row.Team1TopBatsman,
			BatsmanRuns:       row.Team1TopBatsmanRuns,
			BatsmanStrikeRate: row.Team1TopBatsmanSR,
			BowlerName:        row.Team1TopBowler,
			BowlerWickets:     row.Team1TopBowlerWickets,
			BowlerEconomy:     row.Team1TopBowlerEconomy,
		},
		Team2Top: stats.TopPerformers{
			BatsmanName:       row.Team2TopBatsman,
			BatsmanRuns:       row.Team2TopBatsmanRuns,
			BatsmanStrikeRate: row.Team2TopBatsmanSR,
			BowlerName:        row.Team2TopBowler,
			BowlerWickets:     row.Team2TopBowlerWickets,
			BowlerEconomy:     row.Team2TopBowlerEconomy,
		},
		Result: row.Result,
	}
}
