package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-stats/internal/domain/silver"
	qb "github.com/riskibarqy/cricket-stats/internal/platform/querybuilder"
)

const (
	silverMatchSummaryTable = "silver_match_summary"
	silverBattingTable      = "silver_batting"
	silverBowlingTable      = "silver_bowling"
)

type SilverRepository struct {
	db *sqlx.DB
}

func NewSilverRepository(db *sqlx.DB) *SilverRepository {
	return &SilverRepository{db: db}
}

func (r *SilverRepository) Truncate(ctx context.Context) error {
	query, err := qb.Truncate(silverBattingTable, silverBowlingTable, silverMatchSummaryTable)
	if err != nil {
		return fmt.Errorf("build truncate silver query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return classify(fmt.Errorf("truncate silver tables: %w", err))
	}
	return nil
}

// InsertMatch writes one match in a single transaction so a failing row
// never leaves a half-written match behind.
func (r *SilverRepository) InsertMatch(ctx context.Context, summary silver.MatchSummary, batting []silver.Batting, bowling []silver.Bowling) error {
	return withTx(ctx, r.db, "insert silver match_id="+summary.MatchID, func(tx *sqlx.Tx) error {
		query, args, err := qb.InsertModel(silverMatchSummaryTable, summaryToModel(summary), "")
		if err != nil {
			return fmt.Errorf("build insert silver_match_summary query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert silver_match_summary match_id=%s: %w", summary.MatchID, err)
		}

		if len(batting) > 0 {
			rows := make([]silverBattingModel, 0, len(batting))
			for _, item := range batting {
				rows = append(rows, silverBattingModel(item))
			}
			query, args, err := qb.InsertModels(silverBattingTable, rows, "")
			if err != nil {
				return fmt.Errorf("build insert silver_batting query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert silver_batting match_id=%s rows=%d: %w", summary.MatchID, len(rows), err)
			}
		}

		if len(bowling) > 0 {
			rows := make([]silverBowlingModel, 0, len(bowling))
			for _, item := range bowling {
				rows = append(rows, silverBowlingModel(item))
			}
			query, args, err := qb.InsertModels(silverBowlingTable, rows, "")
			if err != nil {
				return fmt.Errorf("build insert silver_bowling query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert silver_bowling match_id=%s rows=%d: %w", summary.MatchID, len(rows), err)
			}
		}
		return nil
	})
}

func (r *SilverRepository) ListSummaries(ctx context.Context) ([]silver.MatchSummary, error) {
	cols, err := qb.Columns(silverMatchSummaryModel{})
	if err != nil {
		return nil, err
	}
	query, args, err := qb.Select(cols...).From(silverMatchSummaryTable).OrderBy(orderByMatchID(false)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select silver summaries query: %w", err)
	}

	var rows []silverMatchSummaryModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classify(fmt.Errorf("select silver summaries: %w", err))
	}

	out := make([]silver.MatchSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, silver.MatchSummary{
			MatchID:         row.MatchID,
			Sequence:        row.Sequence,
			Team1:           row.Team1,
			Team2:           row.Team2,
			Status:          row.Status,
			Result:          row.Result,
			Winner:          row.Winner,
			MarginRuns:      row.MarginRuns,
			MarginWickets:   row.MarginWickets,
			TossWinner:      derefString(row.TossWinner),
			TossDecision:    derefString(row.TossDecision),
			IsNoResult:      row.IsNoResult,
			IsTie:           row.IsTie,
			SuperOverWinner: derefString(row.SuperOverWinner),
		})
	}
	return out, nil
}

func (r *SilverRepository) ListBatting(ctx context.Context) ([]silver.Batting, error) {
	var rows []silverBattingModel
	if err := r.selectAll(ctx, silverBattingTable, silverBattingModel{}, &rows); err != nil {
		return nil, err
	}
	out := make([]silver.Batting, 0, len(rows))
	for _, row := range rows {
		out = append(out, silver.Batting(row))
	}
	return out, nil
}

func (r *SilverRepository) ListBowling(ctx context.Context) ([]silver.Bowling, error) {
	var rows []silverBowlingModel
	if err := r.selectAll(ctx, silverBowlingTable, silverBowlingModel{}, &rows); err != nil {
		return nil, err
	}
	out := make([]silver.Bowling, 0, len(rows))
	for _, row := range rows {
		out = append(out, silver.Bowling(row))
	}
	return out, nil
}

func (r *SilverRepository) selectAll(ctx context.Context, table string, model any, dest any) error {
	cols, err := qb.Columns(model)
	if err != nil {
		return err
	}
	query, args, err := qb.Select(cols...).From(table).OrderBy(orderByMatchID(false), "innings_id").ToSQL()
	if err != nil {
		return fmt.Errorf("build select %s query: %w", table, err)
	}
	if err := r.db.SelectContext(ctx, dest, query, args...); err != nil {
		return classify(fmt.Errorf("select %s: %w", table, err))
	}
	return nil
}

func summaryToModel(item silver.MatchSummary) silverMatchSummaryModel {
	return silverMatchSummaryModel{
		MatchID:         item.MatchID,
		Sequence:        item.Sequence,
		Team1:           item.Team1,
		Team2:           item.Team2,
		Status:          item.Status,
		Result:          item.Result,
		Winner:          item.Winner,
		MarginRuns:      item.MarginRuns,
		MarginWickets:   item.MarginWickets,
		TossWinner:      optionalString(item.TossWinner),
		TossDecision:    optionalString(item.TossDecision),
		IsNoResult:      item.IsNoResult,
		IsTie:           item.IsTie,
		SuperOverWinner: optionalString(item.SuperOverWinner),
	}
}
