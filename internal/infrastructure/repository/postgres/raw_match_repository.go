package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-stats/internal/domain/rawmatch"
	qb "github.com/riskibarqy/cricket-stats/internal/platform/querybuilder"
)

const (
	rawScorecardTable  = "raw_scorecard"
	rawCommentaryTable = "raw_commentary"
)

var rawDocumentSelectColumns = []string{"match_id", "payload", "ingested_at"}

type RawMatchRepository struct {
	db *sqlx.DB
}

func NewRawMatchRepository(db *sqlx.DB) *RawMatchRepository {
	return &RawMatchRepository{db: db}
}

// orderByMatchID sorts digit-only match ids numerically without a cast.
func orderByMatchID(desc bool) string {
	if desc {
		return "length(match_id) DESC, match_id DESC"
	}
	return "length(match_id), match_id"
}

func (r *RawMatchRepository) ListMatchIDs(ctx context.Context) ([]string, error) {
	return r.listIDs(ctx, rawScorecardTable)
}

func (r *RawMatchRepository) ListCommentaryMatchIDs(ctx context.Context) ([]string, error) {
	return r.listIDs(ctx, rawCommentaryTable)
}

func (r *RawMatchRepository) listIDs(ctx context.Context, table string) ([]string, error) {
	query, args, err := qb.Select("match_id").From(table).OrderBy(orderByMatchID(false)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s ids query: %w", table, err)
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, classify(fmt.Errorf("select %s ids: %w", table, err))
	}
	return ids, nil
}

func (r *RawMatchRepository) InsertScorecard(ctx context.Context, item rawmatch.Scorecard) error {
	return r.insert(ctx, rawScorecardTable, item.MatchID, item.Payload)
}

func (r *RawMatchRepository) InsertCommentary(ctx context.Context, item rawmatch.Commentary) error {
	return r.insert(ctx, rawCommentaryTable, item.MatchID, item.Payload)
}

func (r *RawMatchRepository) insert(ctx context.Context, table, matchID string, payload []byte) error {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("match id is required")
	}
	if len(payload) == 0 {
		return fmt.Errorf("payload is required for match_id=%s", matchID)
	}

	query, args, err := qb.InsertModel(table, rawDocumentInsertModel{
		MatchID: matchID,
		Payload: string(payload),
	}, "ON CONFLICT (match_id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert %s query: %w", table, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return classify(fmt.Errorf("insert %s match_id=%s: %w", table, matchID, err))
	}
	return nil
}

func (r *RawMatchRepository) ForEachScorecard(ctx context.Context, fn func(rawmatch.Scorecard) error) error {
	return r.forEach(ctx, rawScorecardTable, func(row rawDocumentTableModel) error {
		return fn(rawmatch.Scorecard{MatchID: row.MatchID, Payload: row.Payload, IngestedAt: row.IngestedAt})
	})
}

func (r *RawMatchRepository) ForEachCommentary(ctx context.Context, fn func(rawmatch.Commentary) error) error {
	return r.forEach(ctx, rawCommentaryTable, func(row rawDocumentTableModel) error {
		return fn(rawmatch.Commentary{MatchID: row.MatchID, Payload: row.Payload, IngestedAt: row.IngestedAt})
	})
}

func (r *RawMatchRepository) forEach(ctx context.Context, table string, fn func(rawDocumentTableModel) error) error {
	query, args, err := qb.Select(rawDocumentSelectColumns...).From(table).OrderBy(orderByMatchID(false)).ToSQL()
	if err != nil {
		return fmt.Errorf("build stream %s query: %w", table, err)
	}

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return classify(fmt.Errorf("stream %s: %w", table, err))
	}
	defer rows.Close()

	for rows.Next() {
		var row rawDocumentTableModel
		if err := rows.StructScan(&row); err != nil {
			return classify(fmt.Errorf("scan %s row: %w", table, err))
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return classify(fmt.Errorf("iterate %s: %w", table, err))
	}
	return nil
}

func (r *RawMatchRepository) GetScorecard(ctx context.Context, matchID string) (rawmatch.Scorecard, error) {
	query, args, err := qb.Select(rawDocumentSelectColumns...).
		From(rawScorecardTable).
		Where(qb.Eq("match_id", strings.TrimSpace(matchID))).
		Limit(1).
		ToSQL()
	if err != nil {
		return rawmatch.Scorecard{}, fmt.Errorf("build get raw scorecard query: %w", err)
	}
	return r.getOne(ctx, query, args, "match_id="+matchID)
}

func (r *RawMatchRepository) LatestScorecard(ctx context.Context) (rawmatch.Scorecard, error) {
	query, args, err := qb.Select(rawDocumentSelectColumns...).
		From(rawScorecardTable).
		OrderBy(orderByMatchID(true)).
		Limit(1).
		ToSQL()
	if err != nil {
		return rawmatch.Scorecard{}, fmt.Errorf("build latest raw scorecard query: %w", err)
	}
	return r.getOne(ctx, query, args, "latest")
}

func (r *RawMatchRepository) getOne(ctx context.Context, query string, args []any, label string) (rawmatch.Scorecard, error) {
	var row rawDocumentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return rawmatch.Scorecard{}, fmt.Errorf("%w: raw scorecard %s", rawmatch.ErrNotFound, label)
		}
		return rawmatch.Scorecard{}, classify(fmt.Errorf("get raw scorecard %s: %w", label, err))
	}
	return rawmatch.Scorecard{MatchID: row.MatchID, Payload: row.Payload, IngestedAt: row.IngestedAt}, nil
}
