package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	qb "github.com/riskibarqy/cricket-stats/internal/platform/querybuilder"
)

// replaceAll deletes every row of table and inserts rows, in one transaction.
// Readers see either the old table or the new one.
func replaceAll[T any](ctx context.Context, db *sqlx.DB, table string, rows []T) error {
	return withTx(ctx, db, "replace "+table, func(tx *sqlx.Tx) error {
		query, args, err := qb.DeleteFrom(table).ToSQL()
		if err != nil {
			return fmt.Errorf("build delete %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
		if len(rows) == 0 {
			return nil
		}

		query, args, err = qb.InsertModels(table, rows, "")
		if err != nil {
			return fmt.Errorf("build insert %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert %s rows=%d: %w", table, len(rows), err)
		}
		return nil
	})
}

func selectOrdered(ctx context.Context, db *sqlx.DB, table string, model any, dest any, limit int, orderBy ...string) error {
	cols, err := qb.Columns(model)
	if err != nil {
		return err
	}
	query, args, err := qb.Select(cols...).From(table).OrderBy(orderBy...).Limit(limit).ToSQL()
	if err != nil {
		return fmt.Errorf("build select %s query: %w", table, err)
	}
	if err := db.SelectContext(ctx, dest, query, args...); err != nil {
		return classify(fmt.Errorf("select %s: %w", table, err))
	}
	return nil
}
