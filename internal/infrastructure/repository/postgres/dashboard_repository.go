package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-stats/internal/domain/dashboard"
	qb "github.com/riskibarqy/cricket-stats/internal/platform/querybuilder"
)

const dashboardProjectionTable = "dashboard_projections"

type dashboardProjectionModel struct {
	Name        string    `db:"name"`
	Payload     string    `db:"payload"`
	RowCount    int       `db:"row_count"`
	RefreshedAt time.Time `db:"refreshed_at"`
}

type DashboardRepository struct {
	db *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) ReplaceAll(ctx context.Context, items []dashboard.Projection) error {
	rows := make([]dashboardProjectionModel, 0, len(items))
	for _, item := range items {
		refreshedAt := item.RefreshedAt.UTC()
		if refreshedAt.IsZero() {
			refreshedAt = time.Now().UTC()
		}
		rows = append(rows, dashboardProjectionModel{
			Name:        item.Name,
			Payload:     string(item.Payload),
			RowCount:    item.RowCount,
			RefreshedAt: refreshedAt,
		})
	}
	return replaceAll(ctx, r.db, dashboardProjectionTable, rows)
}

func (r *DashboardRepository) Get(ctx context.Context, name string) (dashboard.Projection, bool, error) {
	cols, err := qb.Columns(dashboardProjectionModel{})
	if err != nil {
		return dashboard.Projection{}, false, err
	}
	query, args, err := qb.Select(cols...).From(dashboardProjectionTable).Where(qb.Eq("name", name)).Limit(1).ToSQL()
	if err != nil {
		return dashboard.Projection{}, false, fmt.Errorf("build get dashboard projection query: %w", err)
	}

	var row dashboardProjectionModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return dashboard.Projection{}, false, nil
		}
		return dashboard.Projection{}, false, classify(fmt.Errorf("get dashboard projection name=%s: %w", name, err))
	}
	return dashboard.Projection{
		Name:        row.Name,
		Payload:     []byte(row.Payload),
		RowCount:    row.RowCount,
		RefreshedAt: row.RefreshedAt,
	}, true, nil
}
