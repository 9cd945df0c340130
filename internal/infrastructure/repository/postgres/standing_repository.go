package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-stats/internal/domain/standing"
)

const teamStandingTable = "gold_team_stats"

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) List(ctx context.Context) ([]standing.TeamStanding, error) {
	var rows []teamStandingModel
	if err := selectOrdered(ctx, r.db, teamStandingTable, teamStandingModel{}, &rows, 0, "position ASC"); err != nil {
		return nil, err
	}
	out := make([]standing.TeamStanding, 0, len(rows))
	for _, row := range rows {
		out = append(out, standing.TeamStanding(row))
	}
	return out, nil
}

func (r *StandingRepository) ReplaceAll(ctx context.Context, items []standing.TeamStanding) error {
	rows := make([]teamStandingModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, teamStandingModel(item))
	}
	return replaceAll(ctx, r.db, teamStandingTable, rows)
}
