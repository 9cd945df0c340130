package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-stats/internal/domain/leaderboard"
)

const (
	topBatsmenTable = "gold_top_batsmen"
	topBowlersTable = "gold_top_bowlers"
)

type LeaderboardRepository struct {
	db *sqlx.DB
}

func NewLeaderboardRepository(db *sqlx.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

func (r *LeaderboardRepository) ListBatsmen(ctx context.Context, limit int) ([]leaderboard.Batsman, error) {
	var rows []topBatsmanModel
	if err := selectOrdered(ctx, r.db, topBatsmenTable, topBatsmanModel{}, &rows, limitOrDefault(limit, leaderboard.DefaultSize), "position ASC"); err != nil {
		return nil, err
	}
	out := make([]leaderboard.Batsman, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaderboard.Batsman(row))
	}
	return out, nil
}

func (r *LeaderboardRepository) ListBowlers(ctx context.Context, limit int) ([]leaderboard.Bowler, error) {
	var rows []topBowlerModel
	if err := selectOrdered(ctx, r.db, topBowlersTable, topBowlerModel{}, &rows, limitOrDefault(limit, leaderboard.DefaultSize), "position ASC"); err != nil {
		return nil, err
	}
	out := make([]leaderboard.Bowler, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaderboard.Bowler(row))
	}
	return out, nil
}

func (r *LeaderboardRepository) ReplaceBatsmen(ctx context.Context, items []leaderboard.Batsman) error {
	rows := make([]topBatsmanModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, topBatsmanModel(item))
	}
	return replaceAll(ctx, r.db, topBatsmenTable, rows)
}

func (r *LeaderboardRepository) ReplaceBowlers(ctx context.Context, items []leaderboard.Bowler) error {
	rows := make([]topBowlerModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, topBowlerModel(item))
	}
	return replaceAll(ctx, r.db, topBowlersTable, rows)
}
