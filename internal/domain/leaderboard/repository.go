package leaderboard

import "context"

type Repository interface {
	ListBatsmen(ctx context.Context, limit int) ([]Batsman, error)
	ListBowlers(ctx context.Context, limit int) ([]Bowler, error)
	ReplaceBatsmen(ctx context.Context, items []Batsman) error
	ReplaceBowlers(ctx context.Context, items []Bowler) error
}
