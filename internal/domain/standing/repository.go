package standing

import "context"

type Repository interface {
	List(ctx context.Context) ([]TeamStanding, error)
	// ReplaceAll swaps the whole table in one transaction.
	ReplaceAll(ctx context.Context, items []TeamStanding) error
}
