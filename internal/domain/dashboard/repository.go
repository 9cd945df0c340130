package dashboard

import "context"

type Repository interface {
	// ReplaceAll swaps every projection in a single transaction.
	ReplaceAll(ctx context.Context, items []Projection) error
	Get(ctx context.Context, name string) (Projection, bool, error)
}
