package rawmatch

import "context"

type Repository interface {
	ListMatchIDs(ctx context.Context) ([]string, error)
	ListCommentaryMatchIDs(ctx context.Context) ([]string, error)
	InsertScorecard(ctx context.Context, item Scorecard) error
	InsertCommentary(ctx context.Context, item Commentary) error
	// ForEachScorecard streams documents ordered by match id. Returning an
	// error from fn stops the iteration and is returned as is.
	ForEachScorecard(ctx context.Context, fn func(Scorecard) error) error
	ForEachCommentary(ctx context.Context, fn func(Commentary) error) error
	GetScorecard(ctx context.Context, matchID string) (Scorecard, error)
	LatestScorecard(ctx context.Context) (Scorecard, error)
}
