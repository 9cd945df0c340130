package silver

import "context"

type Repository interface {
	Truncate(ctx context.Context) error
	InsertMatch(ctx context.Context, summary MatchSummary, batting []Batting, bowling []Bowling) error
	ListSummaries(ctx context.Context) ([]MatchSummary, error)
	ListBatting(ctx context.Context) ([]Batting, error)
	ListBowling(ctx context.Context) ([]Bowling, error)
}
