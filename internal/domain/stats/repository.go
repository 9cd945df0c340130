package stats

import "context"

// Repository persists the custom gold tables. Every Upsert* call overwrites
// all non-key columns of a conflicting row.
type Repository interface {
	TruncateAll(ctx context.Context) error

	UpsertCleanBowled(ctx context.Context, item CleanBowledStat) error
	UpsertPowerplay(ctx context.Context, item PowerplayStat) error
	UpsertBattingMetric(ctx context.Context, item BattingMetric) error
	UpsertBowlingMetric(ctx context.Context, item BowlingMetric) error
	UpsertHeadToHead(ctx context.Context, item HeadToHead) error
	UpsertFielderCatch(ctx context.Context, item FielderCatchStat) error
	UpsertDroppedCatch(ctx context.Context, item DroppedCatchStat) error
	UpsertLatestMatch(ctx context.Context, item LatestMatchSummary) error

	ListCleanBowled(ctx context.Context, limit int) ([]CleanBowledStat, error)
	ListPowerplay(ctx context.Context) ([]PowerplayStat, error)
	ListBattingMetrics(ctx context.Context, limit int) ([]BattingMetric, error)
	ListBowlingMetrics(ctx context.Context, limit int) ([]BowlingMetric, error)
	ListFielderCatches(ctx context.Context, limit int) ([]FielderCatchStat, error)
	ListDroppedCatches(ctx context.Context, limit int) ([]DroppedCatchStat, error)
	GetHeadToHead(ctx context.Context, team1, team2 string) (HeadToHead, bool, error)
	GetLatestMatch(ctx context.Context) (LatestMatchSummary, bool, error)
}
