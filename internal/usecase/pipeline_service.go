package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/cricket-stats/internal/domain/persistence"
	"github.com/riskibarqy/cricket-stats/internal/domain/pipelinerun"
	"github.com/riskibarqy/cricket-stats/internal/platform/cache"
	"github.com/riskibarqy/cricket-stats/internal/platform/id"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"go.opentelemetry.io/otel/trace"
)

const (
	TriggerCLI      = "cli"
	TriggerAPI      = "api"
	TriggerSchedule = "schedule"

	defaultRecentRuns = 20
)

type PipelineOptions struct {
	Trigger string `validate:"required,oneof=cli api schedule"`
	// Force recomputes silver and gold even when ingestion found nothing new.
	Force       bool
	SkipFetch   bool
	SkipRefresh bool
}

// PipelineStages are the services a run drives, in order. A nil stage is
// treated as not configured and skipped.
type PipelineStages struct {
	Fetch       *MatchFetchService
	Ingest      *RawIngestionService
	Silver      *SilverTransformService
	Leaderboard *LeaderboardService
	Standings   *StandingsService
	CustomStats *CustomStatsService
	Projections *DashboardProjectionService
	Refresh     *DashboardRefreshService
}

// PipelineService runs RAW -> SILVER -> GOLD end to end. Runs never overlap:
// a process-local mutex covers this process and an advisory lock covers the
// rest of the fleet.
type PipelineService struct {
	stages   PipelineStages
	runs     pipelinerun.Repository
	locker   pipelinerun.Locker
	ids      id.Generator
	cache    *cache.Store
	validate *validator.Validate
	mu       sync.Mutex
	now      func() time.Time
	logger   *logging.Logger
}

func NewPipelineService(
	stages PipelineStages,
	runs pipelinerun.Repository,
	locker pipelinerun.Locker,
	ids id.Generator,
	readCache *cache.Store,
	logger *logging.Logger,
) *PipelineService {
	if ids == nil {
		ids = id.NewRunIDGenerator()
	}
	return &PipelineService{
		stages:   stages,
		runs:     runs,
		locker:   locker,
		ids:      ids,
		cache:    readCache,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
		logger:   loggerOrDefault(logger).Named("pipeline"),
	}
}

// Run executes one pipeline pass. It returns ErrRunInProgress without doing
// any work when another run holds the lock.
func (s *PipelineService) Run(ctx context.Context, opts PipelineOptions) (PipelineRunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PipelineService.Run")
	defer span.End()

	opts.Trigger = strings.ToLower(strings.TrimSpace(opts.Trigger))
	if err := s.validate.StructCtx(ctx, opts); err != nil {
		return PipelineRunSummary{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !s.mu.TryLock() {
		return PipelineRunSummary{}, fmt.Errorf("%w: held by this process", ErrRunInProgress)
	}
	defer s.mu.Unlock()

	if s.locker != nil {
		lease, ok, err := s.locker.TryAcquire(ctx)
		if err != nil {
			return PipelineRunSummary{}, fmt.Errorf("%w: acquire run lock: %v", ErrDependencyUnavailable, err)
		}
		if !ok {
			return PipelineRunSummary{}, fmt.Errorf("%w: held by another process", ErrRunInProgress)
		}
		defer func() {
			if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
				s.logger.WarnContext(ctx, "release run lock failed", "error", err)
			}
		}()
	}

	runID, err := s.ids.NewID()
	if err != nil {
		return PipelineRunSummary{}, fmt.Errorf("generate run id: %w", err)
	}

	summary := PipelineRunSummary{
		RunID:     runID,
		Trigger:   opts.Trigger,
		Status:    pipelinerun.StatusRunning,
		StartedAt: s.now().UTC(),
	}
	logger := s.logger.With("run_id", runID, "trigger", opts.Trigger)
	logger.InfoContext(ctx, "pipeline run started", "force", opts.Force)
	s.recordEvent(ctx, logger, summary, nil)

	runErr := s.execute(ctx, logger, opts, &summary)

	summary.FinishedAt = s.now().UTC()
	switch {
	case runErr != nil:
		summary.Status = pipelinerun.StatusFailed
	case summary.Status == pipelinerun.StatusRunning:
		summary.Status = pipelinerun.StatusCompleted
	}
	if summary.Status != pipelinerun.StatusSkipped && s.cache != nil {
		purged := s.cache.Purge(ctx)
		logger.DebugContext(ctx, "read cache purged", "entries", purged)
	}
	s.recordEvent(ctx, logger, summary, runErr)

	logArgs := []any{
		"status", summary.Status,
		"new_matches", summary.NewMatches,
		"stages", len(summary.Stages),
		"duration_ms", summary.FinishedAt.Sub(summary.StartedAt).Milliseconds(),
	}
	if runErr != nil {
		logger.ErrorContext(ctx, "pipeline run failed", append(logArgs, "error", runErr)...)
		return summary, runErr
	}
	logger.InfoContext(ctx, "pipeline run finished", logArgs...)
	return summary, nil
}

func (s *PipelineService) execute(ctx context.Context, logger *logging.Logger, opts PipelineOptions, summary *PipelineRunSummary) error {
	st := s.stages

	if st.Fetch != nil && !opts.SkipFetch {
		// The raw directory may already hold data, so a failed fetch only
		// narrows what this run can ingest.
		stage, err := st.Fetch.Fetch(ctx)
		summary.Stages = append(summary.Stages, stage)
		if err != nil {
			logger.WarnContext(ctx, "match fetch failed, continuing with stored folders", "error", err)
		}
	}

	if st.Ingest != nil {
		stage, err := st.Ingest.Ingest(ctx)
		summary.Stages = append(summary.Stages, stage)
		if err != nil {
			return fmt.Errorf("raw ingestion: %w", err)
		}
		summary.NewMatches = stage.Processed
		if stage.Processed == 0 && !opts.Force {
			logger.InfoContext(ctx, "no new matches, skipping downstream stages")
			summary.Status = pipelinerun.StatusSkipped
			return nil
		}
	}

	if st.Silver != nil {
		stage, err := st.Silver.Transform(ctx)
		summary.Stages = append(summary.Stages, stage)
		if err != nil {
			return fmt.Errorf("silver transform: %w", err)
		}
	}

	var firstErr error
	gold := []struct {
		name string
		run  func(context.Context) ([]StatRunSummary, error)
	}{
		{name: "leaderboards", run: s.leaderboards},
		{name: StageStandings, run: s.standings},
		{name: "custom_stats", run: s.customStats},
		{name: StageDashboardProjections, run: s.projections},
	}
	for _, step := range gold {
		stages, err := step.run(ctx)
		summary.Stages = append(summary.Stages, stages...)
		if err == nil {
			continue
		}
		err = fmt.Errorf("%s: %w", step.name, err)
		if isRunFatal(err) {
			return err
		}
		logger.ErrorContext(ctx, "pipeline stage failed", "stage", step.name, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	if st.Refresh != nil && !opts.SkipRefresh {
		stage, err := st.Refresh.Refresh(ctx)
		summary.Stages = append(summary.Stages, stage)
		if err != nil {
			logger.WarnContext(ctx, "dashboard refresh failed", "error", err)
		}
	}
	return firstErr
}

func (s *PipelineService) leaderboards(ctx context.Context) ([]StatRunSummary, error) {
	if s.stages.Leaderboard == nil {
		return nil, nil
	}
	return s.stages.Leaderboard.Rebuild(ctx)
}

func (s *PipelineService) standings(ctx context.Context) ([]StatRunSummary, error) {
	if s.stages.Standings == nil {
		return nil, nil
	}
	stage, err := s.stages.Standings.Rebuild(ctx)
	return []StatRunSummary{stage}, err
}

func (s *PipelineService) customStats(ctx context.Context) ([]StatRunSummary, error) {
	if s.stages.CustomStats == nil {
		return nil, nil
	}
	return s.stages.CustomStats.RunAll(ctx)
}

func (s *PipelineService) projections(ctx context.Context) ([]StatRunSummary, error) {
	if s.stages.Projections == nil {
		return nil, nil
	}
	stage, err := s.stages.Projections.Refresh(ctx)
	return []StatRunSummary{stage}, err
}

// ListRuns returns the most recent runs, newest first.
func (s *PipelineService) ListRuns(ctx context.Context, limit int) ([]pipelinerun.Run, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PipelineService.ListRuns")
	defer span.End()

	if s.runs == nil {
		return nil, fmt.Errorf("%w: run history is not configured", ErrDependencyUnavailable)
	}
	if limit <= 0 {
		limit = defaultRecentRuns
	}
	items, err := s.runs.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list pipeline runs: %w", err)
	}
	return items, nil
}

// recordEvent never fails the run; history is best effort.
func (s *PipelineService) recordEvent(ctx context.Context, logger *logging.Logger, summary PipelineRunSummary, runErr error) {
	if s.runs == nil {
		return
	}
	payload, err := sonic.Marshal(summary)
	if err != nil {
		logger.WarnContext(ctx, "encode run summary failed", "error", err)
		payload = nil
	}

	event := pipelinerun.Event{
		RunID:      summary.RunID,
		Trigger:    summary.Trigger,
		Status:     summary.Status,
		Summary:    payload,
		OccurredAt: s.now().UTC(),
	}
	if runErr != nil {
		event.ErrorMessage = runErr.Error()
	}
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		event.TraceID = sc.TraceID().String()
		event.SpanID = sc.SpanID().String()
	}
	if err := s.runs.UpsertEvent(context.WithoutCancel(ctx), event); err != nil {
		logger.WarnContext(ctx, "record pipeline run event failed", "status", summary.Status, "error", err)
	}
}

func isRunFatal(err error) bool {
	return persistence.IsUnavailable(err) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
