package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/cricket-stats/internal/domain/aggregate"
	"github.com/riskibarqy/cricket-stats/internal/domain/pipelinerun"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

const (
	StatStatusSuccess = "success"
	StatStatusPartial = "partial"
	StatStatusFailed  = "failed"
	StatStatusSkipped = "skipped"
)

// Skip reasons that only the use-case layer can observe.
const (
	reasonParseError = "parse_error"
	reasonDBError    = "db_error"
)

// StatRunSummary reports one statistic or pipeline stage.
type StatRunSummary struct {
	Name       string `json:"name"`
	Processed  int    `json:"processed"`
	Skipped    int    `json:"skipped"`
	Failed     int    `json:"failed"`
	DurationMs int64  `json:"duration_ms"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
}

// PipelineRunSummary is the outcome of one PipelineService.Run call.
type PipelineRunSummary struct {
	RunID      string             `json:"run_id"`
	Trigger    string             `json:"trigger"`
	Status     pipelinerun.Status `json:"status"`
	NewMatches int                `json:"new_matches"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt time.Time          `json:"finished_at"`
	Stages     []StatRunSummary   `json:"stages"`
}

// Failed reports whether any stage ended in StatStatusFailed.
func (s PipelineRunSummary) Failed() bool {
	for _, stage := range s.Stages {
		if stage.Status == StatStatusFailed {
			return true
		}
	}
	return false
}

type statRun struct {
	summary StatRunSummary
	start   time.Time
}

func beginStat(name string) *statRun {
	return &statRun{
		summary: StatRunSummary{Name: name},
		start:   time.Now(),
	}
}

func (r *statRun) processed(n int) { r.summary.Processed += n }
func (r *statRun) skipped(n int)   { r.summary.Skipped += n }
func (r *statRun) failed(n int)    { r.summary.Failed += n }

// finish stamps duration and status. A non-nil err always wins.
func (r *statRun) finish(err error) StatRunSummary {
	out := r.summary
	out.DurationMs = time.Since(r.start).Milliseconds()
	switch {
	case err != nil:
		out.Status = StatStatusFailed
		out.Message = err.Error()
	case out.Failed > 0:
		out.Status = StatStatusPartial
	case out.Processed == 0 && out.Skipped == 0:
		out.Status = StatStatusSkipped
	default:
		out.Status = StatStatusSuccess
	}
	return out
}

func logStatSummary(ctx context.Context, logger *logging.Logger, summary StatRunSummary) {
	args := []any{
		"stat", summary.Name,
		"processed", summary.Processed,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"duration_ms", summary.DurationMs,
		"status", summary.Status,
	}
	if summary.Message != "" {
		args = append(args, "message", summary.Message)
	}
	if summary.Status == StatStatusFailed {
		logger.ErrorContext(ctx, "stat run finished", args...)
		return
	}
	logger.InfoContext(ctx, "stat run finished", args...)
}

func logSkips(ctx context.Context, logger *logging.Logger, stat string, skips []aggregate.Skip) {
	for _, skip := range skips {
		logger.WarnContext(ctx, "row skipped", "stat", stat, "key", skip.Key, "reason", skip.Reason)
	}
}

func loggerOrDefault(logger *logging.Logger) *logging.Logger {
	if logger == nil {
		return logging.Default()
	}
	return logger
}
