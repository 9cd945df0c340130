package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-stats/internal/domain/pipelinerun"
	qb "github.com/riskibarqy/cricket-stats/internal/platform/querybuilder"
)

const pipelineRunTable = "pipeline_runs"

var pipelineRunSelectColumns = []string{
	"run_id",
	"triggered_by",
	"status",
	"summary",
	"started_at",
	"finished_at",
	"last_error",
}

type PipelineRunRepository struct {
	db *sqlx.DB
}

func NewPipelineRunRepository(db *sqlx.DB) *PipelineRunRepository {
	return &PipelineRunRepository{db: db}
}

func (r *PipelineRunRepository) UpsertEvent(ctx context.Context, event pipelinerun.Event) error {
	runID := strings.TrimSpace(event.RunID)
	if runID == "" {
		return fmt.Errorf("run id is required")
	}

	trigger := strings.TrimSpace(event.Trigger)
	if trigger == "" {
		trigger = "unknown"
	}
	occurredAt := event.OccurredAt.UTC()
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}
	summary := "{}"
	if len(event.Summary) > 0 {
		summary = string(event.Summary)
	}

	model := pipelineRunInsertModel{
		RunID:     runID,
		Trigger:   trigger,
		Status:    string(event.Status),
		Summary:   summary,
		StartedAt: &occurredAt,
		LastError: optionalString(event.ErrorMessage),
	}
	if event.Status == pipelinerun.StatusRunning {
		model.StartedTraceID = optionalString(event.TraceID)
	} else {
		model.FinishedAt = &occurredAt
		model.FinishedTraceID = optionalString(event.TraceID)
		model.FinishedSpanID = optionalString(event.SpanID)
	}

	query, args, err := qb.InsertModel(pipelineRunTable, model, `ON CONFLICT (run_id)
DO UPDATE SET
    status = EXCLUDED.status,
    summary = EXCLUDED.summary,
    started_at = pipeline_runs.started_at,
    finished_at = EXCLUDED.finished_at,
    last_error = CASE
        WHEN EXCLUDED.status = 'failed' THEN EXCLUDED.last_error
        ELSE NULL
    END,
    finished_trace_id = EXCLUDED.finished_trace_id,
    finished_span_id = EXCLUDED.finished_span_id`)
	if err != nil {
		return fmt.Errorf("build upsert pipeline run query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return classify(fmt.Errorf("upsert pipeline run run_id=%s status=%s: %w", runID, event.Status, err))
	}
	return nil
}

func (r *PipelineRunRepository) ListRecent(ctx context.Context, limit int) ([]pipelinerun.Run, error) {
	query, args, err := qb.Select(pipelineRunSelectColumns...).
		From(pipelineRunTable).
		OrderBy("started_at DESC").
		Limit(limitOrDefault(limit, 20)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list pipeline runs query: %w", err)
	}

	var rows []pipelineRunTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classify(fmt.Errorf("list pipeline runs: %w", err))
	}

	out := make([]pipelinerun.Run, 0, len(rows))
	for _, row := range rows {
		out = append(out, pipelinerun.Run{
			RunID:      row.RunID,
			Trigger:    row.Trigger,
			Status:     pipelinerun.Status(row.Status),
			StartedAt:  row.StartedAt,
			FinishedAt: row.FinishedAt,
			Summary:    row.Summary,
			LastError:  derefString(row.LastError),
		})
	}
	return out, nil
}
