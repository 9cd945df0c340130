package postgres

import "time"

type pipelineRunInsertModel struct {
	RunID           string     `db:"run_id"`
	Trigger         string     `db:"triggered_by"`
	Status          string     `db:"status"`
	Summary         string     `db:"summary"`
	StartedAt       *time.Time `db:"started_at"`
	FinishedAt      *time.Time `db:"finished_at"`
	LastError       *string    `db:"last_error"`
	StartedTraceID  *string    `db:"started_trace_id"`
	FinishedTraceID *string    `db:"finished_trace_id"`
	FinishedSpanID  *string    `db:"finished_span_id"`
}

type pipelineRunTableModel struct {
	RunID      string     `db:"run_id"`
	Trigger    string     `db:"triggered_by"`
	Status     string     `db:"status"`
	Summary    []byte     `db:"summary"`
	StartedAt  time.Time  `db:"started_at"`
	FinishedAt *time.Time `db:"finished_at"`
	LastError  *string    `db:"last_error"`
}
