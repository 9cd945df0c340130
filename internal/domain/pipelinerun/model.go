package pipelinerun

import "time"

type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// Event records one state change of a pipeline run.
type Event struct {
	RunID        string
	Trigger      string
	Status       Status
	Summary      []byte
	ErrorMessage string
	OccurredAt   time.Time
	TraceID      string
	SpanID       string
}

// Run is the folded history of a run.
type Run struct {
	RunID      string
	Trigger    string
	Status     Status
	StartedAt  time.Time
	FinishedAt *time.Time
	Summary    []byte
	LastError  string
}
