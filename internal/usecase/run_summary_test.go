package usecase

import (
	"errors"
	"testing"
)

func TestStatRun_FinishStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                       string
		processed, skipped, failed int
		err                        error
		want                       string
	}{
		{name: "clean", processed: 3, want: StatStatusSuccess},
		{name: "only skips", skipped: 2, want: StatStatusSuccess},
		{name: "row failures", processed: 3, failed: 1, want: StatStatusPartial},
		{name: "empty", want: StatStatusSkipped},
		{name: "error wins", processed: 3, err: errors.New("boom"), want: StatStatusFailed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			run := beginStat("x")
			run.processed(tc.processed)
			run.skipped(tc.skipped)
			run.failed(tc.failed)
			got := run.finish(tc.err)
			if got.Status != tc.want {
				t.Fatalf("status: got=%s want=%s", got.Status, tc.want)
			}
			if tc.err != nil && got.Message != tc.err.Error() {
				t.Fatalf("message: got=%q", got.Message)
			}
		})
	}
}

func TestPipelineRunSummary_Failed(t *testing.T) {
	t.Parallel()

	summary := PipelineRunSummary{Stages: []StatRunSummary{{Status: StatStatusSuccess}, {Status: StatStatusPartial}}}
	if summary.Failed() {
		t.Fatalf("partial stages are not failures")
	}
	summary.Stages = append(summary.Stages, StatRunSummary{Status: StatStatusFailed})
	if !summary.Failed() {
		t.Fatalf("expected failed summary")
	}
}
