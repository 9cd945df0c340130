package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/cricket-stats/internal/usecase"
)

const maxRequestBodyBytes = 64 << 10

type pipelineRunRequest struct {
	Force       bool `json:"force"`
	SkipFetch   bool `json:"skipFetch"`
	SkipRefresh bool `json:"skipRefresh"`
}

// RunPipeline executes one pipeline pass synchronously. The run survives a
// client disconnect so a half-built gold layer is never left behind.
func (h *Handler) RunPipeline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunPipeline")
	defer span.End()

	if h.pipeline == nil {
		writeError(ctx, w, fmt.Errorf("%w: pipeline is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	req, err := decodePipelineRunRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.pipeline.Run(context.WithoutCancel(ctx), usecase.PipelineOptions{
		Trigger:     usecase.TriggerAPI,
		Force:       req.Force,
		SkipFetch:   req.SkipFetch,
		SkipRefresh: req.SkipRefresh,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "run pipeline failed",
			"run_id", summary.RunID,
			"force", req.Force,
			"client_ip", clientIPFromContext(ctx),
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "pipeline run finished",
		"run_id", summary.RunID,
		"status", summary.Status,
		"new_matches", summary.NewMatches,
		"client_ip", clientIPFromContext(ctx),
	)
	writeSuccess(ctx, w, http.StatusOK, summary)
}

func (h *Handler) ListPipelineRuns(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPipelineRuns")
	defer span.End()

	if h.pipeline == nil {
		writeError(ctx, w, fmt.Errorf("%w: pipeline is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	limit, err := h.parseLimit(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	runs, err := h.pipeline.ListRuns(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list pipeline runs failed", "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]pipelineRunDTO, 0, len(runs))
	for _, run := range runs {
		out = append(out, pipelineRunToDTO(run))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

var strictJSON = sonic.Config{DisallowUnknownFields: true}.Froze()

// decodePipelineRunRequest accepts an empty body as all defaults.
func decodePipelineRunRequest(r *http.Request) (pipelineRunRequest, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return pipelineRunRequest{}, fmt.Errorf("%w: read body: %v", usecase.ErrInvalidInput, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return pipelineRunRequest{}, nil
	}

	var req pipelineRunRequest
	if err := strictJSON.Unmarshal(raw, &req); err != nil {
		return pipelineRunRequest{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return req, nil
}
