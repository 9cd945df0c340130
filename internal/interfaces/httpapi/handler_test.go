package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/cricket-stats/internal/domain/dashboard"
	"github.com/riskibarqy/cricket-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/cricket-stats/internal/domain/pipelinerun"
	"github.com/riskibarqy/cricket-stats/internal/domain/standing"
	"github.com/riskibarqy/cricket-stats/internal/domain/stats"
	"github.com/riskibarqy/cricket-stats/internal/domain/team"
	"github.com/riskibarqy/cricket-stats/internal/platform/cache"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"github.com/riskibarqy/cricket-stats/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	mu         sync.Mutex
	lastLimit  int
	normalizer *team.Normalizer
}

func (f *fakeReader) record(limit int) {
	f.mu.Lock()
	f.lastLimit = limit
	f.mu.Unlock()
}

func (f *fakeReader) ListStandings(context.Context) ([]standing.TeamStanding, error) {
	return []standing.TeamStanding{
		{Position: 1, Team: "Chennai Super Kings", Matches: 2, Won: 1, NoResult: 1, Points: 3, NetRunRate: 0.294},
	}, nil
}

func (f *fakeReader) ListTopBatsmen(_ context.Context, limit int) ([]leaderboard.Batsman, error) {
	f.record(limit)
	return []leaderboard.Batsman{{Rank: 1, PlayerName: "Rohit Sharma", Team: "Mumbai Indians", Runs: 84}}, nil
}

func (f *fakeReader) ListTopBowlers(_ context.Context, limit int) ([]leaderboard.Bowler, error) {
	f.record(limit)
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be >= 0", usecase.ErrInvalidInput)
	}
	return nil, nil
}

func (f *fakeReader) ListCleanBowled(_ context.Context, limit int) ([]stats.CleanBowledStat, error) {
	f.record(limit)
	return []stats.CleanBowledStat{{BowlerName: "Jasprit Bumrah", Team: "Mumbai Indians", CleanBowledWickets: 2}}, nil
}

func (f *fakeReader) ListPowerplay(context.Context) ([]stats.PowerplayStat, error) {
	return nil, fmt.Errorf("query powerplay: connection refused")
}

func (f *fakeReader) ListBattingMetrics(context.Context, int) ([]stats.BattingMetric, error) {
	return nil, nil
}

func (f *fakeReader) ListBowlingMetrics(context.Context, int) ([]stats.BowlingMetric, error) {
	return nil, nil
}

func (f *fakeReader) ListFielderCatches(context.Context, int) ([]stats.FielderCatchStat, error) {
	return nil, nil
}

func (f *fakeReader) ListDroppedCatches(context.Context, int) ([]stats.DroppedCatchStat, error) {
	return nil, nil
}

func (f *fakeReader) HeadToHead(_ context.Context, teamA, teamB string) (stats.HeadToHead, error) {
	a, b := f.normalizer.Normalize(teamA), f.normalizer.Normalize(teamB)
	if !team.IsKnown(a) || !team.IsKnown(b) {
		return stats.HeadToHead{}, fmt.Errorf("%w: unrecognized team", usecase.ErrInvalidInput)
	}
	return stats.HeadToHead{Team1: "Chennai Super Kings", Team2: "Mumbai Indians", TotalMatches: 3}, nil
}

func (f *fakeReader) LatestMatch(context.Context) (stats.LatestMatchSummary, error) {
	return stats.LatestMatchSummary{}, fmt.Errorf("%w: no match summarized yet", usecase.ErrNotFound)
}

func (f *fakeReader) Projection(_ context.Context, name string) (dashboard.Projection, error) {
	if name != dashboard.PurpleCap {
		return dashboard.Projection{}, fmt.Errorf("%w: projection=%s", usecase.ErrNotFound, name)
	}
	return dashboard.Projection{
		Name:        dashboard.PurpleCap,
		Payload:     []byte(`[{"bowler":"Jasprit Bumrah","wickets":3}]`),
		RowCount:    1,
		RefreshedAt: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeReader) NormalizeTeam(raw string) string {
	return f.normalizer.Normalize(raw)
}

func (f *fakeReader) CacheStats() cache.Stats {
	return cache.Stats{Entries: 2, Hits: 5, Misses: 2}
}

type fakePipeline struct {
	mu   sync.Mutex
	opts []usecase.PipelineOptions
	err  error
}

func (f *fakePipeline) Run(_ context.Context, opts usecase.PipelineOptions) (usecase.PipelineRunSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opts = append(f.opts, opts)
	if f.err != nil {
		return usecase.PipelineRunSummary{}, f.err
	}
	return usecase.PipelineRunSummary{RunID: "run-1", Trigger: opts.Trigger, Status: pipelinerun.StatusCompleted, NewMatches: 2}, nil
}

func (f *fakePipeline) ListRuns(context.Context, int) ([]pipelinerun.Run, error) {
	return []pipelinerun.Run{{
		RunID:     "run-1",
		Trigger:   usecase.TriggerCLI,
		Status:    pipelinerun.StatusCompleted,
		StartedAt: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
		Summary:   []byte(`{"new_matches":2}`),
	}}, nil
}

type envelope struct {
	APIVersion string `json:"apiVersion"`
	Data       any    `json:"data"`
	Error      *struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
	} `json:"error"`
}

func newTestRouter(t *testing.T, pipeline PipelineRunner) (http.Handler, *fakeReader) {
	t.Helper()

	reader := &fakeReader{normalizer: team.NewDefaultNormalizer()}
	handler := NewHandler(reader, pipeline, logging.NewNop())
	router := NewRouter(handler, logging.NewNop(), RouterConfig{
		SwaggerEnabled: true,
		AdminToken:     "admin-secret",
	})
	return router, reader
}

func serve(t *testing.T, router http.Handler, req *http.Request) (int, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec.Code, body
}

func TestRouter_ListStandings(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)
	code, body := serve(t, router, httptest.NewRequest(http.MethodGet, "/v1/standings", nil))

	require.Equal(t, http.StatusOK, code)
	rows, ok := body.Data.([]any)
	require.True(t, ok, "data should be a list")
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, "Chennai Super Kings", row["team"])
	assert.EqualValues(t, 3, row["points"])
	assert.InDelta(t, 0.294, row["netRunRate"], 1e-9)
}

func TestRouter_LimitParsing(t *testing.T) {
	t.Parallel()

	router, reader := newTestRouter(t, nil)

	code, _ := serve(t, router, httptest.NewRequest(http.MethodGet, "/v1/leaderboards/batsmen?limit=5", nil))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 5, reader.lastLimit)

	code, _ = serve(t, router, httptest.NewRequest(http.MethodGet, "/v1/stats/clean-bowled", nil))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, reader.lastLimit)

	code, body := serve(t, router, httptest.NewRequest(http.MethodGet, "/v1/leaderboards/bowlers?limit=abc", nil))
	require.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_ARGUMENT", body.Error.Status)

	code, _ = serve(t, router, httptest.NewRequest(http.MethodGet, "/v1/leaderboards/bowlers?limit=-3", nil))
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRouter_HeadToHead(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)

	code, body := serve(t, router, httptest.NewRequest(http.MethodGet, "/v1/head-to-head?team1=MI&team2=csk", nil))
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 3, body.Data.(map[string]any)["totalMatches"])

	code, _ = serve(t, router, httptest.NewRequest(http.MethodGet, "/v1/head-to-head?team1=MI", nil))
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = serve(t, router, httptest.NewRequest(http.MethodGet, "/v1/head-to-head?team1=MI&team2=Narnia%20XI", nil))
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRouter_NotFoundAndStoreErrors(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)

	code, body := serve(t, router, httptest.NewRequest(http.MethodGet, "/v1/matches/latest", nil))
	require.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", body.Error.Status)

	code, body = serve(t, router, httptest.NewRequest(http.MethodGet, "/v1/stats/powerplay", nil))
	require.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "INTERNAL", body.Error.Status)
}

func TestRouter_NormalizeTeam(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)

	code, body := serve(t, router, httptest.NewRequest(http.MethodGet, "/v1/teams/normalize?name=RCB", nil))
	require.Equal(t, http.StatusOK, code)
	data := body.Data.(map[string]any)
	assert.Equal(t, "Royal Challengers Bengaluru", data["normalized"])
	assert.Equal(t, true, data["known"])

	code, _ = serve(t, router, httptest.NewRequest(http.MethodGet, "/v1/teams/normalize", nil))
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRouter_DashboardProjectionEmbedsRows(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)

	code, body := serve(t, router, httptest.NewRequest(http.MethodGet, "/v1/dashboard/purple_cap", nil))
	require.Equal(t, http.StatusOK, code)
	data := body.Data.(map[string]any)
	assert.Equal(t, "2025-05-01T10:00:00Z", data["refreshedAt"])
	rows := data["rows"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "Jasprit Bumrah", rows[0].(map[string]any)["bowler"])

	code, _ = serve(t, router, httptest.NewRequest(http.MethodGet, "/v1/dashboard/unknown", nil))
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRouter_HealthzReportsCache(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)
	code, body := serve(t, router, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, code)
	data := body.Data.(map[string]any)
	assert.Equal(t, "ok", data["status"])
	assert.EqualValues(t, 5, data["cache"].(map[string]any)["hits"])
}

func TestRouter_PipelineRequiresAdminToken(t *testing.T) {
	t.Parallel()

	pipeline := &fakePipeline{}
	router, _ := newTestRouter(t, pipeline)

	code, body := serve(t, router, httptest.NewRequest(http.MethodPost, "/v1/internal/pipeline/runs", nil))
	require.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHENTICATED", body.Error.Status)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/pipeline/runs", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	code, _ = serve(t, router, req)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Empty(t, pipeline.opts)
}

func TestRouter_PipelineRun(t *testing.T) {
	t.Parallel()

	pipeline := &fakePipeline{}
	router, _ := newTestRouter(t, pipeline)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/pipeline/runs", strings.NewReader(`{"force":true,"skipFetch":true}`))
	req.Header.Set(adminTokenHeader, "admin-secret")
	code, body := serve(t, router, req)

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "run-1", body.Data.(map[string]any)["run_id"])
	require.Len(t, pipeline.opts, 1)
	assert.Equal(t, usecase.PipelineOptions{Trigger: usecase.TriggerAPI, Force: true, SkipFetch: true}, pipeline.opts[0])

	req = httptest.NewRequest(http.MethodPost, "/v1/internal/pipeline/runs", strings.NewReader(`{"forse":true}`))
	req.Header.Set(adminTokenHeader, "admin-secret")
	code, _ = serve(t, router, req)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRouter_PipelineRunInProgress(t *testing.T) {
	t.Parallel()

	pipeline := &fakePipeline{err: fmt.Errorf("%w: held by this process", usecase.ErrRunInProgress)}
	router, _ := newTestRouter(t, pipeline)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/pipeline/runs", nil)
	req.Header.Set(adminTokenHeader, "admin-secret")
	code, body := serve(t, router, req)

	require.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "ABORTED", body.Error.Status)
}

func TestRouter_ListPipelineRuns(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, &fakePipeline{})

	req := httptest.NewRequest(http.MethodGet, "/v1/internal/pipeline/runs?limit=5", nil)
	req.Header.Set("Authorization", "Bearer admin-secret")
	code, body := serve(t, router, req)

	require.Equal(t, http.StatusOK, code)
	runs := body.Data.([]any)
	require.Len(t, runs, 1)
	run := runs[0].(map[string]any)
	assert.Equal(t, "completed", run["status"])
	assert.EqualValues(t, 2, run["summary"].(map[string]any)["new_matches"])
}

func TestRouter_PipelineNotConfigured(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/pipeline/runs", nil)
	req.Header.Set(adminTokenHeader, "admin-secret")
	code, _ := serve(t, router, req)
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestRouter_SwaggerServed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/v1/head-to-head")
}
