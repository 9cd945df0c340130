package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/cricket-stats/internal/domain/dashboard"
	"github.com/riskibarqy/cricket-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/cricket-stats/internal/domain/pipelinerun"
	"github.com/riskibarqy/cricket-stats/internal/domain/standing"
	"github.com/riskibarqy/cricket-stats/internal/domain/stats"
	"github.com/riskibarqy/cricket-stats/internal/domain/team"
	"github.com/riskibarqy/cricket-stats/internal/platform/cache"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"github.com/riskibarqy/cricket-stats/internal/usecase"
)

// StatsReader is the read side served by the public routes.
type StatsReader interface {
	ListStandings(ctx context.Context) ([]standing.TeamStanding, error)
	ListTopBatsmen(ctx context.Context, limit int) ([]leaderboard.Batsman, error)
	ListTopBowlers(ctx context.Context, limit int) ([]leaderboard.Bowler, error)
	ListCleanBowled(ctx context.Context, limit int) ([]stats.CleanBowledStat, error)
	ListPowerplay(ctx context.Context) ([]stats.PowerplayStat, error)
	ListBattingMetrics(ctx context.Context, limit int) ([]stats.BattingMetric, error)
	ListBowlingMetrics(ctx context.Context, limit int) ([]stats.BowlingMetric, error)
	ListFielderCatches(ctx context.Context, limit int) ([]stats.FielderCatchStat, error)
	ListDroppedCatches(ctx context.Context, limit int) ([]stats.DroppedCatchStat, error)
	HeadToHead(ctx context.Context, teamA, teamB string) (stats.HeadToHead, error)
	LatestMatch(ctx context.Context) (stats.LatestMatchSummary, error)
	Projection(ctx context.Context, name string) (dashboard.Projection, error)
	NormalizeTeam(raw string) string
	CacheStats() cache.Stats
}

// PipelineRunner triggers and lists pipeline runs.
type PipelineRunner interface {
	Run(ctx context.Context, opts usecase.PipelineOptions) (usecase.PipelineRunSummary, error)
	ListRuns(ctx context.Context, limit int) ([]pipelinerun.Run, error)
}

type Handler struct {
	reader    StatsReader
	pipeline  PipelineRunner
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(reader StatsReader, pipeline PipelineRunner, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		reader:    reader,
		pipeline:  pipeline,
		logger:    logger.Named("httpapi"),
		validator: validator.New(),
	}
}

type listQuery struct {
	Limit int `validate:"gte=0"`
}

type headToHeadQuery struct {
	Team1 string `validate:"required,max=64"`
	Team2 string `validate:"required,max=64"`
}

type normalizeTeamQuery struct {
	Name string `validate:"required,max=128"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	payload := healthDTO{Status: "ok"}
	if h.reader != nil {
		cs := h.reader.CacheStats()
		payload.Cache = &cacheStatsDTO{Entries: cs.Entries, Hits: cs.Hits, Misses: cs.Misses}
	}
	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	items, err := h.reader.ListStandings(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]standingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, standingToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListTopBatsmen(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopBatsmen")
	defer span.End()

	limit, err := h.parseLimit(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	items, err := h.reader.ListTopBatsmen(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list top batsmen failed", "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]batsmanDTO, 0, len(items))
	for _, item := range items {
		out = append(out, batsmanToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListTopBowlers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopBowlers")
	defer span.End()

	limit, err := h.parseLimit(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	items, err := h.reader.ListTopBowlers(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list top bowlers failed", "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]bowlerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, bowlerToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListCleanBowled(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCleanBowled")
	defer span.End()

	serveList(ctx, h, w, r, "clean bowled", h.reader.ListCleanBowled, cleanBowledToDTO)
}

func (h *Handler) ListPowerplay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPowerplay")
	defer span.End()

	items, err := h.reader.ListPowerplay(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list powerplay failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]powerplayDTO, 0, len(items))
	for _, item := range items {
		out = append(out, powerplayToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListBattingMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBattingMetrics")
	defer span.End()

	serveList(ctx, h, w, r, "batting metrics", h.reader.ListBattingMetrics, battingMetricToDTO)
}

func (h *Handler) ListBowlingMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBowlingMetrics")
	defer span.End()

	serveList(ctx, h, w, r, "bowling metrics", h.reader.ListBowlingMetrics, bowlingMetricToDTO)
}

func (h *Handler) ListFielderCatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFielderCatches")
	defer span.End()

	serveList(ctx, h, w, r, "fielder catches", h.reader.ListFielderCatches, fielderCatchToDTO)
}

func (h *Handler) ListDroppedCatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDroppedCatches")
	defer span.End()

	serveList(ctx, h, w, r, "dropped catches", h.reader.ListDroppedCatches, droppedCatchToDTO)
}

func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHeadToHead")
	defer span.End()

	query := headToHeadQuery{
		Team1: strings.TrimSpace(r.URL.Query().Get("team1")),
		Team2: strings.TrimSpace(r.URL.Query().Get("team2")),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	row, err := h.reader.HeadToHead(ctx, query.Team1, query.Team2)
	if err != nil {
		h.logger.WarnContext(ctx, "get head to head failed", "team1", query.Team1, "team2", query.Team2, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, headToHeadToDTO(row))
}

func (h *Handler) GetLatestMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLatestMatch")
	defer span.End()

	row, err := h.reader.LatestMatch(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get latest match failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, latestMatchToDTO(row))
}

func (h *Handler) NormalizeTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.NormalizeTeam")
	defer span.End()

	query := normalizeTeamQuery{Name: strings.TrimSpace(r.URL.Query().Get("name"))}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	normalized := h.reader.NormalizeTeam(query.Name)
	writeSuccess(ctx, w, http.StatusOK, normalizedTeamDTO{
		Input:      query.Name,
		Normalized: normalized,
		Known:      team.IsKnown(normalized),
	})
}

func (h *Handler) GetDashboardProjection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboardProjection")
	defer span.End()

	name := r.PathValue("name")
	item, err := h.reader.Projection(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "get dashboard projection failed", "name", name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, projectionToDTO(item))
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// parseLimit reads ?limit=. Absent means zero, which the read side turns
// into its default page size.
func (h *Handler) parseLimit(ctx context.Context, r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput)
	}
	if err := h.validateRequest(ctx, listQuery{Limit: limit}); err != nil {
		return 0, err
	}
	return limit, nil
}

func serveList[T, D any](
	ctx context.Context,
	h *Handler,
	w http.ResponseWriter,
	r *http.Request,
	what string,
	list func(context.Context, int) ([]T, error),
	toDTO func(T) D,
) {
	limit, err := h.parseLimit(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	items, err := list(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list "+what+" failed", "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, toDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
