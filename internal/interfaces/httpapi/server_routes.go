package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/leaderboards/batsmen", handler.ListTopBatsmen)
	mux.HandleFunc("GET /v1/leaderboards/bowlers", handler.ListTopBowlers)
	mux.HandleFunc("GET /v1/stats/clean-bowled", handler.ListCleanBowled)
	mux.HandleFunc("GET /v1/stats/powerplay", handler.ListPowerplay)
	mux.HandleFunc("GET /v1/stats/batting", handler.ListBattingMetrics)
	mux.HandleFunc("GET /v1/stats/bowling", handler.ListBowlingMetrics)
	mux.HandleFunc("GET /v1/stats/fielding", handler.ListFielderCatches)
	mux.HandleFunc("GET /v1/stats/dropped-catches", handler.ListDroppedCatches)
	mux.HandleFunc("GET /v1/head-to-head", handler.GetHeadToHead)
	mux.HandleFunc("GET /v1/matches/latest", handler.GetLatestMatch)
	mux.HandleFunc("GET /v1/teams/normalize", handler.NormalizeTeam)
	// Chart-ready datasets, one per dashboard panel.
	mux.HandleFunc("GET /v1/dashboard/{name}", handler.GetDashboardProjection)
}

func registerInternalPipelineRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("POST /v1/internal/pipeline/runs", RequireAdminToken(adminToken, http.HandlerFunc(handler.RunPipeline)))
	mux.Handle("GET /v1/internal/pipeline/runs", RequireAdminToken(adminToken, http.HandlerFunc(handler.ListPipelineRuns)))
}
