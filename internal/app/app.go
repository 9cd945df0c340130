package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/cricket-stats/external/cricbuzz"
	"github.com/riskibarqy/cricket-stats/external/superset"
	"github.com/riskibarqy/cricket-stats/internal/config"
	"github.com/riskibarqy/cricket-stats/internal/domain/dismissal"
	"github.com/riskibarqy/cricket-stats/internal/domain/identity"
	"github.com/riskibarqy/cricket-stats/internal/domain/matchfact"
	"github.com/riskibarqy/cricket-stats/internal/domain/team"
	"github.com/riskibarqy/cricket-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/cricket-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/cricket-stats/internal/platform/cache"
	"github.com/riskibarqy/cricket-stats/internal/platform/id"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"github.com/riskibarqy/cricket-stats/internal/platform/resilience"
	"github.com/riskibarqy/cricket-stats/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

// Container holds every wired service. The api and the pipeline CLI build
// the same graph so a run behaves identically from either entry point.
type Container struct {
	DB       *sqlx.DB
	Stages   usecase.PipelineStages
	Pipeline *usecase.PipelineService
	Stats    *usecase.StatsQueryService
}

// OpenDB connects to Postgres through the otelsql driver wrapper so every
// query becomes a span.
func OpenDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := PostgresDSN(cfg)
	attrs := []attribute.KeyValue{attribute.String("db.system", "postgresql")}
	if name := dbNameFromURL(dsn); name != "" {
		attrs = append(attrs, attribute.String("db.name", name))
	}

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attrs...),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.PipelineWorkers + 8)
	db.SetMaxIdleConns(4)
	return db, nil
}

func NewContainer(cfg config.Config, db *sqlx.DB, logger *logging.Logger) (*Container, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	rawRepo := postgres.NewRawMatchRepository(db)
	silverRepo := postgres.NewSilverRepository(db)
	leaderboardRepo := postgres.NewLeaderboardRepository(db)
	standingRepo := postgres.NewStandingRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	dashboardRepo := postgres.NewDashboardRepository(db)
	runRepo := postgres.NewPipelineRunRepository(db)

	normalizer := team.NewDefaultNormalizer()
	extractor := matchfact.NewExtractor(identity.NewResolver(normalizer), dismissal.NewParser())

	var readCache *cache.Store
	if cfg.CacheEnabled {
		readCache = cache.NewStore(cfg.CacheTTL)
	}

	stages := usecase.PipelineStages{
		Ingest:      usecase.NewRawIngestionService(rawRepo, cfg.PipelineRawDataDir, cfg.PipelineWorkers, logger),
		Silver:      usecase.NewSilverTransformService(rawRepo, silverRepo, extractor, logger),
		Leaderboard: usecase.NewLeaderboardService(silverRepo, leaderboardRepo, cfg.PipelineTopN, logger),
		Standings:   usecase.NewStandingsService(rawRepo, silverRepo, standingRepo, extractor, logger),
		CustomStats: usecase.NewCustomStatsService(rawRepo, silverRepo, statsRepo, extractor, logger),
		Projections: usecase.NewDashboardProjectionService(leaderboardRepo, standingRepo, statsRepo, silverRepo, dashboardRepo, logger),
	}

	if strings.TrimSpace(cfg.CricbuzzAPIKey) != "" {
		provider := cricbuzz.NewClient(cricbuzz.ClientConfig{
			BaseURL:      cfg.CricbuzzBaseURL,
			APIKey:       cfg.CricbuzzAPIKey,
			APIHost:      cfg.CricbuzzAPIHost,
			Timeout:      cfg.CricbuzzTimeout,
			MaxRetries:   cfg.CricbuzzMaxRetries,
			RetryBackoff: cfg.CricbuzzRetryBackoff,
			Logger:       logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.CricbuzzCircuitEnabled,
				FailureThreshold: cfg.CricbuzzCircuitFailureCount,
				OpenTimeout:      cfg.CricbuzzCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.CricbuzzCircuitHalfOpenMaxReq,
			},
		})
		stages.Fetch = usecase.NewMatchFetchService(provider, usecase.MatchFetchConfig{
			SeriesID:     cfg.CricbuzzSeriesID,
			DataDir:      cfg.PipelineRawDataDir,
			ManifestPath: cfg.PipelineManifestPath,
			Workers:      cfg.PipelineWorkers,
		}, logger)
	} else {
		logger.Warn("match fetch disabled", "reason", "CRICBUZZ_API_KEY empty")
	}

	if cfg.SupersetEnabled {
		refresher, err := superset.NewClient(superset.ClientConfig{
			BaseURL:  cfg.SupersetBaseURL,
			Username: cfg.SupersetUsername,
			Password: cfg.SupersetPassword,
			Timeout:  cfg.SupersetTimeout,
			Logger:   logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.SupersetCircuitEnabled,
				FailureThreshold: cfg.SupersetCircuitFailureCount,
				OpenTimeout:      cfg.SupersetCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.SupersetCircuitHalfOpenMaxReq,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("build superset client: %w", err)
		}
		stages.Refresh = usecase.NewDashboardRefreshService(refresher, cfg.SupersetChartIDs, logger)
	}

	pipeline := usecase.NewPipelineService(
		stages,
		runRepo,
		postgres.NewAdvisoryRunLock(db, postgres.PipelineLockKey),
		id.NewRunIDGenerator(),
		readCache,
		logger,
	)

	return &Container{
		DB:       db,
		Stages:   stages,
		Pipeline: pipeline,
		Stats:    usecase.NewStatsQueryService(standingRepo, leaderboardRepo, statsRepo, dashboardRepo, normalizer, readCache),
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

func NewHTTPServer(cfg config.Config, container *Container, logger *logging.Logger) (*http.Server, error) {
	if container == nil {
		return nil, fmt.Errorf("container is required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	handler := httpapi.NewHandler(container.Stats, container.Pipeline, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminToken:         cfg.PipelineAdminToken,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
