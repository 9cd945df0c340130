// Command pipeline runs the RAW -> SILVER -> GOLD stages from the shell.
//
// Usage:
//
//	cricket-pipeline run --force
//	cricket-pipeline fetch
//	cricket-pipeline ingest
//	cricket-pipeline silver
//	cricket-pipeline gold
//	cricket-pipeline custom-stats
//	cricket-pipeline dashboard
//	cricket-pipeline refresh
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/cricket-stats/internal/app"
	"github.com/riskibarqy/cricket-stats/internal/config"
	"github.com/riskibarqy/cricket-stats/internal/observability"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"github.com/riskibarqy/cricket-stats/internal/usecase"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cricket-pipeline",
		Short:        "Cricket stats pipeline CLI",
		SilenceUsage: true,
	}

	root.AddCommand(runCmd())
	root.AddCommand(stageCmd("fetch", "Download completed matches from the score feed", func(ctx context.Context, st usecase.PipelineStages) ([]usecase.StatRunSummary, error) {
		if st.Fetch == nil {
			return nil, errors.New("CRICBUZZ_API_KEY is required")
		}
		return single(st.Fetch.Fetch(ctx))
	}))
	root.AddCommand(stageCmd("ingest", "Load new match folders into the raw tables", func(ctx context.Context, st usecase.PipelineStages) ([]usecase.StatRunSummary, error) {
		return single(st.Ingest.Ingest(ctx))
	}))
	root.AddCommand(stageCmd("silver", "Rebuild batting and bowling facts from raw scorecards", func(ctx context.Context, st usecase.PipelineStages) ([]usecase.StatRunSummary, error) {
		return single(st.Silver.Transform(ctx))
	}))
	root.AddCommand(stageCmd("gold", "Rebuild leaderboards and the points table", func(ctx context.Context, st usecase.PipelineStages) ([]usecase.StatRunSummary, error) {
		out, err := st.Leaderboard.Rebuild(ctx)
		if err != nil {
			return out, err
		}
		standings, err := st.Standings.Rebuild(ctx)
		return append(out, standings), err
	}))
	root.AddCommand(stageCmd("custom-stats", "Rebuild the custom gold stat tables", func(ctx context.Context, st usecase.PipelineStages) ([]usecase.StatRunSummary, error) {
		return st.CustomStats.RunAll(ctx)
	}))
	root.AddCommand(stageCmd("dashboard", "Rebuild chart-ready dashboard projections", func(ctx context.Context, st usecase.PipelineStages) ([]usecase.StatRunSummary, error) {
		return single(st.Projections.Refresh(ctx))
	}))
	root.AddCommand(stageCmd("refresh", "Ask Superset to reload its charts", func(ctx context.Context, st usecase.PipelineStages) ([]usecase.StatRunSummary, error) {
		if st.Refresh == nil {
			return nil, errors.New("SUPERSET_ENABLED=true is required")
		}
		return single(st.Refresh.Refresh(ctx))
	}))

	return root
}

func runCmd() *cobra.Command {
	var opts usecase.PipelineOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every stage once under the pipeline lock",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(func(ctx context.Context, c *app.Container) error {
				opts.Trigger = usecase.TriggerCLI
				summary, err := c.Pipeline.Run(ctx, opts)
				if errors.Is(err, usecase.ErrRunInProgress) {
					return err
				}
				if printErr := printJSON(cmd, summary); printErr != nil {
					return printErr
				}
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Run downstream stages even when no new match was ingested")
	cmd.Flags().BoolVar(&opts.SkipFetch, "skip-fetch", false, "Use only match folders already on disk")
	cmd.Flags().BoolVar(&opts.SkipRefresh, "skip-refresh", false, "Do not notify Superset after the run")
	return cmd
}

type stageFunc func(ctx context.Context, stages usecase.PipelineStages) ([]usecase.StatRunSummary, error)

// stageCmd runs one stage on its own. It does not take the pipeline lock, so
// it is meant for backfills and debugging rather than scheduled use.
func stageCmd(name, short string, fn stageFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(func(ctx context.Context, c *app.Container) error {
				started := time.Now()
				out, err := fn(ctx, c.Stages)
				logging.Default().InfoContext(ctx, "stage finished",
					"stage", name,
					"duration_ms", time.Since(started).Milliseconds(),
					"ok", err == nil,
				)
				if printErr := printJSON(cmd, out); printErr != nil {
					return printErr
				}
				return err
			})
		},
	}
}

func single(summary usecase.StatRunSummary, err error) ([]usecase.StatRunSummary, error) {
	return []usecase.StatRunSummary{summary}, err
}

func withContainer(fn func(ctx context.Context, c *app.Container) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel).With("service", cfg.ServiceName)
	logging.SetDefault(logger)
	defer logger.Sync()

	shutdownTracing, err := observability.InitUptrace(cfg, "pipeline", logger)
	if err != nil {
		return fmt.Errorf("init uptrace: %w", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("uptrace shutdown failed", "error", err)
		}
	}()

	stopProfiling, err := observability.InitPyroscope(cfg, "pipeline", logger)
	if err != nil {
		return fmt.Errorf("init pyroscope: %w", err)
	}
	defer func() { _ = stopProfiling() }()

	db, err := app.OpenDB(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	container, err := app.NewContainer(cfg, db, logger)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer container.Close()

	return fn(ctx, container)
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
