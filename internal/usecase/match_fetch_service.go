package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/cricket-stats/internal/domain/team"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const (
	StageMatchFetch = "match_fetch"

	matchStateComplete   = "complete"
	defaultFetchWorkers  = 2
	defaultManifestName  = "processed_matches.json"
	manifestIndentPrefix = ""
	manifestIndent       = "    "
)

// MatchProvider lists and downloads matches from the upstream score feed.
type MatchProvider interface {
	ListSeriesMatches(ctx context.Context, seriesID string) ([]ExternalMatch, error)
	FetchScorecard(ctx context.Context, matchID int64) ([]byte, error)
	FetchCommentary(ctx context.Context, matchID int64) ([]byte, error)
}

// ExternalMatch is one fixture of a series as reported by the provider.
type ExternalMatch struct {
	ID    int64
	Team1 string
	Team2 string
	State string
}

// IsComplete reports whether the provider considers the match finished.
func (m ExternalMatch) IsComplete() bool {
	return strings.EqualFold(strings.TrimSpace(m.State), matchStateComplete)
}

type MatchFetchConfig struct {
	SeriesID     string
	DataDir      string
	ManifestPath string
	Workers      int
}

// MatchFetchService downloads completed matches into the raw data directory
// and records them in a JSON manifest so later runs only fetch new ones.
type MatchFetchService struct {
	provider MatchProvider
	cfg      MatchFetchConfig
	logger   *logging.Logger
}

func NewMatchFetchService(provider MatchProvider, cfg MatchFetchConfig, logger *logging.Logger) *MatchFetchService {
	cfg.SeriesID = strings.TrimSpace(cfg.SeriesID)
	cfg.DataDir = strings.TrimSpace(cfg.DataDir)
	if strings.TrimSpace(cfg.ManifestPath) == "" && cfg.DataDir != "" {
		cfg.ManifestPath = filepath.Join(cfg.DataDir, defaultManifestName)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultFetchWorkers
	}
	return &MatchFetchService{
		provider: provider,
		cfg:      cfg,
		logger:   loggerOrDefault(logger).Named("pipeline.fetch"),
	}
}

type fetchOutcome struct {
	matchID int64
	folder  string
	err     error
}

// Fetch downloads every completed match that is not in the manifest yet.
func (s *MatchFetchService) Fetch(ctx context.Context) (StatRunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchFetchService.Fetch")
	defer span.End()

	run := beginStat(StageMatchFetch)
	summary, err := s.fetch(ctx, run)
	logStatSummary(ctx, s.logger, summary)
	return summary, err
}

func (s *MatchFetchService) fetch(ctx context.Context, run *statRun) (StatRunSummary, error) {
	if s.provider == nil {
		err := fmt.Errorf("%w: match provider is not configured", ErrDependencyUnavailable)
		return run.finish(err), err
	}
	if s.cfg.SeriesID == "" || s.cfg.DataDir == "" {
		err := fmt.Errorf("%w: series id and data directory are required", ErrInvalidInput)
		return run.finish(err), err
	}

	matches, err := s.provider.ListSeriesMatches(ctx, s.cfg.SeriesID)
	if err != nil {
		err = fmt.Errorf("list series matches: %w", err)
		return run.finish(err), err
	}

	processed, err := loadManifest(s.cfg.ManifestPath)
	if err != nil {
		return run.finish(err), err
	}
	seen := make(map[string]struct{}, len(processed))
	for _, id := range processed {
		seen[id] = struct{}{}
	}

	pending := make([]ExternalMatch, 0, len(matches))
	for _, m := range matches {
		if !m.IsComplete() {
			continue
		}
		if _, ok := seen[strconv.FormatInt(m.ID, 10)]; ok {
			run.skipped(1)
			continue
		}
		pending = append(pending, m)
	}
	s.logger.InfoContext(ctx, "series listed",
		"series_id", s.cfg.SeriesID,
		"matches", len(matches),
		"new_completed", len(pending),
	)
	if len(pending) == 0 {
		return run.finish(nil), nil
	}

	// Each worker owns one slot, so the manifest keeps series order.
	outcomes := make([]fetchOutcome, len(pending))
	p := pool.New().WithMaxGoroutines(s.cfg.Workers)
	for i, m := range pending {
		i, m := i, m
		p.Go(func() {
			folder, err := s.download(ctx, m)
			outcomes[i] = fetchOutcome{matchID: m.ID, folder: folder, err: err}
		})
	}
	p.Wait()

	for _, outcome := range outcomes {
		if outcome.err != nil {
			run.failed(1)
			s.logger.ErrorContext(ctx, "fetch match failed", "match_id", outcome.matchID, "error", outcome.err)
			continue
		}
		run.processed(1)
		processed = append(processed, strconv.FormatInt(outcome.matchID, 10))
		s.logger.InfoContext(ctx, "match downloaded", "match_id", outcome.matchID, "folder", outcome.folder)
	}

	if err := saveManifest(s.cfg.ManifestPath, processed); err != nil {
		return run.finish(err), err
	}
	return run.finish(nil), nil
}

// download writes the scorecard and commentary of one match. Both documents
// are requested concurrently; a failed commentary request drops the match so
// the next run retries it.
func (s *MatchFetchService) download(ctx context.Context, m ExternalMatch) (string, error) {
	folder := team.FolderName(strconv.FormatInt(m.ID, 10), m.Team1, m.Team2)

	var scorecard, commentary []byte
	g := pool.New().WithContext(ctx).WithCancelOnError()
	g.Go(func(ctx context.Context) error {
		payload, err := s.provider.FetchScorecard(ctx, m.ID)
		if err != nil {
			return fmt.Errorf("fetch scorecard: %w", err)
		}
		scorecard = payload
		return nil
	})
	g.Go(func(ctx context.Context) error {
		payload, err := s.provider.FetchCommentary(ctx, m.ID)
		if err != nil {
			return fmt.Errorf("fetch commentary: %w", err)
		}
		commentary = payload
		return nil
	})
	if err := g.Wait(); err != nil {
		return folder, err
	}

	dir := filepath.Join(s.cfg.DataDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return folder, fmt.Errorf("create match folder: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(dir, folder+scorecardFileSuffix), scorecard); err != nil {
		return folder, err
	}
	if err := writeFileAtomic(filepath.Join(dir, folder+commentaryFileSuffix), commentary); err != nil {
		return folder, err
	}
	return folder, nil
}

func loadManifest(path string) ([]string, error) {
	payload, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	if len(strings.TrimSpace(string(payload))) == 0 {
		return nil, nil
	}
	var ids []string
	if err := sonic.Unmarshal(payload, &ids); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return ids, nil
}

func saveManifest(path string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	payload, err := sonic.ConfigStd.MarshalIndent(ids, manifestIndentPrefix, manifestIndent)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}
	return writeFileAtomic(path, payload)
}

func writeFileAtomic(path string, payload []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", filepath.Base(path), err)
	}
	return nil
}
