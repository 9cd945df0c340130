package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bytedance/sonic"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/cricket-stats/internal/domain/persistence"
	"github.com/riskibarqy/cricket-stats/internal/domain/rawmatch"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

const (
	StageRawIngestion = "raw_ingestion"

	scorecardFileSuffix  = "_scard.json"
	commentaryFileSuffix = "_comm.json"
	defaultIngestWorkers = 4
)

// RawIngestionService loads match folders from a data directory into the raw
// tables. A folder is named after its match id and holds
// {folder}_scard.json plus an optional {folder}_comm.json.
type RawIngestionService struct {
	repo    rawmatch.Repository
	dataDir string
	workers int
	logger  *logging.Logger
}

func NewRawIngestionService(repo rawmatch.Repository, dataDir string, workers int, logger *logging.Logger) *RawIngestionService {
	if workers <= 0 {
		workers = defaultIngestWorkers
	}
	return &RawIngestionService{
		repo:    repo,
		dataDir: strings.TrimSpace(dataDir),
		workers: workers,
		logger:  loggerOrDefault(logger).Named("pipeline.raw"),
	}
}

// Ingest stores every folder whose match id is not yet in raw_scorecard.
// Processed counts newly stored matches; Skipped counts folders already stored.
func (s *RawIngestionService) Ingest(ctx context.Context) (StatRunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RawIngestionService.Ingest")
	defer span.End()

	run := beginStat(StageRawIngestion)
	summary, err := s.ingest(ctx, run)
	logStatSummary(ctx, s.logger, summary)
	return summary, err
}

func (s *RawIngestionService) ingest(ctx context.Context, run *statRun) (StatRunSummary, error) {
	if s.dataDir == "" {
		err := fmt.Errorf("%w: raw data directory is required", ErrInvalidInput)
		return run.finish(err), err
	}

	folders, err := listMatchFolders(s.dataDir)
	if err != nil {
		return run.finish(err), err
	}
	if len(folders) == 0 {
		s.logger.WarnContext(ctx, "no match folders found", "data_dir", s.dataDir)
		return run.finish(nil), nil
	}

	existingIDs, err := s.repo.ListMatchIDs(ctx)
	if err != nil {
		err = fmt.Errorf("list stored match ids: %w", err)
		return run.finish(err), err
	}
	existing := make(map[string]struct{}, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = struct{}{}
	}

	var jobs []ingestJob
	var backfill []string
	for _, folder := range folders {
		if _, ok := existing[folder]; !ok {
			jobs = append(jobs, ingestJob{folder: folder})
			continue
		}
		if fileExists(s.commentaryPath(folder)) {
			backfill = append(backfill, folder)
			continue
		}
		s.logger.DebugContext(ctx, "skipping stored match", "match_id", folder)
		run.skipped(1)
	}
	if len(backfill) > 0 {
		missing, err := s.missingCommentary(ctx, backfill)
		if err != nil {
			return run.finish(err), err
		}
		run.skipped(len(backfill) - len(missing))
		for _, folder := range missing {
			jobs = append(jobs, ingestJob{folder: folder, commentaryOnly: true})
		}
	}
	if len(jobs) == 0 {
		return run.finish(nil), nil
	}

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var loaded, failed, unchanged atomic.Int32
	var abortOnce sync.Once
	var abortErr error

	pool, err := ants.NewPool(min(s.workers, len(jobs)))
	if err != nil {
		err = fmt.Errorf("create worker pool: %w", err)
		return run.finish(err), err
	}
	defer pool.Release()

	var workers sync.WaitGroup
	var submitErr error
	for _, job := range jobs {
		job := job
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if ctx.Err() != nil {
				return
			}

			stored, withCommentary, err := s.runJob(ctx, job)
			if err != nil {
				failed.Add(1)
				s.logger.ErrorContext(ctx, "ingest match folder failed",
					"match_id", job.folder,
					"commentary_only", job.commentaryOnly,
					"reason", ingestFailureReason(err),
					"error", err,
				)
				if persistence.IsUnavailable(err) {
					abortOnce.Do(func() {
						abortErr = err
						cancel()
					})
				}
				return
			}
			if !stored {
				unchanged.Add(1)
				return
			}
			loaded.Add(1)
			if job.commentaryOnly {
				s.logger.InfoContext(ctx, "commentary backfilled", "match_id", job.folder)
				return
			}
			s.logger.InfoContext(ctx, "match loaded", "match_id", job.folder, "commentary", withCommentary)
		}); err != nil {
			workers.Done()
			submitErr = fmt.Errorf("submit folder to worker pool: %w", err)
			cancel()
			break
		}
	}
	workers.Wait()

	run.processed(int(loaded.Load()))
	run.failed(int(failed.Load()))
	run.skipped(int(unchanged.Load()))
	switch {
	case submitErr != nil:
		return run.finish(submitErr), submitErr
	case abortErr != nil:
		return run.finish(abortErr), abortErr
	}
	if err := parent.Err(); err != nil {
		return run.finish(err), err
	}
	return run.finish(nil), nil
}

// ingestJob loads a new folder, or only its commentary when the scorecard is
// already stored.
type ingestJob struct {
	folder         string
	commentaryOnly bool
}

// runJob reports whether anything was stored and whether that included
// commentary.
func (s *RawIngestionService) runJob(ctx context.Context, job ingestJob) (bool, bool, error) {
	if job.commentaryOnly {
		stored, err := s.storeCommentary(ctx, job.folder)
		return stored, stored, err
	}
	withCommentary, err := s.ingestFolder(ctx, job.folder)
	return err == nil, withCommentary, err
}

// ingestFolder stores the scorecard, then the commentary when one exists. A
// failed commentary insert is retried by the next run.
func (s *RawIngestionService) ingestFolder(ctx context.Context, folder string) (bool, error) {
	scorecard, err := readJSONFile(filepath.Join(s.dataDir, folder, folder+scorecardFileSuffix))
	if err != nil {
		return false, err
	}
	if err := s.repo.InsertScorecard(ctx, rawmatch.Scorecard{MatchID: folder, Payload: scorecard}); err != nil {
		return false, fmt.Errorf("insert scorecard: %w", err)
	}
	return s.storeCommentary(ctx, folder)
}

func (s *RawIngestionService) storeCommentary(ctx context.Context, folder string) (bool, error) {
	commentary, err := readJSONFile(s.commentaryPath(folder))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		s.logger.WarnContext(ctx, "commentary unreadable, keeping scorecard only", "match_id", folder, "error", err)
		return false, nil
	}
	if err := s.repo.InsertCommentary(ctx, rawmatch.Commentary{MatchID: folder, Payload: commentary}); err != nil {
		return false, fmt.Errorf("insert commentary: %w", err)
	}
	return true, nil
}

// missingCommentary filters stored folders down to those without a
// raw_commentary row.
func (s *RawIngestionService) missingCommentary(ctx context.Context, folders []string) ([]string, error) {
	ids, err := s.repo.ListCommentaryMatchIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stored commentary ids: %w", err)
	}
	stored := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		stored[id] = struct{}{}
	}

	var out []string
	for _, folder := range folders {
		if _, ok := stored[folder]; !ok {
			out = append(out, folder)
		}
	}
	return out, nil
}

func (s *RawIngestionService) commentaryPath(folder string) string {
	return filepath.Join(s.dataDir, folder, folder+commentaryFileSuffix)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

var errInvalidJSON = errors.New("invalid json document")

func readJSONFile(path string) ([]byte, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if !sonic.Valid(payload) {
		return nil, fmt.Errorf("%w: %s", errInvalidJSON, filepath.Base(path))
	}
	return payload, nil
}

func ingestFailureReason(err error) string {
	switch {
	case errors.Is(err, errInvalidJSON), errors.Is(err, fs.ErrNotExist):
		return reasonParseError
	default:
		return reasonDBError
	}
}

// listMatchFolders returns the sorted sub-directory names of dir. Hidden
// entries are ignored.
func listMatchFolders(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read raw data directory: %w", err)
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}
