package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

type stubMatchProvider struct {
	mu             sync.Mutex
	matches        []ExternalMatch
	listErr        error
	failCommentary map[int64]bool
	scorecardCalls []int64
}

func (p *stubMatchProvider) ListSeriesMatches(_ context.Context, seriesID string) ([]ExternalMatch, error) {
	if seriesID != "9237" {
		return nil, errors.New("unexpected series")
	}
	return p.matches, p.listErr
}

func (p *stubMatchProvider) FetchScorecard(_ context.Context, matchID int64) ([]byte, error) {
	p.mu.Lock()
	p.scorecardCalls = append(p.scorecardCalls, matchID)
	p.mu.Unlock()
	return []byte(`{"matchId":` + strconv.FormatInt(matchID, 10) + `}`), nil
}

func (p *stubMatchProvider) FetchCommentary(_ context.Context, matchID int64) ([]byte, error) {
	if p.failCommentary[matchID] {
		return nil, errors.New("upstream 429")
	}
	return []byte(`{"commentaryList":[]}`), nil
}

func readManifest(t *testing.T, path string) []string {
	t.Helper()

	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var ids []string
	if err := sonic.Unmarshal(payload, &ids); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	return ids
}

func TestMatchFetchService_FetchDownloadsCompletedMatches(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	manifest := filepath.Join(dataDir, defaultManifestName)
	if err := os.WriteFile(manifest, []byte(`["100"]`), 0o644); err != nil {
		t.Fatalf("seed manifest: %v", err)
	}

	provider := &stubMatchProvider{
		matches: []ExternalMatch{
			{ID: 100, Team1: "Chennai Super Kings", Team2: "Mumbai Indians", State: "Complete"},
			{ID: 101, Team1: "Royal Challengers Bengaluru", Team2: "Punjab Kings", State: "complete"},
			{ID: 102, Team1: "Delhi Capitals", Team2: "Gujarat Titans", State: "Complete"},
			{ID: 103, Team1: "Rajasthan Royals", Team2: "Lucknow Super Giants", State: "Upcoming"},
		},
		failCommentary: map[int64]bool{102: true},
	}

	service := NewMatchFetchService(provider, MatchFetchConfig{SeriesID: " 9237 ", DataDir: dataDir, Workers: 3}, logging.NewNop())
	got, err := service.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got.Processed != 1 || got.Skipped != 1 || got.Failed != 1 {
		t.Fatalf("unexpected counters %+v", got)
	}

	folder := "101_RoyalChallengersBengaluru_vs_PunjabKings"
	for _, name := range []string{folder + scorecardFileSuffix, folder + commentaryFileSuffix} {
		if _, err := os.Stat(filepath.Join(dataDir, folder, name)); err != nil {
			t.Fatalf("expected %s on disk: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dataDir, "102_DelhiCapitals_vs_GujaratTitans")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("a failed match must not leave a folder behind, got %v", err)
	}

	ids := readManifest(t, manifest)
	if len(ids) != 2 || ids[0] != "100" || ids[1] != "101" {
		t.Fatalf("unexpected manifest %v", ids)
	}
	for _, id := range provider.scorecardCalls {
		if id == 100 || id == 103 {
			t.Fatalf("match %d should not be requested", id)
		}
	}
}

func TestMatchFetchService_FetchNothingNew(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	provider := &stubMatchProvider{
		matches: []ExternalMatch{{ID: 200, Team1: "A", Team2: "B", State: "In Progress"}},
	}

	service := NewMatchFetchService(provider, MatchFetchConfig{SeriesID: "9237", DataDir: dataDir}, logging.NewNop())
	got, err := service.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got.Status != StatStatusSkipped {
		t.Fatalf("expected skipped status, got %+v", got)
	}
	if _, err := os.Stat(filepath.Join(dataDir, defaultManifestName)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("manifest should not be written when nothing was fetched")
	}
}

func TestMatchFetchService_FetchValidatesConfig(t *testing.T) {
	t.Parallel()

	service := NewMatchFetchService(&stubMatchProvider{}, MatchFetchConfig{DataDir: t.TempDir()}, logging.NewNop())
	if _, err := service.Fetch(context.Background()); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	service = NewMatchFetchService(nil, MatchFetchConfig{SeriesID: "9237", DataDir: t.TempDir()}, logging.NewNop())
	if _, err := service.Fetch(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestMatchFetchService_CorruptManifest(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dataDir, defaultManifestName), []byte(`{"not":"a list"}`), 0o644); err != nil {
		t.Fatalf("seed manifest: %v", err)
	}
	provider := &stubMatchProvider{matches: []ExternalMatch{{ID: 1, State: "Complete"}}}

	service := NewMatchFetchService(provider, MatchFetchConfig{SeriesID: "9237", DataDir: dataDir}, logging.NewNop())
	got, err := service.Fetch(context.Background())
	if err == nil {
		t.Fatalf("expected manifest decode error")
	}
	if got.Status != StatStatusFailed {
		t.Fatalf("unexpected status %s", got.Status)
	}
}
