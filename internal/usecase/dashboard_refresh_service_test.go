package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

type failingLogin struct{}

func (failingLogin) Login(context.Context) (string, error) {
	return "", errors.New("401 unauthorized")
}

func (failingLogin) RefreshChart(context.Context, string, int) error {
	return errors.New("not logged in")
}

func TestDashboardRefreshService_RefreshCountsChartFailures(t *testing.T) {
	t.Parallel()

	refresher := &recordingRefresher{failFor: map[int]bool{7: true}}
	service := NewDashboardRefreshService(refresher, []int{5, 6, 7}, logging.NewNop())

	got, err := service.Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got.Processed != 2 || got.Failed != 1 || got.Status != StatStatusPartial {
		t.Fatalf("unexpected summary %+v", got)
	}
}

func TestDashboardRefreshService_LoginFailure(t *testing.T) {
	t.Parallel()

	service := NewDashboardRefreshService(failingLogin{}, []int{1}, logging.NewNop())
	got, err := service.Refresh(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if got.Status != StatStatusFailed {
		t.Fatalf("unexpected status %s", got.Status)
	}
}

func TestDashboardRefreshService_NotConfigured(t *testing.T) {
	t.Parallel()

	service := NewDashboardRefreshService(nil, []int{1, 2}, logging.NewNop())
	got, err := service.Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got.Status != StatStatusSkipped {
		t.Fatalf("unexpected status %s", got.Status)
	}
}
