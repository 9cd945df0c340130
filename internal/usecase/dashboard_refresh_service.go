package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

const StageDashboardRefresh = "dashboard_refresh"

// DashboardRefresher warms the BI tool's chart caches.
type DashboardRefresher interface {
	Login(ctx context.Context) (string, error)
	RefreshChart(ctx context.Context, accessToken string, chartID int) error
}

type DashboardRefreshService struct {
	refresher DashboardRefresher
	chartIDs  []int
	logger    *logging.Logger
}

func NewDashboardRefreshService(refresher DashboardRefresher, chartIDs []int, logger *logging.Logger) *DashboardRefreshService {
	return &DashboardRefreshService{
		refresher: refresher,
		chartIDs:  append([]int(nil), chartIDs...),
		logger:    loggerOrDefault(logger).Named("pipeline.refresh"),
	}
}

// Refresh logs in once and requests every configured chart. A failed chart
// is counted and logged; only a failed login is returned as an error.
func (s *DashboardRefreshService) Refresh(ctx context.Context) (StatRunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardRefreshService.Refresh")
	defer span.End()

	run := beginStat(StageDashboardRefresh)
	if s.refresher == nil || len(s.chartIDs) == 0 {
		s.logger.InfoContext(ctx, "dashboard refresh not configured, skipping")
		summary := run.finish(nil)
		logStatSummary(ctx, s.logger, summary)
		return summary, nil
	}

	token, err := s.refresher.Login(ctx)
	if err != nil {
		err = fmt.Errorf("%w: dashboard login: %v", ErrDependencyUnavailable, err)
		summary := run.finish(err)
		logStatSummary(ctx, s.logger, summary)
		return summary, err
	}

	for _, chartID := range s.chartIDs {
		if err := s.refresher.RefreshChart(ctx, token, chartID); err != nil {
			run.failed(1)
			s.logger.WarnContext(ctx, "chart refresh failed", "chart_id", chartID, "error", err)
			continue
		}
		run.processed(1)
		s.logger.DebugContext(ctx, "chart refreshed", "chart_id", chartID)
	}

	summary := run.finish(nil)
	logStatSummary(ctx, s.logger, summary)
	return summary, nil
}
