package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/kottakkal/traffic-backend/internal/domain"
	"github.com/kottakkal/traffic-backend/pkg/utils"
)

// Dashboard headline values observed over the simulation window
const (
	peakCongestionTime = "8:00 AM - 9:00 AM"
	mostCongestedArea  = "AVS Junction"
)

const recentReportLimit = 20

// BaselineSource exposes the optional historical simulation dataset
type BaselineSource interface {
	SampleCount() int
}

// AnalyticsService composes estimator and report-log outputs for the
// dashboard. It holds no state of its own.
type AnalyticsService struct {
	trafficSvc *TrafficService
	reportSvc  *ReportService
	baseline   BaselineSource
	registry   *domain.Registry
	logger     *logrus.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	trafficSvc *TrafficService,
	reportSvc *ReportService,
	baseline BaselineSource,
	registry *domain.Registry,
	logger *logrus.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		trafficSvc: trafficSvc,
		reportSvc:  reportSvc,
		baseline:   baseline,
		registry:   registry,
		logger:     logger,
	}
}

// TotalReports counts every filed report
func (s *AnalyticsService) TotalReports(ctx context.Context) int {
	return len(s.reportSvc.List(ctx))
}

// ActiveIncidentCount counts reports still open. An absent status counts
// as active.
func (s *AnalyticsService) ActiveIncidentCount(ctx context.Context) int {
	count := 0
	for _, r := range s.reportSvc.List(ctx) {
		if r.IsActive() {
			count++
		}
	}
	return count
}

// HourlyCurve returns the 24-bucket congestion curve: for each hour, the
// mean estimate over all registered locations. Each estimate draws its own
// noise, so the curve itself is noisy run to run.
func (s *AnalyticsService) HourlyCurve() []domain.HourlyPattern {
	keys := s.registry.Keys()
	curve := make([]domain.HourlyPattern, 0, 24)
	for hour := 0; hour < 24; hour++ {
		sum := 0.0
		for _, key := range keys {
			sum += s.trafficSvc.Estimate(key, hour)
		}
		curve = append(curve, domain.HourlyPattern{
			Hour:  hour,
			Level: utils.RoundTo(sum/float64(len(keys)), 4),
		})
	}
	return curve
}

// Dashboard assembles the full dashboard payload. The report-log reads, the
// live snapshot, and the hourly curve are built concurrently.
func (s *AnalyticsService) Dashboard(ctx context.Context) domain.DashboardData {
	var (
		reports  []domain.Report
		snapshot domain.TrafficSnapshot
		curve    []domain.HourlyPattern
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		reports = s.reportSvc.List(gctx)
		return nil
	})
	g.Go(func() error {
		snapshot = s.trafficSvc.Snapshot()
		return nil
	})
	g.Go(func() error {
		curve = s.HourlyCurve()
		return nil
	})

	// Subtasks degrade internally, so the group never returns an error,
	// but Wait still fences all three results.
	if err := g.Wait(); err != nil {
		s.logger.WithError(err).Error("Dashboard aggregation failed")
	}

	active := 0
	for _, r := range reports {
		if r.IsActive() {
			active++
		}
	}

	recent := reports
	if len(recent) > recentReportLimit {
		recent = recent[len(recent)-recentReportLimit:]
	}

	return domain.DashboardData{
		Analytics: domain.AnalyticsSummary{
			TotalReports:       len(reports),
			ActiveIncidents:    active,
			PeakCongestionTime: peakCongestionTime,
			MostCongestedArea:  mostCongestedArea,
			BaselineSamples:    s.baseline.SampleCount(),
		},
		TrafficPatterns: curve,
		RecentReports:   recent,
		Traffic:         snapshot,
		Timestamp:       time.Now(),
	}
}
