package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/kottakkal/traffic-backend/internal/domain"
)

// ReportService handles incident report submission and listing
type ReportService struct {
	repo     ReportRepository
	registry *domain.Registry
	logger   *logrus.Logger
}

// NewReportService creates a new report service
func NewReportService(repo ReportRepository, registry *domain.Registry, logger *logrus.Logger) *ReportService {
	return &ReportService{
		repo:     repo,
		registry: registry,
		logger:   logger,
	}
}

// Submit applies submission defaults and appends the report to the log.
// The store assigns id and timestamp.
func (s *ReportService) Submit(ctx context.Context, report *domain.Report) error {
	if report.Severity == "" {
		report.Severity = domain.SeverityMedium
	}
	report.Status = domain.StatusActive
	if report.ReportedBy == "" {
		report.ReportedBy = domain.DefaultReporter
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"type":    report.Type,
	})

	if report.Lat != 0 || report.Lng != 0 {
		nearestKey, _ := s.registry.Nearest(report.Lat, report.Lng)
		log = log.WithField("nearest_landmark", nearestKey)
	}

	if err := s.repo.Append(ctx, report); err != nil {
		log.WithError(err).Error("Failed to save incident report")
		return fmt.Errorf("service: could not save report: %w", err)
	}

	log.WithField("report_id", report.ID).Info("Incident report saved")
	return nil
}

// List returns the full report log, oldest first. A store failure degrades
// to an empty list so callers never surface it as fatal.
func (s *ReportService) List(ctx context.Context) []domain.Report {
	reports, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load incident reports")
		return []domain.Report{}
	}
	return reports
}

// Recent returns the last n reports, oldest first
func (s *ReportService) Recent(ctx context.Context, n int) []domain.Report {
	reports := s.List(ctx)
	if len(reports) > n {
		reports = reports[len(reports)-n:]
	}
	return reports
}
