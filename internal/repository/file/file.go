package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kottakkal/traffic-backend/internal/domain"
)

const reportsFile = "reports.json"

// ReportStore implements domain.ReportRepository on a single JSON array file.
// Every append is a read-modify-write of the whole collection, serialized by
// a mutex so concurrent appends within the process cannot lose updates or
// hand out duplicate ids.
type ReportStore struct {
	path   string
	logger *logrus.Logger

	mu sync.Mutex
}

// NewReportStore creates a store rooted at dataDir, creating the directory
// if it does not exist yet.
func NewReportStore(dataDir string, logger *logrus.Logger) (*ReportStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("file: failed to create data directory: %w", err)
	}
	return &ReportStore{
		path:   filepath.Join(dataDir, reportsFile),
		logger: logger,
	}, nil
}

// List returns all reports in filing order. A missing or unreadable file is
// a recoverable condition and yields an empty slice, not an error.
func (s *ReportStore) List(ctx context.Context) ([]domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

// Append assigns the next id and the write timestamp, then rewrites the
// whole file. On failure the persisted collection is left untouched.
func (s *ReportStore) Append(ctx context.Context, report *domain.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports := s.load()
	report.ID = len(reports) + 1
	report.Timestamp = time.Now()
	reports = append(reports, *report)

	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("file: failed to marshal reports: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("file: failed to write %s: %w", s.path, err)
	}
	return nil
}

// Health checks that the data directory is reachable
func (s *ReportStore) Health(ctx context.Context) error {
	if _, err := os.Stat(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("file: data directory unavailable: %w", err)
	}
	return nil
}

// load reads the backing file, degrading any failure to an empty log.
// Callers must hold s.mu.
func (s *ReportStore) load() []domain.Report {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.WithError(err).Error("Failed to read report log")
		}
		return []domain.Report{}
	}

	var reports []domain.Report
	if err := json.Unmarshal(data, &reports); err != nil {
		s.logger.WithError(err).Error("Failed to parse report log, treating as empty")
		return []domain.Report{}
	}
	return reports
}
