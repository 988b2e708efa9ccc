package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kottakkal/traffic-backend/internal/domain"
)

// ReportRepository implements domain.ReportRepository on PostgreSQL.
// Used instead of the file store when DATABASE_URL is configured.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates the repository and ensures its table exists
func NewReportRepository(ctx context.Context, pool *pgxpool.Pool) (*ReportRepository, error) {
	r := &ReportRepository{pool: pool}
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ReportRepository) ensureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS incident_reports (
			id SERIAL PRIMARY KEY,
			type TEXT NOT NULL,
			location TEXT NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			lng DOUBLE PRECISION NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			severity TEXT NOT NULL DEFAULT 'medium',
			status TEXT NOT NULL DEFAULT 'active',
			reported_by TEXT NOT NULL DEFAULT 'Anonymous',
			reported_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("postgres: failed to ensure reports schema: %w", err)
	}
	return nil
}

// Append persists a report, letting the database assign id and timestamp
func (r *ReportRepository) Append(ctx context.Context, report *domain.Report) error {
	query := `
		INSERT INTO incident_reports (
			type, location, lat, lng, description, severity, status, reported_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, reported_at
	`

	var reportedAt time.Time
	err := r.pool.QueryRow(ctx, query,
		report.Type, report.Location, report.Lat, report.Lng,
		report.Description, report.Severity, report.Status, report.ReportedBy,
	).Scan(&report.ID, &reportedAt)
	if err != nil {
		return fmt.Errorf("postgres: failed to save report: %w", err)
	}
	report.Timestamp = reportedAt

	return nil
}

// List retrieves all reports, oldest first
func (r *ReportRepository) List(ctx context.Context) ([]domain.Report, error) {
	query := `
		SELECT id, type, location, lat, lng, description, severity, status,
			   reported_by, reported_at
		FROM incident_reports
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query reports: %w", err)
	}
	defer rows.Close()

	results := []domain.Report{}
	for rows.Next() {
		var rep domain.Report
		err := rows.Scan(
			&rep.ID, &rep.Type, &rep.Location, &rep.Lat, &rep.Lng,
			&rep.Description, &rep.Severity, &rep.Status, &rep.ReportedBy, &rep.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan report row: %w", err)
		}
		results = append(results, rep)
	}

	return results, rows.Err()
}

// Health checks database connectivity
func (r *ReportRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}
