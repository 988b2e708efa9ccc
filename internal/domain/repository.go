package domain

import "context"

// ReportRepository defines the interface for the incident-report log.
// This follows the Dependency Inversion Principle - domain defines the interface
type ReportRepository interface {
	// Append assigns the report's ID and Timestamp and persists it
	Append(ctx context.Context, report *Report) error

	// List returns all reports in filing order, oldest first
	List(ctx context.Context) ([]Report, error)

	// Health checks store availability
	Health(ctx context.Context) error
}
