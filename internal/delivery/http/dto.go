package http

import (
	"github.com/kottakkal/traffic-backend/internal/domain"
)

// CreateReportRequest is the incident submission payload
type CreateReportRequest struct {
	Type        string  `json:"type" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Lat         float64 `json:"lat" validate:"omitempty,latitude"`
	Lng         float64 `json:"lng" validate:"omitempty,longitude"`
	Description string  `json:"description"`
	Severity    string  `json:"severity" validate:"omitempty,oneof=low medium high"`
	ReportedBy  string  `json:"reported_by"`
}

// ToReport maps the request to a domain report. Submission defaults are
// applied by the report service, not here.
func (r CreateReportRequest) ToReport() *domain.Report {
	return &domain.Report{
		Type:        r.Type,
		Location:    r.Location,
		Lat:         r.Lat,
		Lng:         r.Lng,
		Description: r.Description,
		Severity:    domain.Severity(r.Severity),
		ReportedBy:  r.ReportedBy,
	}
}

// SubmitReportResponse reports submission outcome. A store write failure is
// a non-blocking notice, not an HTTP error.
type SubmitReportResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Report  *domain.Report `json:"report,omitempty"`
}
