package domain

import "time"

// Severity of a reported incident
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Status of a reported incident. Reports are created active; the resolved
// state is modeled for the log format but has no transition API yet.
type Status string

const (
	StatusActive   Status = "active"
	StatusResolved Status = "resolved"
)

// DefaultReporter is used when a submission carries no reporter name
const DefaultReporter = "Anonymous"

// Report is a user-filed traffic incident. ID and Timestamp are assigned by
// the store at write time and are immutable afterwards.
type Report struct {
	ID          int       `json:"id"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	Status      Status    `json:"status"`
	ReportedBy  string    `json:"reported_by"`
	Timestamp   time.Time `json:"timestamp"`
}

// IsActive reports whether the incident still counts as open.
// An absent status defaults to active, matching the stored log format.
func (r Report) IsActive() bool {
	return r.Status == StatusActive || r.Status == ""
}
