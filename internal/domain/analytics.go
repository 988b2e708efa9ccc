package domain

import "time"

// AnalyticsSummary carries the dashboard headline numbers
type AnalyticsSummary struct {
	TotalReports       int    `json:"total_reports"`
	ActiveIncidents    int    `json:"active_incidents"`
	PeakCongestionTime string `json:"peak_congestion_time"`
	MostCongestedArea  string `json:"most_congested_area"`
	BaselineSamples    int    `json:"baseline_samples"`
}

// DashboardData aggregates everything the dashboard view renders
type DashboardData struct {
	Analytics       AnalyticsSummary `json:"analytics"`
	TrafficPatterns []HourlyPattern  `json:"traffic_patterns"`
	RecentReports   []Report         `json:"recent_reports"`
	Traffic         TrafficSnapshot  `json:"traffic"`
	Timestamp       time.Time        `json:"timestamp"`
}
