package service

import (
	"github.com/kottakkal/traffic-backend/internal/domain"
)

// ReportRepository is re-exported from domain for convenience
type ReportRepository = domain.ReportRepository
