package service

import (
	"github.com/sirupsen/logrus"

	"github.com/kottakkal/traffic-backend/internal/domain"
)

// routeTable is the single source of truth for mode advisories. The advisor
// is a placeholder contract for a future real router: descriptors are fixed
// per mode and independent of the endpoints supplied.
var routeTable = map[domain.Mode]domain.RouteInfo{
	domain.ModeEmergency: {
		Duration:     "8-12 min",
		Distance:     "3.2 km",
		TrafficLevel: "low",
		Notes:        "Emergency route - wider roads prioritized",
	},
	domain.ModeRickshaw: {
		Duration:     "10-15 min",
		Distance:     "2.8 km",
		TrafficLevel: "medium",
		Notes:        "Rickshaw route - includes narrow roads and shortcuts",
	},
	domain.ModeFestival: {
		Duration:     "15-20 min",
		Distance:     "4.1 km",
		TrafficLevel: "high",
		Notes:        "Festival bypass route - avoiding temple areas",
	},
	domain.ModeNormal: {
		Duration:     "12-18 min",
		Distance:     "3.5 km",
		TrafficLevel: "medium",
		Notes:        "Standard route",
	},
}

// RouteService answers route queries from the mode table
type RouteService struct {
	logger *logrus.Logger
}

// NewRouteService creates a new route service
func NewRouteService(logger *logrus.Logger) *RouteService {
	return &RouteService{logger: logger}
}

// Advise returns the descriptor for a mode with the endpoints echoed back.
// Any mode missing from the table resolves to the normal descriptor.
func (s *RouteService) Advise(start, end domain.Point, mode domain.Mode) domain.Route {
	info, ok := routeTable[mode]
	if !ok {
		info = routeTable[domain.ModeNormal]
	}

	return domain.Route{
		Points: []domain.Point{start, end},
		Info:   info,
	}
}
