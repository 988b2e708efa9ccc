package service

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kottakkal/traffic-backend/internal/domain"
)

func newTestRouteService() *RouteService {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewRouteService(logger)
}

func TestAdvise_ModeTable(t *testing.T) {
	svc := newTestRouteService()
	start := domain.Point{10.8808, 76.0905}
	end := domain.Point{10.8812, 76.0908}

	tests := []struct {
		mode domain.Mode
		want domain.RouteInfo
	}{
		{domain.ModeEmergency, domain.RouteInfo{
			Duration:     "8-12 min",
			Distance:     "3.2 km",
			TrafficLevel: "low",
			Notes:        "Emergency route - wider roads prioritized",
		}},
		{domain.ModeRickshaw, domain.RouteInfo{
			Duration:     "10-15 min",
			Distance:     "2.8 km",
			TrafficLevel: "medium",
			Notes:        "Rickshaw route - includes narrow roads and shortcuts",
		}},
		{domain.ModeFestival, domain.RouteInfo{
			Duration:     "15-20 min",
			Distance:     "4.1 km",
			TrafficLevel: "high",
			Notes:        "Festival bypass route - avoiding temple areas",
		}},
		{domain.ModeNormal, domain.RouteInfo{
			Duration:     "12-18 min",
			Distance:     "3.5 km",
			TrafficLevel: "medium",
			Notes:        "Standard route",
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			route := svc.Advise(start, end, tt.mode)
			assert.Equal(t, tt.want, route.Info)
		})
	}
}

func TestAdvise_EchoesEndpoints(t *testing.T) {
	svc := newTestRouteService()
	start := domain.Point{12.3456, 65.4321}
	end := domain.Point{-1.5, 100.0}

	route := svc.Advise(start, end, domain.ModeNormal)
	require.Len(t, route.Points, 2)
	assert.Equal(t, start, route.Points[0])
	assert.Equal(t, end, route.Points[1])
}

func TestAdvise_UnknownModeFallsBackToNormal(t *testing.T) {
	svc := newTestRouteService()
	start := domain.Point{0, 0}
	end := domain.Point{1, 1}

	normal := svc.Advise(start, end, domain.ModeNormal)
	unknown := svc.Advise(start, end, domain.ParseMode("hoverboard"))

	assert.Equal(t, normal, unknown)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.Mode
	}{
		{"emergency", domain.ModeEmergency},
		{"rickshaw", domain.ModeRickshaw},
		{"festival", domain.ModeFestival},
		{"normal", domain.ModeNormal},
		{"", domain.ModeNormal},
		{"unknown-mode", domain.ModeNormal},
		{"EMERGENCY", domain.ModeNormal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ParseMode(tt.raw), "raw %q", tt.raw)
	}
}
