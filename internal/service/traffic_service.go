package service

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kottakkal/traffic-backend/internal/domain"
	"github.com/kottakkal/traffic-backend/pkg/utils"
)

// NoiseSource produces the jitter term added to every estimate. The default
// draws uniformly from [-NoiseAmplitude, +NoiseAmplitude]; tests substitute
// a fixed source to neutralize the randomness.
type NoiseSource func() float64

// UniformNoise is the production noise source
func UniformNoise() float64 {
	return (rand.Float64()*2 - 1) * domain.NoiseAmplitude
}

// ZeroNoise disables jitter
func ZeroNoise() float64 { return 0 }

// TrafficService derives synthetic congestion levels for registered locations
type TrafficService struct {
	registry *domain.Registry
	noise    NoiseSource
	logger   *logrus.Logger
}

// NewTrafficService creates a traffic service. A nil noise source selects
// UniformNoise.
func NewTrafficService(registry *domain.Registry, noise NoiseSource, logger *logrus.Logger) *TrafficService {
	if noise == nil {
		noise = UniformNoise
	}
	return &TrafficService{
		registry: registry,
		noise:    noise,
		logger:   logger,
	}
}

// locationFactors are fixed per-location congestion bonuses. Unknown keys
// fall back to domain.DefaultLocFactor, never an error.
var locationFactors = map[string]float64{
	"changuvetty":      0.2,
	"avs_junction":     0.3,
	"almas_hospital":   0.1,
	"temple_road":      0.4,
	"market_zone":      0.3,
	"kottakkal_center": 0.2,
}

// Estimate returns the congestion level for a location at the given hour,
// clamped to [0, 1]. Repeated calls differ by the noise draw.
func (s *TrafficService) Estimate(locationKey string, hour int) float64 {
	level := domain.BaseCongestion

	if isPeakHour(hour) {
		level += domain.PeakBonus
	}

	factor, ok := locationFactors[locationKey]
	if !ok {
		factor = domain.DefaultLocFactor
	}
	level += factor

	level += s.noise()

	return utils.Clamp(level, 0.0, 1.0)
}

// EstimateNow returns the congestion level for the current local hour
func (s *TrafficService) EstimateNow(locationKey string) float64 {
	return s.Estimate(locationKey, time.Now().Hour())
}

// Snapshot builds the live traffic map for every registered location
func (s *TrafficService) Snapshot() domain.TrafficSnapshot {
	snapshot := make(domain.TrafficSnapshot)
	for key, loc := range s.registry.All() {
		level := s.EstimateNow(key)
		snapshot[key] = domain.LocationTraffic{
			Level:    level,
			Location: loc,
			Color:    ColorOf(level),
		}
	}
	return snapshot
}

// isPeakHour reports whether the hour falls in a rush window (7-9, 17-19,
// both ends inclusive)
func isPeakHour(hour int) bool {
	return (hour >= domain.MorningPeakStart && hour <= domain.MorningPeakEnd) ||
		(hour >= domain.EveningPeakStart && hour <= domain.EveningPeakEnd)
}

// ColorOf classifies a congestion level: green below 0.3, yellow below 0.7,
// red at 0.7 and above
func ColorOf(level float64) domain.Color {
	switch {
	case level < 0.3:
		return domain.ColorGreen
	case level < 0.7:
		return domain.ColorYellow
	default:
		return domain.ColorRed
	}
}
