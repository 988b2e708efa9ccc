package service

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/kottakkal/traffic-backend/internal/domain"
)

func newTestTrafficService(noise NoiseSource) *TrafficService {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewTrafficService(domain.NewRegistry(), noise, logger)
}

func TestEstimate_ClampInvariant(t *testing.T) {
	svc := newTestTrafficService(nil) // real noise

	keys := append(domain.NewRegistry().Keys(), "nowhere_special")
	for hour := 0; hour < 24; hour++ {
		for _, key := range keys {
			level := svc.Estimate(key, hour)
			assert.GreaterOrEqual(t, level, 0.0, "hour %d location %s", hour, key)
			assert.LessOrEqual(t, level, 1.0, "hour %d location %s", hour, key)
		}
	}
}

func TestEstimate_PeakBonus(t *testing.T) {
	svc := newTestTrafficService(ZeroNoise)

	peakHours := []int{7, 8, 9, 17, 18, 19}
	offPeakHours := []int{0, 3, 6, 10, 12, 16, 20, 23}

	for _, peak := range peakHours {
		for _, off := range offPeakHours {
			assert.InDelta(t, domain.PeakBonus,
				svc.Estimate("avs_junction", peak)-svc.Estimate("avs_junction", off),
				1e-9, "peak %d vs off-peak %d", peak, off)
		}
	}
}

func TestEstimate_LocationFactors(t *testing.T) {
	svc := newTestTrafficService(ZeroNoise)

	// Off-peak hour: base 0.3 plus the location factor
	tests := []struct {
		key  string
		want float64
	}{
		{"changuvetty", 0.5},
		{"avs_junction", 0.6},
		{"almas_hospital", 0.4},
		{"temple_road", 0.7},
		{"market_zone", 0.6},
		{"kottakkal_center", 0.5},
		{"nowhere_special", 0.5}, // unknown key defaults to 0.2
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.InDelta(t, tt.want, svc.Estimate(tt.key, 12), 1e-9)
		})
	}
}

func TestEstimate_NoiseShiftsResult(t *testing.T) {
	plus := newTestTrafficService(func() float64 { return 0.1 })
	minus := newTestTrafficService(func() float64 { return -0.1 })

	assert.InDelta(t, 0.2, plus.Estimate("changuvetty", 12)-minus.Estimate("changuvetty", 12), 1e-9)
}

func TestColorOf_Boundaries(t *testing.T) {
	tests := []struct {
		level float64
		want  domain.Color
	}{
		{0.0, domain.ColorGreen},
		{0.29999, domain.ColorGreen},
		{0.3, domain.ColorYellow},
		{0.69999, domain.ColorYellow},
		{0.7, domain.ColorRed},
		{1.0, domain.ColorRed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ColorOf(tt.level), "level %v", tt.level)
	}
}

func TestSnapshot_CoversAllLocations(t *testing.T) {
	svc := newTestTrafficService(ZeroNoise)

	snapshot := svc.Snapshot()
	assert.Len(t, snapshot, 6)

	for key, entry := range snapshot {
		assert.NotEmpty(t, entry.Location.Name, "location %s", key)
		assert.Equal(t, ColorOf(entry.Level), entry.Color, "location %s", key)
		assert.GreaterOrEqual(t, entry.Level, 0.0)
		assert.LessOrEqual(t, entry.Level, 1.0)
	}
}
