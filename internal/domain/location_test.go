package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Get(t *testing.T) {
	registry := NewRegistry()

	loc, ok := registry.Get("temple_road")
	require.True(t, ok)
	assert.Equal(t, "Temple Road", loc.Name)
	assert.InDelta(t, 10.8805, loc.Latitude, 1e-9)

	_, ok = registry.Get("nowhere_special")
	assert.False(t, ok)
}

func TestRegistry_AllReturnsCopy(t *testing.T) {
	registry := NewRegistry()

	all := registry.All()
	require.Len(t, all, 6)

	all["market_zone"] = Location{Name: "Tampered"}
	loc, ok := registry.Get("market_zone")
	require.True(t, ok)
	assert.Equal(t, "Market Zone", loc.Name)
}

func TestRegistry_Nearest(t *testing.T) {
	registry := NewRegistry()

	// Right on top of the Market Zone coordinates
	key, loc := registry.Nearest(10.8820, 76.0895)
	assert.Equal(t, "market_zone", key)
	assert.Equal(t, "Market Zone", loc.Name)
}

func TestReport_IsActive(t *testing.T) {
	assert.True(t, Report{Status: StatusActive}.IsActive())
	assert.True(t, Report{}.IsActive()) // absent status defaults to active
	assert.False(t, Report{Status: StatusResolved}.IsActive())
}
