package domain

import (
	"github.com/kottakkal/traffic-backend/pkg/utils"
)

// Location is a fixed Kottakkal landmark monitored by the engine
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Registry is the static table of monitored locations. It is built once at
// startup and never mutated afterwards, so it is safe for concurrent reads.
type Registry struct {
	locations map[string]Location
}

// Kottakkal town center coordinates
const (
	KottakkalCenterLat = 10.8810
	KottakkalCenterLng = 76.0900
)

// NewRegistry returns the registry of the six monitored Kottakkal landmarks
func NewRegistry() *Registry {
	return &Registry{
		locations: map[string]Location{
			"changuvetty":      {Name: "Changuvetty", Latitude: 10.8808, Longitude: 76.0905},
			"avs_junction":     {Name: "AVS Junction", Latitude: 10.8812, Longitude: 76.0908},
			"almas_hospital":   {Name: "Almas Hospital", Latitude: 10.8815, Longitude: 76.0902},
			"temple_road":      {Name: "Temple Road", Latitude: 10.8805, Longitude: 76.0910},
			"market_zone":      {Name: "Market Zone", Latitude: 10.8820, Longitude: 76.0895},
			"kottakkal_center": {Name: "Kottakkal Center", Latitude: KottakkalCenterLat, Longitude: KottakkalCenterLng},
		},
	}
}

// Get returns the location for a key. An unknown key is a soft miss:
// callers fall back to default factors rather than failing.
func (r *Registry) Get(key string) (Location, bool) {
	loc, ok := r.locations[key]
	return loc, ok
}

// All returns the full key-to-location table
func (r *Registry) All() map[string]Location {
	out := make(map[string]Location, len(r.locations))
	for k, v := range r.locations {
		out[k] = v
	}
	return out
}

// Keys returns all registered location keys
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.locations))
	for k := range r.locations {
		keys = append(keys, k)
	}
	return keys
}

// Nearest returns the key and location closest to the given coordinates.
// Used to annotate free-text incident reports with a known landmark.
func (r *Registry) Nearest(lat, lng float64) (string, Location) {
	var (
		bestKey  string
		bestLoc  Location
		bestDist = -1.0
	)
	for key, loc := range r.locations {
		d := utils.Haversine(lat, lng, loc.Latitude, loc.Longitude)
		if bestDist < 0 || d < bestDist {
			bestKey = key
			bestLoc = loc
			bestDist = d
		}
	}
	return bestKey, bestLoc
}
