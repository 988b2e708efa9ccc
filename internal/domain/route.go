package domain

// Mode selects a travel profile for route advisories
type Mode string

const (
	ModeEmergency Mode = "emergency"
	ModeRickshaw  Mode = "rickshaw"
	ModeFestival  Mode = "festival"
	ModeNormal    Mode = "normal"
)

// ParseMode maps a raw mode string to a known Mode.
// Unrecognized or empty values fall back to ModeNormal.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeEmergency, ModeRickshaw, ModeFestival, ModeNormal:
		return Mode(s)
	default:
		return ModeNormal
	}
}

// RouteInfo is the canned descriptor returned for a travel mode
type RouteInfo struct {
	Duration     string `json:"duration"`
	Distance     string `json:"distance"`
	TrafficLevel string `json:"traffic_level"`
	Notes        string `json:"notes"`
}

// Point is a [lat, lng] coordinate pair on the wire
type Point [2]float64

// Route pairs the echoed endpoints with the mode descriptor. Points carry the
// caller's coordinates verbatim so the map layer can draw a straight line.
type Route struct {
	Points []Point   `json:"points"`
	Info   RouteInfo `json:"info"`
}
