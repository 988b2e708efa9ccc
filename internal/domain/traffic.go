package domain

// Color is the three-way classification of a congestion level
type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
)

// Congestion model constants. Base plus the peak bonus plus the strongest
// location factor can exceed 1.0 before clamping.
const (
	BaseCongestion   = 0.3
	PeakBonus        = 0.4
	DefaultLocFactor = 0.2
	NoiseAmplitude   = 0.1

	MorningPeakStart = 7
	MorningPeakEnd   = 9
	EveningPeakStart = 17
	EveningPeakEnd   = 19
)

// LocationTraffic is one entry of the live traffic map
type LocationTraffic struct {
	Level    float64  `json:"level"`
	Location Location `json:"location"`
	Color    Color    `json:"color"`
}

// TrafficSnapshot maps location keys to their current conditions
type TrafficSnapshot map[string]LocationTraffic

// HourlyPattern is one bucket of the 24-hour congestion curve
type HourlyPattern struct {
	Hour  int     `json:"hour"`
	Level float64 `json:"level"`
}
