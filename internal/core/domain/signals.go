package domain

// WeatherSignals holds the two current-conditions readings the affect
// mapping consumes.
type WeatherSignals struct {
	FeelslikeC float64 // perceived temperature, Celsius
	PrecipMM   float64 // precipitation, millimeters
}

// SuntimeSignal is the daylight duration derived from the provider's
// sunrise/sunset timestamps.
type SuntimeSignal struct {
	DaylightHours float64
}

// AffectParameters steer the music recommendation. Both are nominally
// 0-1 but deliberately unclamped: extreme inputs produce out-of-range
// values, which are passed through unmodified.
type AffectParameters struct {
	Valence float64
	Energy  float64
}
