package domain

// Track represents a recommended track in the domain layer.
type Track struct {
	ArtistNames []string // album artists, provider order
	CoverURL    string   // first album image; empty when the provider sends none
	Name        string
	ExternalURL string
}

// Recommendation is the combined result of one orchestration call:
// the raw signals, the affect parameters derived from them, and the
// tracks the music provider returned, in provider order.
type Recommendation struct {
	Weather WeatherSignals
	Suntime SuntimeSignal
	Affect  AffectParameters
	Tracks  []Track
}
