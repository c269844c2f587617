package domain

// Coordinate is a geographic position as decimal-degree strings.
// Values are forwarded to the weather provider untouched; invalid
// coordinates surface as upstream errors.
type Coordinate struct {
	Latitude  string
	Longitude string
}
