package weatherapi

// currentResponse mirrors the provider's current.json payload. Pointer
// fields distinguish an absent key from a legitimate zero reading.
type currentResponse struct {
	Current struct {
		FeelslikeC *float64 `json:"feelslike_c"`
		PrecipMM   *float64 `json:"precip_mm"`
	} `json:"current"`
}

// astronomyResponse mirrors the provider's astronomy.json payload.
// Sunrise and sunset are 12-hour clock strings, e.g. "06:12 AM".
type astronomyResponse struct {
	Astronomy struct {
		Astro struct {
			Sunrise string `json:"sunrise"`
			Sunset  string `json:"sunset"`
		} `json:"astro"`
	} `json:"astronomy"`
}
