package spotify

// spotifyTrack represents one track in the recommendations response.
type spotifyTrack struct {
	Name  string `json:"name"`
	Album struct {
		Artists []struct {
			Name string `json:"name"`
		} `json:"artists"`
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
	} `json:"album"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

// recommendationsResponse represents the Spotify recommendations payload.
type recommendationsResponse struct {
	Tracks []spotifyTrack `json:"tracks"`
}
