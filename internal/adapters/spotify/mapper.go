package spotify

import "github.com/jnowicki-labs/weathertunes/internal/core/domain"

// mapTrackToDomain converts a raw Spotify track to a clean domain track.
func mapTrackToDomain(st spotifyTrack) domain.Track {
	artistNames := make([]string, 0, len(st.Album.Artists))
	for _, a := range st.Album.Artists {
		artistNames = append(artistNames, a.Name)
	}

	// Some tracks ship without artwork; the track is kept and the
	// cover URL left empty rather than dropped.
	coverURL := ""
	if len(st.Album.Images) > 0 {
		coverURL = st.Album.Images[0].URL
	}

	return domain.Track{
		ArtistNames: artistNames,
		CoverURL:    coverURL,
		Name:        st.Name,
		ExternalURL: st.ExternalURLs.Spotify,
	}
}

// mapTracksToDomain converts the recommendations payload, preserving
// provider order.
func mapTracksToDomain(raw recommendationsResponse) []domain.Track {
	tracks := make([]domain.Track, 0, len(raw.Tracks))
	for _, st := range raw.Tracks {
		tracks = append(tracks, mapTrackToDomain(st))
	}
	return tracks
}
