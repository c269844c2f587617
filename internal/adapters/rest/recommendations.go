package rest

import (
	"errors"
	"math"
	"net/http"

	"github.com/jnowicki-labs/weathertunes/internal/core/domain"
	"github.com/jnowicki-labs/weathertunes/internal/core/ports"
)

const (
	errCodeMissingAccessToken = "MISSING_ACCESS_TOKEN"
	errCodeUpstreamAuth       = "UPSTREAM_AUTH"
)

type weatherInfo struct {
	FeelslikeC   float64 `json:"feelslike_c"`
	PrecipMM     float64 `json:"precip_mm"`
	SuntimeHours float64 `json:"suntime_hours"`
}

type recommendationInfo struct {
	Valence float64 `json:"valence"`
	Energy  float64 `json:"energy"`
}

type trackInfo struct {
	ArtistsNames       []string `json:"artists_names"`
	FirstImage         string   `json:"first_image"`
	TrackName          string   `json:"track_name"`
	SpotifyExternalURL string   `json:"spotify_external_url"`
}

type weatherRecommendationsResponse struct {
	WeatherInfo        weatherInfo        `json:"weather_info"`
	RecommendationInfo recommendationInfo `json:"recommendation_info"`
	TracksInfo         []trackInfo        `json:"tracks_info"`
}

// GetWeatherRecommendations handles GET /api/weather_recommendations
func (h *Handler) GetWeatherRecommendations(w http.ResponseWriter, r *http.Request) {
	// 1. Read Query Parameters
	query := r.URL.Query()
	latitude := query.Get("latitude")
	longitude := query.Get("longitude")
	genres := query.Get("genres")
	if latitude == "" || longitude == "" {
		writeError(w, http.StatusBadRequest, "latitude and longitude are required")
		return
	}

	// 2. Call the Service (The Core Logic)
	// We pass the Context so the service can cancel long-running tasks if the user disconnects
	accessToken := r.Header.Get("Access-Token")
	coord := domain.Coordinate{Latitude: latitude, Longitude: longitude}
	rec, err := h.svc.GetWeatherRecommendations(r.Context(), coord, genres, accessToken)
	if err != nil {
		if errors.Is(err, ports.ErrMissingAccessToken) {
			writeErrorWithCode(w, http.StatusUnauthorized, "access token is required", errCodeMissingAccessToken)
			return
		}
		if errors.Is(err, ports.ErrUpstreamAuth) {
			writeErrorWithCode(w, http.StatusUnauthorized, err.Error(), errCodeUpstreamAuth)
			return
		}
		var missingErr *ports.MissingFieldError
		var parseErr *ports.ParseError
		if errors.As(err, &missingErr) || errors.As(err, &parseErr) {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// 3. Return the Response, rounding floats at this boundary only
	writeJSON(w, http.StatusOK, toWeatherRecommendationsResponse(rec))
}

func toWeatherRecommendationsResponse(rec domain.Recommendation) weatherRecommendationsResponse {
	tracks := make([]trackInfo, 0, len(rec.Tracks))
	for _, t := range rec.Tracks {
		tracks = append(tracks, trackInfo{
			ArtistsNames:       t.ArtistNames,
			FirstImage:         t.CoverURL,
			TrackName:          t.Name,
			SpotifyExternalURL: t.ExternalURL,
		})
	}

	return weatherRecommendationsResponse{
		WeatherInfo: weatherInfo{
			FeelslikeC:   round2(rec.Weather.FeelslikeC),
			PrecipMM:     round2(rec.Weather.PrecipMM),
			SuntimeHours: round2(rec.Suntime.DaylightHours),
		},
		RecommendationInfo: recommendationInfo{
			Valence: round2(rec.Affect.Valence),
			Energy:  round2(rec.Affect.Energy),
		},
		TracksInfo: tracks,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
