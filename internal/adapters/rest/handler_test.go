package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jnowicki-labs/weathertunes/internal/core/domain"
	"github.com/jnowicki-labs/weathertunes/internal/core/ports"
	"github.com/jnowicki-labs/weathertunes/internal/core/services"
)

// --- Mocks ---
// The Handler depends on the concrete Orchestrator, so these tests wire
// a REAL service with MOCK provider adapters.

type mockWeather struct {
	weather domain.WeatherSignals
	suntime domain.SuntimeSignal
	err     error
}

func (m *mockWeather) FetchCurrent(ctx context.Context, coord domain.Coordinate) (domain.WeatherSignals, error) {
	return m.weather, m.err
}

func (m *mockWeather) FetchAstronomy(ctx context.Context, coord domain.Coordinate) (domain.SuntimeSignal, error) {
	return m.suntime, m.err
}

type mockMusic struct {
	tracks []domain.Track
	err    error
}

func (m *mockMusic) GetRecommendations(ctx context.Context, query ports.RecommendationQuery) ([]domain.Track, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tracks, nil
}

type mockAuth struct {
	grant ports.AccessGrant
	err   error
}

func (m *mockAuth) ClientCredentialsToken(ctx context.Context) (ports.AccessGrant, error) {
	return m.grant, m.err
}

func newTestHandler(weather *mockWeather, music *mockMusic, auth *mockAuth) *Handler {
	if auth == nil {
		auth = &mockAuth{}
	}
	svc := services.NewOrchestrator(weather, music)
	return NewHandler(svc, auth)
}

// --- Tests ---

func TestHealthCheck(t *testing.T) {
	h := newTestHandler(&mockWeather{}, &mockMusic{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
}

func TestGetWeatherRecommendations(t *testing.T) {
	weather := &mockWeather{
		weather: domain.WeatherSignals{FeelslikeC: 17.234, PrecipMM: 0},
		suntime: domain.SuntimeSignal{DaylightHours: 8.25},
	}
	music := &mockMusic{
		tracks: []domain.Track{
			{Name: "Track One", ArtistNames: []string{"Artist A"}, CoverURL: "http://img.com/1.jpg", ExternalURL: "http://open.spotify.com/track/1"},
			{Name: "Track Two", ArtistNames: []string{"Artist B", "Artist C"}},
			{Name: "Track Three", ArtistNames: []string{"Artist D"}},
		},
	}
	h := newTestHandler(weather, music, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/weather_recommendations?latitude=52.23&longitude=21.01&genres=jazz,ambient", nil)
	req.Header.Set("Access-Token", "test-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body: %s", rec.Code, rec.Body.String())
	}

	var body weatherRecommendationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	// Floats are rounded to 2 decimals at this boundary.
	if body.WeatherInfo.FeelslikeC != 17.23 {
		t.Errorf("feelslike_c: got %v, want 17.23", body.WeatherInfo.FeelslikeC)
	}
	if body.WeatherInfo.SuntimeHours != 8.25 {
		t.Errorf("suntime_hours: got %v, want 8.25", body.WeatherInfo.SuntimeHours)
	}
	if body.RecommendationInfo.Energy != 0.5 {
		t.Errorf("energy: got %v, want 0.5", body.RecommendationInfo.Energy)
	}
	// Hand-computed: (2*0.5 + 3*((17.234+17.8)/46.2)) / 9 ≈ 0.3638 -> 0.36
	if body.RecommendationInfo.Valence != 0.36 {
		t.Errorf("valence: got %v, want 0.36", body.RecommendationInfo.Valence)
	}

	if len(body.TracksInfo) != len(music.tracks) {
		t.Fatalf("tracks_info: got %d entries, want %d", len(body.TracksInfo), len(music.tracks))
	}
	first := body.TracksInfo[0]
	if first.TrackName != "Track One" || first.FirstImage != "http://img.com/1.jpg" || first.SpotifyExternalURL != "http://open.spotify.com/track/1" {
		t.Errorf("first track mismatch: %+v", first)
	}
}

func TestGetWeatherRecommendations_MissingToken(t *testing.T) {
	h := newTestHandler(&mockWeather{}, &mockMusic{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/weather_recommendations?latitude=1&longitude=2&genres=jazz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Code != errCodeMissingAccessToken {
		t.Errorf("code: got %q, want %q", body.Code, errCodeMissingAccessToken)
	}
}

func TestGetWeatherRecommendations_UpstreamAuth(t *testing.T) {
	weather := &mockWeather{suntime: domain.SuntimeSignal{DaylightHours: 12}}
	music := &mockMusic{err: &ports.AuthError{Status: http.StatusUnauthorized}}
	h := newTestHandler(weather, music, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/weather_recommendations?latitude=1&longitude=2&genres=jazz", nil)
	req.Header.Set("Access-Token", "expired-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Code != errCodeUpstreamAuth {
		t.Errorf("code: got %q, want %q", body.Code, errCodeUpstreamAuth)
	}
}

func TestGetWeatherRecommendations_BadGatewayOnMalformedUpstream(t *testing.T) {
	weather := &mockWeather{err: &ports.MissingFieldError{Field: "current.feelslike_c"}}
	h := newTestHandler(weather, &mockMusic{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/weather_recommendations?latitude=1&longitude=2&genres=jazz", nil)
	req.Header.Set("Access-Token", "test-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status: got %d, want 502", rec.Code)
	}
}

func TestGetWeatherRecommendations_MissingCoordinates(t *testing.T) {
	h := newTestHandler(&mockWeather{}, &mockMusic{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/weather_recommendations?genres=jazz", nil)
	req.Header.Set("Access-Token", "test-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestSpotifyAuth(t *testing.T) {
	auth := &mockAuth{grant: ports.AccessGrant{AccessToken: "issued", TokenType: "Bearer", ExpiresIn: 3600}}
	h := newTestHandler(&mockWeather{}, &mockMusic{}, auth)

	req := httptest.NewRequest(http.MethodGet, "/api/spotify-auth", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var body accessGrantResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.AccessToken != "issued" || body.TokenType != "Bearer" || body.ExpiresIn != 3600 {
		t.Errorf("unexpected grant: %+v", body)
	}
}

func TestSpotifyAuth_ExchangeFails(t *testing.T) {
	auth := &mockAuth{err: errors.New("invalid_client")}
	h := newTestHandler(&mockWeather{}, &mockMusic{}, auth)

	req := httptest.NewRequest(http.MethodGet, "/api/spotify-auth", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status: got %d, want 502", rec.Code)
	}
}

func TestCallback(t *testing.T) {
	h := newTestHandler(&mockWeather{}, &mockMusic{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/callback?code=abc&state=xyz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status: got %d, want 307", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/?code=abc&state=xyz" {
		t.Errorf("Location: got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newTestHandler(&mockWeather{}, &mockMusic{}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/weather_recommendations", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status: got %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin: got %q", got)
	}
}
