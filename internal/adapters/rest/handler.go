package rest

import (
	"encoding/json"
	"net/http"

	"github.com/jnowicki-labs/weathertunes/internal/core/ports"
	"github.com/jnowicki-labs/weathertunes/internal/core/services"
)

// Handler manages the HTTP interface for our application.
type Handler struct {
	svc    *services.Orchestrator // Dependency on the Core Service
	auth   ports.TokenProvider
	router *http.ServeMux         // Standard library router
	chain  http.Handler           // router wrapped in middleware
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc *services.Orchestrator, auth ports.TokenProvider) *Handler {
	h := &Handler{
		svc:    svc,
		auth:   auth,
		router: http.NewServeMux(),
	}

	// Register Routes
	h.routes()
	h.chain = withRequestID(withCORS(h.router))

	return h
}

// ServeHTTP satisfies the http.Handler interface.
// It acts as a proxy, passing the request to our internal router.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.chain.ServeHTTP(w, r)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes() {
	// Health Check
	h.router.HandleFunc("GET /health", h.HealthCheck)
	// Weather-driven recommendations
	h.router.HandleFunc("GET /api/weather_recommendations", h.GetWeatherRecommendations)
	// Spotify auth bootstrap
	h.router.HandleFunc("GET /api/spotify-auth", h.SpotifyAuth)
	h.router.HandleFunc("GET /callback", h.Callback)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok", "message": "WeatherTunes is live 🎶"})
}
