package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jnowicki-labs/weathertunes/internal/adapters/rest"
	"github.com/jnowicki-labs/weathertunes/internal/adapters/spotify"
	"github.com/jnowicki-labs/weathertunes/internal/adapters/weatherapi"
	"github.com/jnowicki-labs/weathertunes/internal/core/services"
)

const (
	defaultWeatherAPIURL = "http://api.weatherapi.com/v1"
	defaultSpotifyAPIURL = "https://api.spotify.com"
)

func main() {
	// 1. Configuration (Environment Variables)
	// Credentials are read once at startup and immutable thereafter;
	// crash early if required config is missing.
	clientID := os.Getenv("SPOTIFY_CLIENT_ID")
	clientSecret := os.Getenv("SPOTIFY_CLIENT_SECRET")
	weatherKey := os.Getenv("WEATHER_API_KEY")
	if clientID == "" || clientSecret == "" {
		log.Fatal("FATAL: SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET environment variables are required")
	}
	if weatherKey == "" {
		log.Fatal("FATAL: WEATHER_API_KEY environment variable is required")
	}

	weatherURL := os.Getenv("WEATHER_API_URL")
	if weatherURL == "" {
		weatherURL = defaultWeatherAPIURL
	}
	spotifyURL := os.Getenv("SPOTIFY_API_URL")
	if spotifyURL == "" {
		spotifyURL = defaultSpotifyAPIURL
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Initialize "Driven" Adapters (The Tools)
	weatherClient := weatherapi.NewClient(nil, weatherURL, weatherKey)
	spotifyClient := spotify.NewClient(nil, spotifyURL)
	authenticator := spotify.NewAuthenticator(clientID, clientSecret, "")

	// 3. Initialize Core Logic (The Driver)
	// This is Dependency Injection in action: the compiler guarantees the
	// adapters implement the ports the service depends on.
	svc := services.NewOrchestrator(weatherClient, spotifyClient)

	// 4. Initialize "Driving" Adapter (The Interface)
	handler := rest.NewHandler(svc, authenticator)

	// 5. Start the Server
	log.Println("------------------------------------------------")
	log.Printf("🎶 WeatherTunes API is running on http://localhost:%s", port)
	log.Println("------------------------------------------------")

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
