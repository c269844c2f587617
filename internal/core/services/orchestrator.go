package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jnowicki-labs/weathertunes/internal/core/domain"
	"github.com/jnowicki-labs/weathertunes/internal/core/ports"
)

// Orchestrator coordinates the weather and music provider adapters.
type Orchestrator struct {
	weather ports.WeatherProvider
	music   ports.MusicProvider
}

// NewOrchestrator constructs an Orchestrator.
func NewOrchestrator(weather ports.WeatherProvider, music ports.MusicProvider) *Orchestrator {
	return &Orchestrator{
		weather: weather,
		music:   music,
	}
}

// GetWeatherRecommendations runs the full pipeline: both weather fetches
// concurrently, affect mapping, then the recommendation fetch. Any
// failure aborts the whole operation; there is no partial-result path.
func (o *Orchestrator) GetWeatherRecommendations(ctx context.Context, coord domain.Coordinate, genresCSV string, accessToken string) (domain.Recommendation, error) {
	// 1. Reject unauthenticated requests before any outbound call.
	if accessToken == "" {
		return domain.Recommendation{}, fmt.Errorf("service: %w", ports.ErrMissingAccessToken)
	}

	// 2. Fan out the two weather fetches. Each goroutine writes only to
	// its own result slot, so no locking is needed.
	var (
		weather    domain.WeatherSignals
		weatherErr error
		suntime    domain.SuntimeSignal
		suntimeErr error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		weather, weatherErr = o.weather.FetchCurrent(ctx, coord)
	}()
	go func() {
		defer wg.Done()
		suntime, suntimeErr = o.weather.FetchAstronomy(ctx, coord)
	}()
	wg.Wait()

	if weatherErr != nil {
		return domain.Recommendation{}, fmt.Errorf("service: failed to fetch current conditions: %w", weatherErr)
	}
	if suntimeErr != nil {
		return domain.Recommendation{}, fmt.Errorf("service: failed to fetch astronomy: %w", suntimeErr)
	}

	// 3. Map the joined signals into affect parameters (pure domain logic).
	affect := domain.MapAffect(weather.FeelslikeC, weather.PrecipMM, suntime.DaylightHours)

	// 4. Fetch recommendations with the unrounded parameters.
	tracks, err := o.music.GetRecommendations(ctx, ports.RecommendationQuery{
		AccessToken: accessToken,
		Valence:     affect.Valence,
		Energy:      affect.Energy,
		SeedGenres:  strings.Split(genresCSV, ","),
	})
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("service: failed to fetch recommendations: %w", err)
	}

	// 5. Assemble the combined result.
	return domain.Recommendation{
		Weather: weather,
		Suntime: suntime,
		Affect:  affect,
		Tracks:  tracks,
	}, nil
}
