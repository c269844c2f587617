// Package spotify is an HTTP adapter for the Spotify Web API. It covers
// the recommendations endpoint, authorized per request with a
// caller-supplied bearer token, plus the client-credentials token
// exchange the frontend bootstraps from.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jnowicki-labs/weathertunes/internal/core/domain"
	"github.com/jnowicki-labs/weathertunes/internal/core/ports"
)

// market is the fixed region code sent with every recommendations call.
const market = "PL"

// Client is an HTTP client for the Spotify adapter.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// compile-time interface assertion
var _ ports.MusicProvider = (*Client)(nil)

// NewClient constructs a new Spotify client.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// GetRecommendations fetches recommended tracks for the query's affect
// parameters and seed genres. A 401/403 from the provider is returned
// as a ports.AuthError so callers can trigger re-authentication.
func (c *Client) GetRecommendations(ctx context.Context, query ports.RecommendationQuery) ([]domain.Track, error) {
	recURL, err := url.Parse(fmt.Sprintf("%s/v1/recommendations", c.baseURL))
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: invalid recommendations url: %w", err)
	}

	params := recURL.Query()
	params.Set("market", market)
	params.Set("seed_genres", strings.Join(query.SeedGenres, ","))
	params.Set("target_valence", strconv.FormatFloat(query.Valence, 'f', -1, 64))
	params.Set("target_energy", strconv.FormatFloat(query.Energy, 'f', -1, 64))
	recURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, recURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+query.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: recommendations request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("spotify adapter: %w", &ports.AuthError{Status: resp.StatusCode})
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify adapter: recommendations status %d", resp.StatusCode)
	}

	var raw recommendationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("spotify adapter: recommendations decode error: %w", err)
	}

	return mapTracksToDomain(raw), nil
}
