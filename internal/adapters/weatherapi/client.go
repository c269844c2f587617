// Package weatherapi is an HTTP adapter for the weatherapi.com API.
// It fetches current conditions and astronomy data for a coordinate and
// extracts the signals the affect mapping consumes.
package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/jnowicki-labs/weathertunes/internal/core/domain"
	"github.com/jnowicki-labs/weathertunes/internal/core/ports"
)

// Client is an HTTP client for the weather provider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// compile-time interface assertion
var _ ports.WeatherProvider = (*Client)(nil)

// NewClient constructs a new weather client.
func NewClient(httpClient *http.Client, baseURL string, apiKey string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// FetchCurrent retrieves current conditions for a coordinate and
// extracts the feelslike and precipitation signals.
func (c *Client) FetchCurrent(ctx context.Context, coord domain.Coordinate) (domain.WeatherSignals, error) {
	var raw currentResponse
	if err := c.get(ctx, "current.json", coord, &raw); err != nil {
		return domain.WeatherSignals{}, err
	}
	return extractWeather(raw)
}

// FetchAstronomy retrieves sunrise/sunset data for a coordinate and
// extracts the daylight-duration signal.
func (c *Client) FetchAstronomy(ctx context.Context, coord domain.Coordinate) (domain.SuntimeSignal, error) {
	var raw astronomyResponse
	if err := c.get(ctx, "astronomy.json", coord, &raw); err != nil {
		return domain.SuntimeSignal{}, err
	}
	return extractSuntime(raw)
}

// get issues one provider request and decodes the JSON body into out.
// Calls are independent; the orchestrator runs them concurrently.
func (c *Client) get(ctx context.Context, method string, coord domain.Coordinate, out any) error {
	reqURL, err := url.Parse(fmt.Sprintf("%s/%s", c.baseURL, method))
	if err != nil {
		return fmt.Errorf("weather adapter: invalid url: %w", err)
	}

	query := reqURL.Query()
	query.Set("key", c.apiKey)
	query.Set("q", fmt.Sprintf("%s,%s", coord.Latitude, coord.Longitude))
	query.Set("aqi", "no")
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("weather adapter: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather adapter: %s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather adapter: %s status %d", method, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("weather adapter: %s decode error: %w", method, err)
	}

	return nil
}
