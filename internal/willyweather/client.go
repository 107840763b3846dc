package willyweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/surfscout/surfscout/internal/models"
)

// Service defines the interface for resolving beaches and fetching conditions
type Service interface {
	// SearchBeaches resolves a free-text beach name to matching Australian locations
	SearchBeaches(ctx context.Context, name string) ([]models.Location, error)

	// Conditions retrieves the current tide/wind/swell snapshot for a location
	Conditions(ctx context.Context, locationID int) (*models.Snapshot, error)
}

// States WillyWeather reports for Australian locations
var australianStates = map[string]bool{
	"NSW": true, "QLD": true, "VIC": true, "SA": true,
	"WA": true, "TAS": true, "NT": true, "ACT": true,
}

// Client implements Service using the WillyWeather v2 API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new WillyWeather client
func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: "https://api.willyweather.com.au",
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SearchBeaches resolves a beach name to Australian locations known to the provider
func (c *Client) SearchBeaches(ctx context.Context, name string) ([]models.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("beach name cannot be empty")
	}

	params := url.Values{}
	params.Add("query", name)
	params.Add("limit", "5")

	searchURL := fmt.Sprintf("%s/v2/%s/search.json?%s", c.baseURL, c.apiKey, params.Encode())

	var results []searchResult
	if err := c.getJSON(ctx, searchURL, &results); err != nil {
		return nil, err
	}

	var locations []models.Location
	for _, r := range results {
		if !r.isAustralian() {
			continue
		}
		locations = append(locations, models.Location{
			ID:     r.ID,
			Name:   r.Name,
			Region: r.Region,
			State:  r.State,
		})
	}

	if len(locations) == 0 {
		return nil, NewNotFoundError(name)
	}

	return locations, nil
}

// Conditions retrieves the current tide, wind and swell readings for a location
func (c *Client) Conditions(ctx context.Context, locationID int) (*models.Snapshot, error) {
	params := url.Values{}
	params.Add("forecasts", "tides,wind,swell")
	params.Add("days", "1")

	weatherURL := fmt.Sprintf("%s/v2/%s/locations/%d/weather.json?%s",
		c.baseURL, c.apiKey, locationID, params.Encode())

	var resp weatherResponse
	if err := c.getJSON(ctx, weatherURL, &resp); err != nil {
		return nil, err
	}

	if resp.Forecasts == nil {
		return nil, NewProviderError("response missing forecast data", nil)
	}

	snapshot := &models.Snapshot{
		ObservedAt: time.Now(),
	}

	if tide, ok := resp.Forecasts.Tides.firstEntry(); ok {
		snapshot.Tide = models.Tide{
			Height: tide.Height,
			State:  tide.Type,
		}
	}
	if wind, ok := resp.Forecasts.Wind.firstEntry(); ok {
		snapshot.Wind = models.Wind{
			SpeedKPH:     wind.Speed,
			DirectionDeg: wind.Direction,
		}
	}
	if swell, ok := resp.Forecasts.Swell.firstEntry(); ok {
		snapshot.Swell = models.Swell{
			HeightM:      swell.Height,
			PeriodSec:    swell.Period,
			DirectionDeg: swell.Direction,
		}
	}

	return snapshot, nil
}

// getJSON issues a GET request and decodes the JSON response, mapping
// provider failures onto the error taxonomy
func (c *Client) getJSON(ctx context.Context, requestURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return NewProviderError("request failed", err)
	}
	defer resp.Body.Close()

	log.Debug().Int("status", resp.StatusCode).Str("host", req.URL.Host).
		Str("path", req.URL.Path).Msg("willyweather response")

	if resp.StatusCode == http.StatusTooManyRequests {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &RateLimitedError{Message: string(body)}
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return NewProviderError(
			fmt.Sprintf("status %d: %s", resp.StatusCode, string(body)), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewProviderError("decoding response", err)
	}

	return nil
}

// Internal types for WillyWeather API responses

type searchResult struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Region   string `json:"region"`
	State    string `json:"state"`
	TimeZone string `json:"timeZone"`
}

func (r searchResult) isAustralian() bool {
	if australianStates[r.State] {
		return true
	}
	return strings.HasPrefix(r.TimeZone, "Australia")
}

type forecastBlock struct {
	Days []struct {
		Entries []forecastEntry `json:"entries"`
	} `json:"days"`
}

type forecastEntry struct {
	DateTime  string  `json:"dateTime"`
	Height    float64 `json:"height"`
	Type      string  `json:"type"`
	Speed     float64 `json:"speed"`
	Direction float64 `json:"direction"`
	Period    float64 `json:"period"`
}

// firstEntry returns the first entry of the first day, the reading closest
// to the current time in a days=1 response
func (b forecastBlock) firstEntry() (forecastEntry, bool) {
	if len(b.Days) == 0 || len(b.Days[0].Entries) == 0 {
		return forecastEntry{}, false
	}
	return b.Days[0].Entries[0], true
}

type weatherResponse struct {
	Forecasts *struct {
		Tides forecastBlock `json:"tides"`
		Wind  forecastBlock `json:"wind"`
		Swell forecastBlock `json:"swell"`
	} `json:"forecasts"`
}
