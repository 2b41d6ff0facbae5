package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/allermind/verdict/internal/domain/verdict"
)

const defaultBaseURL = "http://localhost:8383"

// Client fetches combined weather and air-quality snapshots.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL string) *Client {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Fetch retrieves the snapshot for the coordinates. A 404 from the
// provider means the location could not be resolved and yields a nil
// snapshot rather than an error.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (*verdict.EnvironmentalSnapshot, error) {
	endpoint := fmt.Sprintf("%s/api/v1/weather-air-quality?lat=%s&lon=%s",
		c.baseURL,
		url.QueryEscape(strconv.FormatFloat(lat, 'f', -1, 64)),
		url.QueryEscape(strconv.FormatFloat(lon, 'f', -1, 64)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("weather request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var snapshot verdict.EnvironmentalSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}
	return &snapshot, nil
}

var _ verdict.WeatherProvider = (*Client)(nil)
