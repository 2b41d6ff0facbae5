package pollen

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

const defaultBaseURL = "http://localhost:8282"

// Client fetches pollen readings from the pollen service.
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

// Fetch retrieves the pollen readings closest to the coordinates.
// The provider may return an empty list; null elements are dropped.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) ([]verdict.PollenReading, error) {
	endpoint := fmt.Sprintf("%s/api/pollen?lat=%s&lon=%s",
		c.baseURL,
		url.QueryEscape(strconv.FormatFloat(lat, 'f', -1, 64)),
		url.QueryEscape(strconv.FormatFloat(lon, 'f', -1, 64)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build pollen request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pollen request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("pollen request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw []*wireReading
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode pollen response: %w", err)
	}

	readings := make([]verdict.PollenReading, 0, len(raw))
	for _, entry := range raw {
		if entry == nil {
			continue
		}
		readings = append(readings, verdict.PollenReading{
			Code:     entry.Code,
			UPIValue: entry.UPIValue,
			InSeason: entry.InSeason,
		})
	}
	return readings, nil
}

type wireReading struct {
	Code     string  `json:"code"`
	UPIValue float64 `json:"upiValue"`
	InSeason bool    `json:"inSeason"`
}

var _ verdict.PollenProvider = (*Client)(nil)
