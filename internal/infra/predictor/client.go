package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/allermind/verdict/internal/domain/verdict"
)

const defaultBaseURL = "http://localhost:8000"

// Client submits composite feature requests to the remote prediction
// function. A success=false response body is a logical outcome and is
// returned to the caller, never converted into an error.
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
			Timeout: 30 * time.Second,
		},
	}
}

// Predict posts the composite request and decodes the prediction.
func (c *Client) Predict(ctx context.Context, featureReq verdict.FeatureRequest) (verdict.Prediction, error) {
	payload, err := json.Marshal(featureReq)
	if err != nil {
		return verdict.Prediction{}, fmt.Errorf("encode prediction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/predict", bytes.NewReader(payload))
	if err != nil {
		return verdict.Prediction{}, fmt.Errorf("build prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return verdict.Prediction{}, fmt.Errorf("prediction request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return verdict.Prediction{}, fmt.Errorf("prediction request error: status=%d body=%s", resp.StatusCode, string(body))
	}

	var prediction verdict.Prediction
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return verdict.Prediction{}, fmt.Errorf("decode prediction response: %w", err)
	}
	return prediction, nil
}

var _ verdict.Predictor = (*Client)(nil)
