package envdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ElevationClient looks up elevation for a single point.
type ElevationClient struct {
	baseURL string
	hc      *http.Client
}

func NewElevationClient(baseURL string) *ElevationClient {
	if baseURL == "" {
		baseURL = "https://api.open-elevation.com/api/v1/lookup"
	}
	return &ElevationClient{baseURL: baseURL, hc: &http.Client{Timeout: 15 * time.Second}}
}

func (c *ElevationClient) Fetch(ctx context.Context, lat, lon float64) (float64, error) {
	q := url.Values{}
	q.Set("locations", fmt.Sprintf("%f,%f", lat, lon))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("elevation api: status %d", resp.StatusCode)
	}

	var out struct {
		Results []struct {
			Elevation float64 `json:"elevation"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("elevation api: decode: %w", err)
	}
	if len(out.Results) == 0 {
		return 0, fmt.Errorf("elevation api: no results")
	}
	return out.Results[0].Elevation, nil
}
