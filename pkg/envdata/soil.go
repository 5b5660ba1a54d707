package envdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"raitha/pkg/recommend/types"
)

// SoilClient queries a soil-properties API for topsoil values at the 0-5cm
// band. The source encodes pH and organic carbon with one implied decimal
// digit, so both are divided by 10 before use.
type SoilClient struct {
	baseURL string
	hc      *http.Client
}

func NewSoilClient(baseURL string) *SoilClient {
	if baseURL == "" {
		baseURL = "https://rest.isric.org/soilgrids/v2.0/properties/query"
	}
	return &SoilClient{baseURL: baseURL, hc: &http.Client{Timeout: 15 * time.Second}}
}

func (c *SoilClient) Fetch(ctx context.Context, lat, lon float64) (types.SoilInput, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	for _, p := range []string{"phh2o", "soc", "nitrogen", "cec", "sand", "silt", "clay"} {
		q.Add("property", p)
	}
	q.Set("depth", "0-5cm")
	q.Set("value", "mean")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return types.SoilInput{}, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return types.SoilInput{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return types.SoilInput{}, fmt.Errorf("soil api: status %d", resp.StatusCode)
	}

	var out struct {
		Properties map[string]struct {
			Mean float64 `json:"mean"`
		} `json:"properties"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return types.SoilInput{}, fmt.Errorf("soil api: decode: %w", err)
	}
	if len(out.Properties) == 0 {
		return types.SoilInput{}, fmt.Errorf("soil api: empty properties")
	}

	mean := func(k string) float64 { return out.Properties[k].Mean }
	return types.SoilInput{
		PH:            mean("phh2o") / 10,
		OrganicCarbon: mean("soc") / 10,
		Nitrogen:      mean("nitrogen"),
		CEC:           mean("cec"),
		SandPct:       mean("sand"),
		SiltPct:       mean("silt"),
		ClayPct:       mean("clay"),
	}, nil
}
