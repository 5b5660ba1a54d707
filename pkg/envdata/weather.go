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

// WeatherClient queries a NASA-POWER-style climatology API for the fixed
// 2020-2022 window. The annual precipitation rate is converted to mm/year
// by multiplying by 3650 (legacy unit-conversion constant, reproduce as-is).
type WeatherClient struct {
	baseURL string
	hc      *http.Client
}

const rainfallAnnualizeFactor = 3650

func NewWeatherClient(baseURL string) *WeatherClient {
	if baseURL == "" {
		baseURL = "https://power.larc.nasa.gov/api/temporal/climatology/point"
	}
	return &WeatherClient{baseURL: baseURL, hc: &http.Client{Timeout: 15 * time.Second}}
}

func (c *WeatherClient) Fetch(ctx context.Context, lat, lon float64) (types.WeatherInput, error) {
	q := url.Values{}
	q.Set("parameters", "T2M,RH2M,PRECTOTCORR,ALLSKY_SFC_SW_DWN")
	q.Set("community", "AG")
	q.Set("longitude", fmt.Sprintf("%f", lon))
	q.Set("latitude", fmt.Sprintf("%f", lat))
	q.Set("format", "JSON")
	q.Set("start", "2020")
	q.Set("end", "2022")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return types.WeatherInput{}, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return types.WeatherInput{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return types.WeatherInput{}, fmt.Errorf("weather api: status %d", resp.StatusCode)
	}

	var out struct {
		Properties struct {
			Parameter map[string]struct {
				ANN float64 `json:"ANN"`
			} `json:"parameter"`
		} `json:"properties"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return types.WeatherInput{}, fmt.Errorf("weather api: decode: %w", err)
	}
	params := out.Properties.Parameter
	if len(params) == 0 {
		return types.WeatherInput{}, fmt.Errorf("weather api: empty parameters")
	}

	return types.WeatherInput{
		AvgTemperatureC: params["T2M"].ANN,
		AvgHumidityPct:  params["RH2M"].ANN,
		AvgRainfallMm:   params["PRECTOTCORR"].ANN * rainfallAnnualizeFactor,
		SolarRadiation:  params["ALLSKY_SFC_SW_DWN"].ANN,
	}, nil
}
