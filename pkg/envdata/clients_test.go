package envdata

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoilFetchScalesImpliedDecimals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0-5cm", r.URL.Query().Get("depth"))
		assert.Equal(t, "mean", r.URL.Query().Get("value"))
		assert.ElementsMatch(t,
			[]string{"phh2o", "soc", "nitrogen", "cec", "sand", "silt", "clay"},
			r.URL.Query()["property"])
		fmt.Fprint(w, `{"properties":{
			"phh2o":{"mean":67},"soc":{"mean":12},"nitrogen":{"mean":150},
			"cec":{"mean":12},"sand":{"mean":45},"silt":{"mean":35},"clay":{"mean":20}}}`)
	}))
	defer srv.Close()

	soil, err := NewSoilClient(srv.URL).Fetch(context.Background(), 12.97, 77.59)
	require.NoError(t, err)
	assert.Equal(t, 6.7, soil.PH)
	assert.Equal(t, 1.2, soil.OrganicCarbon)
	assert.Equal(t, 150.0, soil.Nitrogen)
	assert.Equal(t, 45.0, soil.SandPct)
}

func TestSoilFetchErrors(t *testing.T) {
	t.Run("non-200", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()
		_, err := NewSoilClient(srv.URL).Fetch(context.Background(), 0, 0)
		assert.Error(t, err)
	})
	t.Run("empty properties", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"properties":{}}`)
		}))
		defer srv.Close()
		_, err := NewSoilClient(srv.URL).Fetch(context.Background(), 0, 0)
		assert.Error(t, err)
	})
}

func TestWeatherFetchAnnualizesRainfall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AG", r.URL.Query().Get("community"))
		assert.Equal(t, "2020", r.URL.Query().Get("start"))
		assert.Equal(t, "2022", r.URL.Query().Get("end"))
		fmt.Fprint(w, `{"properties":{"parameter":{
			"T2M":{"ANN":28.3},"RH2M":{"ANN":64.5},
			"PRECTOTCORR":{"ANN":0.3},"ALLSKY_SFC_SW_DWN":{"ANN":5.4}}}}`)
	}))
	defer srv.Close()

	wx, err := NewWeatherClient(srv.URL).Fetch(context.Background(), 12.97, 77.59)
	require.NoError(t, err)
	assert.Equal(t, 28.3, wx.AvgTemperatureC)
	assert.Equal(t, 64.5, wx.AvgHumidityPct)
	assert.InDelta(t, 0.3*3650, wx.AvgRainfallMm, 0.001)
	assert.Equal(t, 5.4, wx.SolarRadiation)
}

func TestWeatherFetchEmptyParameters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"properties":{"parameter":{}}}`)
	}))
	defer srv.Close()
	_, err := NewWeatherClient(srv.URL).Fetch(context.Background(), 0, 0)
	assert.Error(t, err)
}

func TestElevationFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "12.970000,77.590000", r.URL.Query().Get("locations"))
		fmt.Fprint(w, `{"results":[{"elevation":920.5}]}`)
	}))
	defer srv.Close()

	ele, err := NewElevationClient(srv.URL).Fetch(context.Background(), 12.97, 77.59)
	require.NoError(t, err)
	assert.Equal(t, 920.5, ele)
}

func TestElevationFetchNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[]}`)
	}))
	defer srv.Close()
	_, err := NewElevationClient(srv.URL).Fetch(context.Background(), 0, 0)
	assert.Error(t, err)
}

// The fallback values are a contract with downstream consumers; pin them.
func TestFallbackValues(t *testing.T) {
	soil := FallbackSoil()
	assert.Equal(t, 6.7, soil.PH)
	assert.Equal(t, 1.2, soil.OrganicCarbon)
	assert.Equal(t, 150.0, soil.Nitrogen)
	assert.Equal(t, 12.0, soil.CEC)
	assert.Equal(t, 45.0, soil.SandPct)
	assert.Equal(t, 35.0, soil.SiltPct)
	assert.Equal(t, 20.0, soil.ClayPct)

	wx := FallbackWeather()
	assert.Equal(t, 28.0, wx.AvgTemperatureC)
	assert.Equal(t, 65.0, wx.AvgHumidityPct)
	assert.Equal(t, 980.0, wx.AvgRainfallMm)
	assert.Equal(t, 5.5, wx.SolarRadiation)

	assert.Equal(t, 500.0, FallbackElevationM)
}
