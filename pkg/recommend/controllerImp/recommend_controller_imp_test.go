package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func doPredict(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// validation failures never reach the service
	h := NewPredictCtrl(nil)
	assert.NoError(t, h.Predict(c))
	return rec
}

func TestPredictRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero area", `{"location":{"lat":12.9,"lon":77.5},"land_area_acres":0}`},
		{"negative area", `{"land_area_acres":-1}`},
		{"negative budget", `{"land_area_acres":2,"budget_inr":-500}`},
		{"ph out of range", `{"land_area_acres":2,"soil_ph":15}`},
		{"ph zero", `{"land_area_acres":2,"soil_ph":0}`},
		{"bad tier", `{"land_area_acres":2,"investment_capacity":"enterprise"}`},
		{"malformed json", `{"land_area`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doPredict(t, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
