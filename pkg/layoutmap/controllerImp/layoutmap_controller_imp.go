package controllerImp

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"raitha/pkg/layoutmap/serviceImp"
)

type LayoutMapCtrl struct{ svc *serviceImp.LayoutMapSvc }

func New(svc *serviceImp.LayoutMapSvc) *LayoutMapCtrl { return &LayoutMapCtrl{svc: svc} }

func (h *LayoutMapCtrl) Get(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "prediction id required"})
	}
	m, err := h.svc.ForPrediction(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"prediction_id": m.PredictionID,
		"pattern":       m.Pattern,
		"geojson":       json.RawMessage(m.GeoJSON),
	})
}
