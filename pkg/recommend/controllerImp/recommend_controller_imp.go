package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"raitha/pkg/recommend/serviceImp"
	"raitha/pkg/recommend/types"
)

type PredictCtrl struct{ svc *serviceImp.RecommendSvc }

func NewPredictCtrl(svc *serviceImp.RecommendSvc) *PredictCtrl { return &PredictCtrl{svc: svc} }

type predictReq struct {
	Location struct {
		Lat  float64 `json:"lat"`
		Lon  float64 `json:"lon"`
		Name string  `json:"name"`
	} `json:"location"`
	LandAreaAcres      float64  `json:"land_area_acres"`
	InvestmentCapacity string   `json:"investment_capacity"`
	BudgetInr          float64  `json:"budget_inr"`
	SoilPH             *float64 `json:"soil_ph"` // optional sanity-checked hint
}

// Predict runs the full recommendation pipeline. Input is validated here;
// downstream layers are permissive by contract.
func (h *PredictCtrl) Predict(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req predictReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.LandAreaAcres <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "land_area_acres must be > 0"})
	}
	if req.BudgetInr < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "budget_inr must be >= 0"})
	}
	if req.SoilPH != nil && (*req.SoilPH <= 0 || *req.SoilPH > 14) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "soil_ph must be in (0, 14]"})
	}
	switch req.InvestmentCapacity {
	case "", "low", "medium", "high":
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "investment_capacity must be low|medium|high"})
	}

	in := types.FarmerInput{
		Location:           types.Location{Lat: req.Location.Lat, Lon: req.Location.Lon, Name: req.Location.Name},
		LandAreaAcres:      req.LandAreaAcres,
		InvestmentCapacity: req.InvestmentCapacity,
		BudgetInr:          req.BudgetInr,
	}
	res := h.svc.Recommend(c.Request().Context(), uid, in)
	return c.JSON(http.StatusOK, res)
}
