package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"raitha/entities"
	"raitha/pkg/feedback/serviceImp"
)

type FeedbackCtrl struct{ svc *serviceImp.FeedbackSvc }

func NewFeedbackCtrl(svc *serviceImp.FeedbackSvc) *FeedbackCtrl { return &FeedbackCtrl{svc: svc} }

type submitReq struct {
	Rating             int      `json:"rating"`
	ActualYieldKg      *float64 `json:"actual_yield_kg"`
	ActualRoi          *float64 `json:"actual_roi"`
	Comments           string   `json:"comments"`
	RecommendationFlag string   `json:"recommendation_flag"`
}

func (h *FeedbackCtrl) Submit(c echo.Context) error {
	predictionID := strings.TrimSpace(c.Param("id"))
	if predictionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "prediction id required"})
	}
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "rating must be 1-5"})
	}

	fb := &entities.FeedbackRecord{
		Rating:             req.Rating,
		ActualYieldKg:      req.ActualYieldKg,
		ActualRoi:          req.ActualRoi,
		Comments:           req.Comments,
		RecommendationFlag: req.RecommendationFlag,
	}
	out, err := h.svc.Submit(predictionID, fb)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *FeedbackCtrl) Recent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.svc.Recent(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
