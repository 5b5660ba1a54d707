package controllerImp

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"raitha/entities"
	"raitha/pkg/modelversion/repository"
)

type ModelVersionCtrl struct{ repo repository.ModelVersionRepository }

func New(repo repository.ModelVersionRepository) *ModelVersionCtrl {
	return &ModelVersionCtrl{repo: repo}
}

type registerReq struct {
	Name      string             `json:"name"`
	Version   string             `json:"version"`
	Metrics   map[string]float64 `json:"metrics"`
	Notes     string             `json:"notes"`
	TrainedAt string             `json:"trained_at"` // RFC3339, optional
}

// Register is called by the offline retraining pipeline after each run.
func (h *ModelVersionCtrl) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Version) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and version required"})
	}
	trainedAt := time.Now()
	if req.TrainedAt != "" {
		t, err := time.Parse(time.RFC3339, req.TrainedAt)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "trained_at must be RFC3339"})
		}
		trainedAt = t
	}

	mv := &entities.ModelVersion{
		Name:      req.Name,
		Version:   req.Version,
		Metrics:   req.Metrics,
		Notes:     req.Notes,
		TrainedAt: trainedAt,
	}
	if err := h.repo.Create(mv); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, mv)
}

func (h *ModelVersionCtrl) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.repo.List(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
