package serviceImp

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"raitha/entities"
	"raitha/pkg/layoutmap"
	lmRepo "raitha/pkg/layoutmap/repository"
	predRepo "raitha/pkg/prediction/repository"
)

type LayoutMapSvc struct {
	maps  lmRepo.LayoutMapRepository
	preds predRepo.PredictionRepository
	log   *zap.SugaredLogger
}

func New(maps lmRepo.LayoutMapRepository, preds predRepo.PredictionRepository, log *zap.SugaredLogger) *LayoutMapSvc {
	return &LayoutMapSvc{maps: maps, preds: preds, log: log}
}

// ForPrediction returns the stored layout map for a prediction, building and
// caching it on first access. Persisting the built map is best effort.
func (s *LayoutMapSvc) ForPrediction(predictionID string) (*entities.LayoutMap, error) {
	if existing, err := s.maps.FindByPrediction(predictionID); err == nil && existing != nil {
		return existing, nil
	}

	p, err := s.preds.FindByID(predictionID)
	if err != nil {
		return nil, fmt.Errorf("prediction %s: %w", predictionID, err)
	}

	fc := layoutmap.Build(p.FarmerInput.Location, p.FarmerInput.LandAreaAcres, p.Recommendations)
	raw, err := json.Marshal(fc)
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}

	m := &entities.LayoutMap{
		PredictionID: predictionID,
		Pattern:      p.Recommendations.LayoutPlan.Pattern,
		GeoJSON:      string(raw),
	}
	if err := s.maps.Create(m); err != nil {
		s.log.Warnw("layout map not cached", "prediction_id", predictionID, "err", err)
	}
	return m, nil
}
