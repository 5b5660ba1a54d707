package repository

import "raitha/entities"

type LayoutMapRepository interface {
	Create(m *entities.LayoutMap) error
	FindByPrediction(predictionID string) (*entities.LayoutMap, error)
}
