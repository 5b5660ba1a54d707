package repository

import "raitha/entities"

type PredictionRepository interface {
	Create(p *entities.PredictionRecord) error
	FindByID(id string) (*entities.PredictionRecord, error)
	MarkFeedbackReceived(id string) error
}
