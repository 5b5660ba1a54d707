package repository

import "raitha/entities"

type FeedbackRepository interface {
	Create(fb *entities.FeedbackRecord) error
	Recent(limit int) ([]entities.FeedbackRecord, error)
}
