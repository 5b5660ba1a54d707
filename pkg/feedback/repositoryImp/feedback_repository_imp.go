package repositoryImp

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"raitha/entities"
	"raitha/pkg/feedback/repository"
)

type feedbackRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FeedbackRepository { return &feedbackRepo{db} }

func (r *feedbackRepo) Create(fb *entities.FeedbackRecord) error {
	fb.ID = uuid.NewString()
	return r.db.Create(fb).Error
}

func (r *feedbackRepo) Recent(limit int) ([]entities.FeedbackRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []entities.FeedbackRecord
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
