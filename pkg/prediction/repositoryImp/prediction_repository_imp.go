package repositoryImp

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"raitha/entities"
	"raitha/pkg/prediction/repository"
)

type predictionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PredictionRepository { return &predictionRepo{db} }

// Create assigns the document id; callers must not set one.
func (r *predictionRepo) Create(p *entities.PredictionRecord) error {
	p.ID = uuid.NewString()
	return r.db.Create(p).Error
}

func (r *predictionRepo) FindByID(id string) (*entities.PredictionRecord, error) {
	var p entities.PredictionRecord
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *predictionRepo) MarkFeedbackReceived(id string) error {
	return r.db.Model(&entities.PredictionRecord{}).
		Where("id = ?", id).
		Update("feedback_received", true).Error
}
