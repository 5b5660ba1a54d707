package repositoryImp

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"raitha/entities"
	"raitha/pkg/layoutmap/repository"
)

type layoutMapRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LayoutMapRepository { return &layoutMapRepo{db} }

func (r *layoutMapRepo) Create(m *entities.LayoutMap) error {
	m.ID = uuid.NewString()
	return r.db.Create(m).Error
}

func (r *layoutMapRepo) FindByPrediction(predictionID string) (*entities.LayoutMap, error) {
	var m entities.LayoutMap
	if err := r.db.Where("prediction_id = ?", predictionID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
