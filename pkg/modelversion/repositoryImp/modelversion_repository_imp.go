package repositoryImp

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"raitha/entities"
	"raitha/pkg/modelversion/repository"
)

type modelVersionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ModelVersionRepository { return &modelVersionRepo{db} }

func (r *modelVersionRepo) Create(mv *entities.ModelVersion) error {
	mv.ID = uuid.NewString()
	return r.db.Create(mv).Error
}

func (r *modelVersionRepo) List(limit int) ([]entities.ModelVersion, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []entities.ModelVersion
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
