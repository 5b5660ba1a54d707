package repository

import "raitha/entities"

type ModelVersionRepository interface {
	Create(mv *entities.ModelVersion) error
	List(limit int) ([]entities.ModelVersion, error)
}
