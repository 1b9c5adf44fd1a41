package repositories

import (
	"trip_map_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type mapConfigRepository struct {
	repository
}

type MapConfigRepository interface {
	GetOne() (*models.MapConfig, error)
}

func NewMapConfigRepository(db *pg.DB) MapConfigRepository {
	return &mapConfigRepository{
		repository: repository{
			db: db,
		},
	}
}

// GetOne returns the single viewport row; the relation holds exactly one.
func (r *mapConfigRepository) GetOne() (*models.MapConfig, error) {
	config := &models.MapConfig{}

	err := r.db.Model(config).
		Limit(1).
		Select()

	return config, err
}
