package repositories

import (
	"trip_map_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type regionRepository struct {
	repository
}

type RegionRepository interface {
	GetOneByName(name string) (*models.Region, error)
	GetMany() ([]*models.Region, error)
}

func NewRegionRepository(db *pg.DB) RegionRepository {
	return &regionRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *regionRepository) GetOneByName(name string) (*models.Region, error) {
	region := &models.Region{}

	err := r.db.Model(region).
		Where("name = ?", name).
		Select()

	return region, err
}

func (r *regionRepository) GetMany() ([]*models.Region, error) {
	regions := make([]*models.Region, 0)

	err := r.db.Model(&regions).
		Order("name ASC").
		Select()

	return regions, err
}
