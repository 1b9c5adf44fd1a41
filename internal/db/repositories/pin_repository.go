package repositories

import (
	"trip_map_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type pinRepository struct {
	repository
}

type PinRepository interface {
	Create(request *models.Pin) (*models.Pin, error)
	Update(request *models.Pin) (*models.Pin, error)
	UpdateRegion(pinID uuid.UUID, regionID uuid.UUID) error
	GetOne(pinID uuid.UUID) (*models.Pin, error)
	GetOneByName(name string) (*models.Pin, error)
	GetMany() ([]*models.Pin, error)
}

func NewPinRepository(db *pg.DB) PinRepository {
	return &pinRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *pinRepository) Create(request *models.Pin) (*models.Pin, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	pin := &models.Pin{}

	err = r.db.Model(pin).
		Where("id = ?", request.ID).
		Select()

	return pin, err
}

func (r *pinRepository) Update(request *models.Pin) (*models.Pin, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	pin := &models.Pin{}

	err = r.db.Model(pin).
		Where("id = ?", request.ID).
		Select()

	return pin, err
}

func (r *pinRepository) UpdateRegion(pinID uuid.UUID, regionID uuid.UUID) error {
	_, err := r.db.Model((*models.Pin)(nil)).
		Set("region_id = ?", regionID).
		Where("id = ?", pinID).
		Update()

	return err
}

func (r *pinRepository) GetOne(pinID uuid.UUID) (*models.Pin, error) {
	pin := &models.Pin{}

	err := r.db.Model(pin).
		Where("id = ?", pinID).
		Select()

	return pin, err
}

func (r *pinRepository) GetOneByName(name string) (*models.Pin, error) {
	pin := &models.Pin{}

	err := r.db.Model(pin).
		Where("lower(name) = lower(?)", name).
		Select()

	return pin, err
}

func (r *pinRepository) GetMany() ([]*models.Pin, error) {
	pins := make([]*models.Pin, 0)

	err := r.db.Model(&pins).
		Order("name ASC").
		Select()

	return pins, err
}
