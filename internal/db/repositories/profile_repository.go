package repositories

import (
	"trip_map_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type profileRepository struct {
	repository
}

type ProfileRepository interface {
	Create(request *models.Profile) (*models.Profile, error)
	Update(request *models.Profile) (*models.Profile, error)
	GetOne(profileID uuid.UUID) (*models.Profile, error)
	GetOneByEmail(email string) (*models.Profile, error)
}

func NewProfileRepository(db *pg.DB) ProfileRepository {
	return &profileRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *profileRepository) Create(request *models.Profile) (*models.Profile, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *profileRepository) Update(request *models.Profile) (*models.Profile, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{}

	err = r.db.Model(profile).
		Where("id = ?", request.ID).
		Select()

	return profile, err
}

func (r *profileRepository) GetOne(profileID uuid.UUID) (*models.Profile, error) {
	profile := &models.Profile{}

	err := r.db.Model(profile).
		Where("id = ?", profileID).
		Select()

	return profile, err
}

func (r *profileRepository) GetOneByEmail(email string) (*models.Profile, error) {
	profile := &models.Profile{}

	err := r.db.Model(profile).
		Where("lower(email) = lower(?)", email).
		Select()

	return profile, err
}
