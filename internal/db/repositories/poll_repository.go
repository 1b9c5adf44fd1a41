package repositories

import (
	"trip_map_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type pollRepository struct {
	repository
}

type PollRepository interface {
	Create(request *models.Poll) (*models.Poll, error)
	Delete(pollID uuid.UUID) error
	UpdateSortOrder(pollID uuid.UUID, sortOrder int) error
	GetOne(pollID uuid.UUID) (*models.Poll, error)
	GetManyByGroup(groupID uuid.UUID) ([]*models.Poll, error)
}

func NewPollRepository(db *pg.DB) PollRepository {
	return &pollRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *pollRepository) Create(request *models.Poll) (*models.Poll, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *pollRepository) Delete(pollID uuid.UUID) error {
	_, err := r.db.Model((*models.Poll)(nil)).
		Where("id = ?", pollID).
		Delete()

	return err
}

func (r *pollRepository) UpdateSortOrder(pollID uuid.UUID, sortOrder int) error {
	_, err := r.db.Model((*models.Poll)(nil)).
		Set("sort_order = ?", sortOrder).
		Where("id = ?", pollID).
		Update()

	return err
}

func (r *pollRepository) GetOne(pollID uuid.UUID) (*models.Poll, error) {
	poll := &models.Poll{}

	err := r.db.Model(poll).
		Where("id = ?", pollID).
		Select()

	return poll, err
}

func (r *pollRepository) GetManyByGroup(groupID uuid.UUID) ([]*models.Poll, error) {
	polls := make([]*models.Poll, 0)

	err := r.db.Model(&polls).
		Where("group_id = ?", groupID).
		Order("sort_order ASC").
		Select()

	return polls, err
}
