package repositories

import (
	"trip_map_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type voteRepository struct {
	repository
}

type VoteRepository interface {
	Create(request *models.Vote) (*models.Vote, error)
	Update(request *models.Vote) (*models.Vote, error)
	Delete(voteID uuid.UUID) error
	GetOneByUserPinGroup(userID, pinID, groupID uuid.UUID) (*models.Vote, error)
	GetManyByGroup(groupID uuid.UUID) ([]*models.Vote, error)
}

func NewVoteRepository(db *pg.DB) VoteRepository {
	return &voteRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *voteRepository) Create(request *models.Vote) (*models.Vote, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *voteRepository) Update(request *models.Vote) (*models.Vote, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	vote := &models.Vote{}

	err = r.db.Model(vote).
		Where("id = ?", request.ID).
		Select()

	return vote, err
}

func (r *voteRepository) Delete(voteID uuid.UUID) error {
	_, err := r.db.Model((*models.Vote)(nil)).
		Where("id = ?", voteID).
		Delete()

	return err
}

func (r *voteRepository) GetOneByUserPinGroup(userID, pinID, groupID uuid.UUID) (*models.Vote, error) {
	vote := &models.Vote{}

	err := r.db.Model(vote).
		Where("user_id = ?", userID).
		Where("pin_id = ?", pinID).
		Where("group_id = ?", groupID).
		Select()

	return vote, err
}

func (r *voteRepository) GetManyByGroup(groupID uuid.UUID) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)

	err := r.db.Model(&votes).
		Where("group_id = ?", groupID).
		Select()

	return votes, err
}
