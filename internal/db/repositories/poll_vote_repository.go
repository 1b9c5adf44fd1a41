package repositories

import (
	"trip_map_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type pollVoteRepository struct {
	repository
}

type PollVoteRepository interface {
	Create(request *models.PollVote) (*models.PollVote, error)
	Update(request *models.PollVote) (*models.PollVote, error)
	Delete(voteID uuid.UUID) error
	GetOneByUserPollGroup(userID, pollID, groupID uuid.UUID) (*models.PollVote, error)
	GetManyByGroup(groupID uuid.UUID) ([]*models.PollVote, error)
}

func NewPollVoteRepository(db *pg.DB) PollVoteRepository {
	return &pollVoteRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *pollVoteRepository) Create(request *models.PollVote) (*models.PollVote, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *pollVoteRepository) Update(request *models.PollVote) (*models.PollVote, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	vote := &models.PollVote{}

	err = r.db.Model(vote).
		Where("id = ?", request.ID).
		Select()

	return vote, err
}

func (r *pollVoteRepository) Delete(voteID uuid.UUID) error {
	_, err := r.db.Model((*models.PollVote)(nil)).
		Where("id = ?", voteID).
		Delete()

	return err
}

func (r *pollVoteRepository) GetOneByUserPollGroup(userID, pollID, groupID uuid.UUID) (*models.PollVote, error) {
	vote := &models.PollVote{}

	err := r.db.Model(vote).
		Where("user_id = ?", userID).
		Where("poll_id = ?", pollID).
		Where("group_id = ?", groupID).
		Select()

	return vote, err
}

func (r *pollVoteRepository) GetManyByGroup(groupID uuid.UUID) ([]*models.PollVote, error) {
	votes := make([]*models.PollVote, 0)

	err := r.db.Model(&votes).
		Where("group_id = ?", groupID).
		Select()

	return votes, err
}
