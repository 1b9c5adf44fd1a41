package services

import (
	"errors"
	"time"
	"trip_map_system/internal/db/models"
	"trip_map_system/internal/db/repositories"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PollWithTally is a poll plus its aggregate and the requesting user's
// current tier, if any.
type PollWithTally struct {
	Poll     *models.Poll     `json:"poll"`
	Tally    models.Tally     `json:"tally"`
	UserTier *models.VoteTier `json:"user_tier,omitempty"`
}

type pollService struct {
	pollRepository     repositories.PollRepository
	pollVoteRepository repositories.PollVoteRepository
	memberRepository   repositories.GroupMemberRepository
	profileRepository  repositories.ProfileRepository
	logger             *zap.SugaredLogger
}

type PollService interface {
	Create(userID, groupID uuid.UUID, question, description string) (*models.Poll, error)
	Delete(userID, pollID uuid.UUID) error
	Reorder(userID, groupID uuid.UUID, orderedIDs []uuid.UUID) error
	Vote(userID, pollID uuid.UUID, tier models.VoteTier) (VoteOutcome, error)
	GroupPolls(userID, groupID uuid.UUID) ([]PollWithTally, error)
}

func NewPollService(
	pollRepository repositories.PollRepository,
	pollVoteRepository repositories.PollVoteRepository,
	memberRepository repositories.GroupMemberRepository,
	profileRepository repositories.ProfileRepository,
	logger *zap.SugaredLogger,
) PollService {
	return &pollService{
		pollRepository:     pollRepository,
		pollVoteRepository: pollVoteRepository,
		memberRepository:   memberRepository,
		profileRepository:  profileRepository,
		logger:             logger,
	}
}

func (s *pollService) Create(userID, groupID uuid.UUID, question, description string) (*models.Poll, error) {
	allowed, err := canVote(s.memberRepository, s.profileRepository, userID, groupID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrVotingNotPermitted
	}

	existing, err := s.pollRepository.GetManyByGroup(groupID)
	if err != nil {
		return nil, err
	}

	return s.pollRepository.Create(&models.Poll{
		Question:    question,
		Description: description,
		GroupID:     groupID,
		SortOrder:   len(existing),
		CreatedBy:   userID,
	})
}

func (s *pollService) Delete(userID, pollID uuid.UUID) error {
	poll, err := s.pollRepository.GetOne(pollID)
	if err != nil {
		return err
	}

	allowed, err := canModerate(s.memberRepository, s.profileRepository, userID, poll.GroupID)
	if err != nil {
		return err
	}
	if !allowed && poll.CreatedBy != userID {
		return ErrNotAuthorized
	}

	return s.pollRepository.Delete(pollID)
}

// Reorder rewrites sort_order to match the given id order. IDs outside the
// group are skipped.
func (s *pollService) Reorder(userID, groupID uuid.UUID, orderedIDs []uuid.UUID) error {
	allowed, err := canVote(s.memberRepository, s.profileRepository, userID, groupID)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrVotingNotPermitted
	}

	polls, err := s.pollRepository.GetManyByGroup(groupID)
	if err != nil {
		return err
	}

	inGroup := make(map[uuid.UUID]bool, len(polls))
	for _, poll := range polls {
		inGroup[poll.ID] = true
	}

	position := 0
	for _, pollID := range orderedIDs {
		if !inGroup[pollID] {
			continue
		}
		if err := s.pollRepository.UpdateSortOrder(pollID, position); err != nil {
			return err
		}
		position++
	}

	return nil
}

// Vote applies the same upsert/toggle-off rule as pin votes.
func (s *pollService) Vote(userID, pollID uuid.UUID, tier models.VoteTier) (VoteOutcome, error) {
	if !tier.IsValid() {
		return "", ErrInvalidTier
	}

	poll, err := s.pollRepository.GetOne(pollID)
	if err != nil {
		return "", err
	}

	allowed, err := canVote(s.memberRepository, s.profileRepository, userID, poll.GroupID)
	if err != nil {
		return "", err
	}
	if !allowed {
		return "", ErrVotingNotPermitted
	}

	existing, err := s.pollVoteRepository.GetOneByUserPollGroup(userID, pollID, poll.GroupID)
	if err != nil {
		if !errors.Is(err, pg.ErrNoRows) {
			return "", err
		}

		_, err = s.pollVoteRepository.Create(&models.PollVote{
			UserID:  userID,
			PollID:  pollID,
			GroupID: poll.GroupID,
			Tier:    tier,
		})
		if err != nil {
			return "", err
		}
		return VoteOutcomeCreated, nil
	}

	if existing.Tier == tier {
		if err := s.pollVoteRepository.Delete(existing.ID); err != nil {
			return "", err
		}
		return VoteOutcomeRemoved, nil
	}

	existing.Tier = tier
	existing.UpdatedAt = time.Now()
	if _, err := s.pollVoteRepository.Update(existing); err != nil {
		return "", err
	}

	return VoteOutcomeUpdated, nil
}

// GroupPolls returns the group's polls in sort order with tallies computed
// by the same positive/total formula as pin votes.
func (s *pollService) GroupPolls(userID, groupID uuid.UUID) ([]PollWithTally, error) {
	if groupID == uuid.Nil {
		return nil, ErrNoGroupSelected
	}

	polls, err := s.pollRepository.GetManyByGroup(groupID)
	if err != nil {
		return nil, err
	}

	votes, err := s.pollVoteRepository.GetManyByGroup(groupID)
	if err != nil {
		return nil, err
	}

	tallies := make(map[uuid.UUID]models.Tally)
	userTiers := make(map[uuid.UUID]models.VoteTier)
	for _, vote := range votes {
		tally := tallies[vote.PollID]
		tally.Total++
		if vote.Tier.IsPositive() {
			tally.Positive++
		}
		tallies[vote.PollID] = tally

		if vote.UserID == userID {
			userTiers[vote.PollID] = vote.Tier
		}
	}

	result := make([]PollWithTally, 0, len(polls))
	for _, poll := range polls {
		entry := PollWithTally{Poll: poll, Tally: tallies[poll.ID]}
		if tier, ok := userTiers[poll.ID]; ok {
			t := tier
			entry.UserTier = &t
		}
		result = append(result, entry)
	}

	return result, nil
}
