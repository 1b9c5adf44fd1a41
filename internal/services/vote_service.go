package services

import (
	"errors"
	"sort"
	"time"
	"trip_map_system/internal/db/models"
	"trip_map_system/internal/db/repositories"
	"trip_map_system/internal/mapdata"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VoteOutcome reports what a submit actually did, so the caller can keep
// its view in step without re-reading.
type VoteOutcome string

const (
	VoteOutcomeCreated VoteOutcome = "created"
	VoteOutcomeUpdated VoteOutcome = "updated"
	VoteOutcomeRemoved VoteOutcome = "removed"
)

// GroupVoteState is everything a client needs to render voting for one
// group: per-pin tallies plus the requesting user's own tiers.
type GroupVoteState struct {
	Tallies   map[uuid.UUID]models.Tally    `json:"tallies"`
	UserTiers map[uuid.UUID]models.VoteTier `json:"user_tiers"`
}

// RegionOutcome ranks a region's votable pins by positive votes for the
// outcomes view.
type RegionOutcome struct {
	Region string       `json:"region"`
	Pins   []PinOutcome `json:"pins"`
}

type PinOutcome struct {
	PinID    uuid.UUID    `json:"pin_id"`
	PinName  string       `json:"pin_name"`
	Category string       `json:"category"`
	Tally    models.Tally `json:"tally"`
}

type voteService struct {
	voteRepository    repositories.VoteRepository
	memberRepository  repositories.GroupMemberRepository
	profileRepository repositories.ProfileRepository
	registry          *mapdata.Registry
	logger            *zap.SugaredLogger
}

type VoteService interface {
	Submit(userID, pinID, groupID uuid.UUID, tier models.VoteTier) (VoteOutcome, error)
	Retract(userID, pinID, groupID uuid.UUID) error
	GroupState(userID, groupID uuid.UUID) (*GroupVoteState, error)
	Outcomes(groupID uuid.UUID) ([]RegionOutcome, error)
}

func NewVoteService(
	voteRepository repositories.VoteRepository,
	memberRepository repositories.GroupMemberRepository,
	profileRepository repositories.ProfileRepository,
	registry *mapdata.Registry,
	logger *zap.SugaredLogger,
) VoteService {
	return &voteService{
		voteRepository:    voteRepository,
		memberRepository:  memberRepository,
		profileRepository: profileRepository,
		registry:          registry,
		logger:            logger,
	}
}

// Submit upserts the caller's vote keyed by (user, pin, group).
// Re-submitting the tier the user already holds removes the vote instead.
func (s *voteService) Submit(userID, pinID, groupID uuid.UUID, tier models.VoteTier) (VoteOutcome, error) {
	if !tier.IsValid() {
		return "", ErrInvalidTier
	}

	allowed, err := canVote(s.memberRepository, s.profileRepository, userID, groupID)
	if err != nil {
		return "", err
	}
	if !allowed {
		return "", ErrVotingNotPermitted
	}

	pin, ok := s.registry.PinByID(pinID)
	if !ok {
		return "", ErrPinNotFound
	}
	if !s.registry.Votable(pin) {
		return "", ErrNotAuthorized
	}

	existing, err := s.voteRepository.GetOneByUserPinGroup(userID, pinID, groupID)
	if err != nil {
		if !errors.Is(err, pg.ErrNoRows) {
			return "", err
		}

		_, err = s.voteRepository.Create(&models.Vote{
			UserID:  userID,
			PinID:   pinID,
			GroupID: groupID,
			Tier:    tier,
		})
		if err != nil {
			return "", err
		}
		return VoteOutcomeCreated, nil
	}

	if existing.Tier == tier {
		if err := s.voteRepository.Delete(existing.ID); err != nil {
			return "", err
		}
		return VoteOutcomeRemoved, nil
	}

	existing.Tier = tier
	existing.UpdatedAt = time.Now()
	if _, err := s.voteRepository.Update(existing); err != nil {
		return "", err
	}

	return VoteOutcomeUpdated, nil
}

// Retract removes the caller's vote for the pin in the group. Retracting
// a vote that does not exist is a no-op.
func (s *voteService) Retract(userID, pinID, groupID uuid.UUID) error {
	allowed, err := canVote(s.memberRepository, s.profileRepository, userID, groupID)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrVotingNotPermitted
	}

	existing, err := s.voteRepository.GetOneByUserPinGroup(userID, pinID, groupID)
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil
		}
		return err
	}

	return s.voteRepository.Delete(existing.ID)
}

// GroupState loads all vote state for one group. Callers switch groups by
// calling this again with the new id; nothing is carried across.
func (s *voteService) GroupState(userID, groupID uuid.UUID) (*GroupVoteState, error) {
	if groupID == uuid.Nil {
		return nil, ErrNoGroupSelected
	}

	votes, err := s.voteRepository.GetManyByGroup(groupID)
	if err != nil {
		return nil, err
	}

	state := &GroupVoteState{
		Tallies:   make(map[uuid.UUID]models.Tally),
		UserTiers: make(map[uuid.UUID]models.VoteTier),
	}

	for _, vote := range votes {
		tally := state.Tallies[vote.PinID]
		tally.Total++
		if vote.Tier.IsPositive() {
			tally.Positive++
		}
		state.Tallies[vote.PinID] = tally

		if vote.UserID == userID {
			state.UserTiers[vote.PinID] = vote.Tier
		}
	}

	return state, nil
}

// Outcomes groups votable pins by region and ranks them by positive count.
func (s *voteService) Outcomes(groupID uuid.UUID) ([]RegionOutcome, error) {
	if groupID == uuid.Nil {
		return nil, ErrNoGroupSelected
	}

	votes, err := s.voteRepository.GetManyByGroup(groupID)
	if err != nil {
		return nil, err
	}

	tallies := make(map[uuid.UUID]models.Tally)
	for _, vote := range votes {
		tally := tallies[vote.PinID]
		tally.Total++
		if vote.Tier.IsPositive() {
			tally.Positive++
		}
		tallies[vote.PinID] = tally
	}

	byRegion := make(map[string][]PinOutcome)
	for _, pin := range s.registry.VotablePins() {
		region := pin.Region
		if region == "" {
			region = "Unassigned"
		}
		byRegion[region] = append(byRegion[region], PinOutcome{
			PinID:    pin.ID,
			PinName:  pin.Name,
			Category: pin.Category,
			Tally:    tallies[pin.ID],
		})
	}

	regions := make([]string, 0, len(byRegion))
	for region := range byRegion {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	outcomes := make([]RegionOutcome, 0, len(regions))
	for _, region := range regions {
		pins := byRegion[region]
		sort.SliceStable(pins, func(i, j int) bool {
			if pins[i].Tally.Positive != pins[j].Tally.Positive {
				return pins[i].Tally.Positive > pins[j].Tally.Positive
			}
			return pins[i].PinName < pins[j].PinName
		})
		outcomes = append(outcomes, RegionOutcome{Region: region, Pins: pins})
	}

	return outcomes, nil
}
