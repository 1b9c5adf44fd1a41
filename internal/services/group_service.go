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

type groupService struct {
	groupRepository   repositories.GroupRepository
	memberRepository  repositories.GroupMemberRepository
	profileRepository repositories.ProfileRepository
	logger            *zap.SugaredLogger
}

type GroupService interface {
	Create(userID uuid.UUID, name, description string) (*models.Group, error)
	Delete(userID, groupID uuid.UUID) error
	RequestJoin(userID, groupID uuid.UUID) (*models.GroupMember, error)
	Approve(actorID, groupID, userID uuid.UUID) (*models.GroupMember, error)
	Deny(actorID, groupID, userID uuid.UUID) (*models.GroupMember, error)
	RemoveMember(actorID, groupID, userID uuid.UUID) error
	Members(actorID, groupID uuid.UUID) ([]*models.GroupMember, error)
	GroupsForUser(userID uuid.UUID) ([]*models.Group, error)
	SelectGroup(userID uuid.UUID, groupID *uuid.UUID) (*models.Profile, error)
}

func NewGroupService(
	groupRepository repositories.GroupRepository,
	memberRepository repositories.GroupMemberRepository,
	profileRepository repositories.ProfileRepository,
	logger *zap.SugaredLogger,
) GroupService {
	return &groupService{
		groupRepository:   groupRepository,
		memberRepository:  memberRepository,
		profileRepository: profileRepository,
		logger:            logger,
	}
}

// Create makes the group and grants its creator the single admin-role
// membership, already approved.
func (s *groupService) Create(userID uuid.UUID, name, description string) (*models.Group, error) {
	group, err := s.groupRepository.Create(&models.Group{
		Name:        name,
		Description: description,
		CreatedBy:   userID,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	_, err = s.memberRepository.Create(&models.GroupMember{
		GroupID:    group.ID,
		UserID:     userID,
		Role:       models.MemberRoleAdmin,
		Status:     models.MemberStatusApproved,
		ApprovedAt: &now,
		ApprovedBy: &userID,
	})
	if err != nil {
		return nil, err
	}

	// the new group becomes the creator's current group
	if _, err := s.SelectGroup(userID, &group.ID); err != nil {
		s.logger.Errorw("failed to select newly created group", "error", err, "groupID", group.ID)
	}

	return group, nil
}

// Delete removes the group; the store's cascade rules take the
// memberships, votes and polls with it. Members whose current group was
// deleted fall back on their next bootstrap via SelectGroup.
func (s *groupService) Delete(userID, groupID uuid.UUID) error {
	group, err := s.groupRepository.GetOne(groupID)
	if err != nil {
		return err
	}

	allowed, err := canModerate(s.memberRepository, s.profileRepository, userID, groupID)
	if err != nil {
		return err
	}
	if !allowed && group.CreatedBy != userID {
		return ErrNotAuthorized
	}

	// the delete's SET NULL clears last_group_id, so whether this group
	// was the caller's current one has to be read first
	profile, err := s.profileRepository.GetOne(userID)
	if err != nil {
		return err
	}
	wasCurrent := profile.LastGroupID != nil && *profile.LastGroupID == groupID

	if err := s.groupRepository.Delete(groupID); err != nil {
		return err
	}

	if !wasCurrent {
		return nil
	}
	return s.repointToRemaining(profile, groupID)
}

// RequestJoin moves (user, group) from none or denied to pending. A
// re-request after a denial updates the existing row's timestamp; a
// request while already pending or approved is rejected so the caller can
// tell the user instead of silently doing nothing.
func (s *groupService) RequestJoin(userID, groupID uuid.UUID) (*models.GroupMember, error) {
	existing, err := s.memberRepository.GetOneByGroupAndUser(groupID, userID)
	if err != nil {
		if !errors.Is(err, pg.ErrNoRows) {
			return nil, err
		}

		return s.memberRepository.Create(&models.GroupMember{
			GroupID: groupID,
			UserID:  userID,
			Role:    models.MemberRoleMember,
			Status:  models.MemberStatusPending,
		})
	}

	switch existing.Status {
	case models.MemberStatusPending:
		return nil, ErrAlreadyRequested
	case models.MemberStatusApproved:
		return nil, ErrAlreadyMember
	}

	existing.Status = models.MemberStatusPending
	existing.RequestedAt = time.Now()
	existing.ApprovedAt = nil
	existing.ApprovedBy = nil

	return s.memberRepository.Update(existing)
}

func (s *groupService) Approve(actorID, groupID, userID uuid.UUID) (*models.GroupMember, error) {
	return s.resolveRequest(actorID, groupID, userID, models.MemberStatusApproved)
}

func (s *groupService) Deny(actorID, groupID, userID uuid.UUID) (*models.GroupMember, error) {
	return s.resolveRequest(actorID, groupID, userID, models.MemberStatusDenied)
}

// resolveRequest applies pending -> approved|denied. Only pending rows can
// be resolved; in particular approved never moves back to pending.
func (s *groupService) resolveRequest(actorID, groupID, userID uuid.UUID, status models.MemberStatus) (*models.GroupMember, error) {
	allowed, err := canModerate(s.memberRepository, s.profileRepository, actorID, groupID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrNotAuthorized
	}

	member, err := s.memberRepository.GetOneByGroupAndUser(groupID, userID)
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}

	if member.Status != models.MemberStatusPending {
		return nil, ErrNotAuthorized
	}

	member.Status = status
	if status == models.MemberStatusApproved {
		now := time.Now()
		member.ApprovedAt = &now
		member.ApprovedBy = &actorID
	}

	return s.memberRepository.Update(member)
}

// RemoveMember deletes the membership row, covering both moderation
// removal and a member leaving (actor == user). When the removed
// membership backed the user's current group, a fallback group is
// selected.
func (s *groupService) RemoveMember(actorID, groupID, userID uuid.UUID) error {
	if actorID != userID {
		allowed, err := canModerate(s.memberRepository, s.profileRepository, actorID, groupID)
		if err != nil {
			return err
		}
		if !allowed {
			return ErrNotAuthorized
		}
	}

	member, err := s.memberRepository.GetOneByGroupAndUser(groupID, userID)
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return ErrMembershipNotFound
		}
		return err
	}

	if err := s.memberRepository.Delete(member.ID); err != nil {
		return err
	}

	return s.reselectFallback(userID, groupID)
}

// reselectFallback repoints the user's current group after they lost
// access to lostGroupID: first remaining approved group, or none.
func (s *groupService) reselectFallback(userID, lostGroupID uuid.UUID) error {
	profile, err := s.profileRepository.GetOne(userID)
	if err != nil {
		return err
	}

	if profile.LastGroupID == nil || *profile.LastGroupID != lostGroupID {
		return nil
	}

	return s.repointToRemaining(profile, lostGroupID)
}

// repointToRemaining moves the profile's current group to the first
// approved membership outside lostGroupID, or clears it.
func (s *groupService) repointToRemaining(profile *models.Profile, lostGroupID uuid.UUID) error {
	remaining, err := s.memberRepository.GetManyByUser(profile.ID, models.MemberStatusApproved)
	if err != nil {
		return err
	}

	profile.LastGroupID = nil
	for _, member := range remaining {
		if member.GroupID != lostGroupID {
			id := member.GroupID
			profile.LastGroupID = &id
			break
		}
	}
	profile.UpdatedAt = time.Now()

	_, err = s.profileRepository.Update(profile)
	return err
}

func (s *groupService) Members(actorID, groupID uuid.UUID) ([]*models.GroupMember, error) {
	allowed, err := canVote(s.memberRepository, s.profileRepository, actorID, groupID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrNotAuthorized
	}

	return s.memberRepository.GetManyByGroup(groupID)
}

func (s *groupService) GroupsForUser(userID uuid.UUID) ([]*models.Group, error) {
	return s.groupRepository.GetManyByUser(userID)
}

// SelectGroup persists the user's current group, the server-side
// equivalent of the old client-local storage key. A nil groupID clears it.
func (s *groupService) SelectGroup(userID uuid.UUID, groupID *uuid.UUID) (*models.Profile, error) {
	profile, err := s.profileRepository.GetOne(userID)
	if err != nil {
		return nil, err
	}

	if groupID != nil {
		if _, err := s.groupRepository.GetOne(*groupID); err != nil {
			return nil, err
		}
	}

	profile.LastGroupID = groupID
	profile.UpdatedAt = time.Now()

	return s.profileRepository.Update(profile)
}
