package services

import (
	"errors"
	"trip_map_system/internal/db/repositories"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

// canVote implements the group-scoped voting rule: an approved member may
// vote, and a site admin may vote in any group without a formal
// membership, but both still need a concrete group context.
func canVote(
	memberRepository repositories.GroupMemberRepository,
	profileRepository repositories.ProfileRepository,
	userID, groupID uuid.UUID,
) (bool, error) {
	if groupID == uuid.Nil {
		return false, ErrNoGroupSelected
	}

	profile, err := profileRepository.GetOne(userID)
	if err != nil {
		return false, err
	}
	if profile.IsSiteAdmin {
		return true, nil
	}

	member, err := memberRepository.GetOneByGroupAndUser(groupID, userID)
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return member.IsApproved(), nil
}

// canModerate implements the approve/deny/remove/delete rule: group admin
// or site admin.
func canModerate(
	memberRepository repositories.GroupMemberRepository,
	profileRepository repositories.ProfileRepository,
	userID, groupID uuid.UUID,
) (bool, error) {
	profile, err := profileRepository.GetOne(userID)
	if err != nil {
		return false, err
	}
	if profile.IsSiteAdmin {
		return true, nil
	}

	member, err := memberRepository.GetOneByGroupAndUser(groupID, userID)
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return member.IsAdmin(), nil
}
