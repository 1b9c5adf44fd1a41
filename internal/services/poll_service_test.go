package services

import (
	"testing"
	"trip_map_system/internal/db/models"
	mock_repositories "trip_map_system/internal/db/repositories/mocks"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type pollServiceMocks struct {
	pollRepo     *mock_repositories.MockPollRepository
	pollVoteRepo *mock_repositories.MockPollVoteRepository
	memberRepo   *mock_repositories.MockGroupMemberRepository
	profileRepo  *mock_repositories.MockProfileRepository
}

func newPollService(ctrl *gomock.Controller) (PollService, pollServiceMocks) {
	mocks := pollServiceMocks{
		pollRepo:     mock_repositories.NewMockPollRepository(ctrl),
		pollVoteRepo: mock_repositories.NewMockPollVoteRepository(ctrl),
		memberRepo:   mock_repositories.NewMockGroupMemberRepository(ctrl),
		profileRepo:  mock_repositories.NewMockProfileRepository(ctrl),
	}

	service := NewPollService(mocks.pollRepo, mocks.pollVoteRepo, mocks.memberRepo, mocks.profileRepo, zap.NewNop().Sugar())
	return service, mocks
}

func (m pollServiceMocks) expectApprovedMember(userID, groupID uuid.UUID) {
	m.profileRepo.EXPECT().GetOne(userID).Return(&models.Profile{ID: userID}, nil)
	m.memberRepo.EXPECT().GetOneByGroupAndUser(groupID, userID).Return(&models.GroupMember{
		GroupID: groupID,
		UserID:  userID,
		Status:  models.MemberStatusApproved,
	}, nil)
}

func TestPollCreate_AppendsAtEndOfSortOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newPollService(ctrl)

	userID := uuid.New()
	groupID := uuid.New()

	mocks.expectApprovedMember(userID, groupID)
	mocks.pollRepo.EXPECT().GetManyByGroup(groupID).Return([]*models.Poll{{}, {}}, nil)
	mocks.pollRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(poll *models.Poll) (*models.Poll, error) {
		assert.Equal(t, "Rent a car or take the train?", poll.Question)
		assert.Equal(t, 2, poll.SortOrder)
		assert.Equal(t, userID, poll.CreatedBy)
		return poll, nil
	})

	poll, err := service.Create(userID, groupID, "Rent a car or take the train?", "")
	assert.NoError(t, err)
	assert.Equal(t, 2, poll.SortOrder)
}

func TestPollCreate_NonMemberRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newPollService(ctrl)

	userID := uuid.New()
	groupID := uuid.New()

	mocks.profileRepo.EXPECT().GetOne(userID).Return(&models.Profile{ID: userID}, nil)
	mocks.memberRepo.EXPECT().GetOneByGroupAndUser(groupID, userID).Return(nil, pg.ErrNoRows)

	_, err := service.Create(userID, groupID, "question", "")
	assert.ErrorIs(t, err, ErrVotingNotPermitted)
}

func TestPollDelete_ByCreator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newPollService(ctrl)

	userID := uuid.New()
	groupID := uuid.New()
	pollID := uuid.New()

	mocks.pollRepo.EXPECT().GetOne(pollID).Return(&models.Poll{ID: pollID, GroupID: groupID, CreatedBy: userID}, nil)
	mocks.profileRepo.EXPECT().GetOne(userID).Return(&models.Profile{ID: userID}, nil)
	mocks.memberRepo.EXPECT().GetOneByGroupAndUser(groupID, userID).Return(&models.GroupMember{
		Role:   models.MemberRoleMember,
		Status: models.MemberStatusApproved,
	}, nil)
	mocks.pollRepo.EXPECT().Delete(pollID).Return(nil)

	assert.NoError(t, service.Delete(userID, pollID))
}

func TestPollDelete_OtherMemberRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newPollService(ctrl)

	userID := uuid.New()
	groupID := uuid.New()
	pollID := uuid.New()

	mocks.pollRepo.EXPECT().GetOne(pollID).Return(&models.Poll{ID: pollID, GroupID: groupID, CreatedBy: uuid.New()}, nil)
	mocks.profileRepo.EXPECT().GetOne(userID).Return(&models.Profile{ID: userID}, nil)
	mocks.memberRepo.EXPECT().GetOneByGroupAndUser(groupID, userID).Return(&models.GroupMember{
		Role:   models.MemberRoleMember,
		Status: models.MemberStatusApproved,
	}, nil)

	assert.ErrorIs(t, service.Delete(userID, pollID), ErrNotAuthorized)
}

func TestPollReorder_RewritesSortOrderSkippingForeignIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newPollService(ctrl)

	userID := uuid.New()
	groupID := uuid.New()
	firstID := uuid.New()
	secondID := uuid.New()

	mocks.expectApprovedMember(userID, groupID)
	mocks.pollRepo.EXPECT().GetManyByGroup(groupID).Return([]*models.Poll{
		{ID: firstID, GroupID: groupID},
		{ID: secondID, GroupID: groupID},
	}, nil)
	mocks.pollRepo.EXPECT().UpdateSortOrder(secondID, 0).Return(nil)
	mocks.pollRepo.EXPECT().UpdateSortOrder(firstID, 1).Return(nil)

	// an id from another group slips in between and is ignored
	err := service.Reorder(userID, groupID, []uuid.UUID{secondID, uuid.New(), firstID})
	assert.NoError(t, err)
}

func TestPollVote_CreateAndToggleOff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newPollService(ctrl)

	userID := uuid.New()
	groupID := uuid.New()
	pollID := uuid.New()

	mocks.pollRepo.EXPECT().GetOne(pollID).Return(&models.Poll{ID: pollID, GroupID: groupID}, nil)
	mocks.expectApprovedMember(userID, groupID)
	mocks.pollVoteRepo.EXPECT().GetOneByUserPollGroup(userID, pollID, groupID).Return(nil, pg.ErrNoRows)
	mocks.pollVoteRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(vote *models.PollVote) (*models.PollVote, error) {
		assert.Equal(t, models.VoteTierHighlyInterested, vote.Tier)
		return vote, nil
	})

	outcome, err := service.Vote(userID, pollID, models.VoteTierHighlyInterested)
	assert.NoError(t, err)
	assert.Equal(t, VoteOutcomeCreated, outcome)

	existing := &models.PollVote{ID: uuid.New(), UserID: userID, PollID: pollID, GroupID: groupID, Tier: models.VoteTierHighlyInterested}

	mocks.pollRepo.EXPECT().GetOne(pollID).Return(&models.Poll{ID: pollID, GroupID: groupID}, nil)
	mocks.expectApprovedMember(userID, groupID)
	mocks.pollVoteRepo.EXPECT().GetOneByUserPollGroup(userID, pollID, groupID).Return(existing, nil)
	mocks.pollVoteRepo.EXPECT().Delete(existing.ID).Return(nil)

	outcome, err = service.Vote(userID, pollID, models.VoteTierHighlyInterested)
	assert.NoError(t, err)
	assert.Equal(t, VoteOutcomeRemoved, outcome)
}

func TestPollVote_InvalidTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newPollService(ctrl)

	_, err := service.Vote(uuid.New(), uuid.New(), "maybe")
	assert.ErrorIs(t, err, ErrInvalidTier)
}

func TestGroupPolls_TalliesInSortOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newPollService(ctrl)

	userID := uuid.New()
	groupID := uuid.New()
	firstID := uuid.New()
	secondID := uuid.New()

	mocks.pollRepo.EXPECT().GetManyByGroup(groupID).Return([]*models.Poll{
		{ID: firstID, Question: "first", GroupID: groupID, SortOrder: 0},
		{ID: secondID, Question: "second", GroupID: groupID, SortOrder: 1},
	}, nil)
	mocks.pollVoteRepo.EXPECT().GetManyByGroup(groupID).Return([]*models.PollVote{
		{UserID: userID, PollID: firstID, GroupID: groupID, Tier: models.VoteTierHighlyInterested},
		{UserID: uuid.New(), PollID: firstID, GroupID: groupID, Tier: models.VoteTierNotInterested},
	}, nil)

	polls, err := service.GroupPolls(userID, groupID)
	assert.NoError(t, err)
	assert.Len(t, polls, 2)

	assert.Equal(t, "first", polls[0].Poll.Question)
	assert.Equal(t, models.Tally{Positive: 1, Total: 2}, polls[0].Tally)
	assert.Equal(t, models.VoteTierHighlyInterested, *polls[0].UserTier)

	assert.Equal(t, models.Tally{}, polls[1].Tally)
	assert.Nil(t, polls[1].UserTier)
}

func TestGroupPolls_RequiresGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newPollService(ctrl)

	_, err := service.GroupPolls(uuid.New(), uuid.Nil)
	assert.ErrorIs(t, err, ErrNoGroupSelected)
}
