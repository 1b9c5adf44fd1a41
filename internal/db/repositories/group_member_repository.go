package repositories

import (
	"trip_map_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type groupMemberRepository struct {
	repository
}

type GroupMemberRepository interface {
	Create(request *models.GroupMember) (*models.GroupMember, error)
	Update(request *models.GroupMember) (*models.GroupMember, error)
	Delete(memberID uuid.UUID) error
	GetOneByGroupAndUser(groupID, userID uuid.UUID) (*models.GroupMember, error)
	GetManyByGroup(groupID uuid.UUID) ([]*models.GroupMember, error)
	GetManyByUser(userID uuid.UUID, status ...models.MemberStatus) ([]*models.GroupMember, error)
}

func NewGroupMemberRepository(db *pg.DB) GroupMemberRepository {
	return &groupMemberRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *groupMemberRepository) Create(request *models.GroupMember) (*models.GroupMember, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *groupMemberRepository) Update(request *models.GroupMember) (*models.GroupMember, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	member := &models.GroupMember{}

	err = r.db.Model(member).
		Where("id = ?", request.ID).
		Select()

	return member, err
}

func (r *groupMemberRepository) Delete(memberID uuid.UUID) error {
	_, err := r.db.Model((*models.GroupMember)(nil)).
		Where("id = ?", memberID).
		Delete()

	return err
}

func (r *groupMemberRepository) GetOneByGroupAndUser(groupID, userID uuid.UUID) (*models.GroupMember, error) {
	member := &models.GroupMember{}

	err := r.db.Model(member).
		Where("group_id = ?", groupID).
		Where("user_id = ?", userID).
		Select()

	return member, err
}

func (r *groupMemberRepository) GetManyByGroup(groupID uuid.UUID) ([]*models.GroupMember, error) {
	members := make([]*models.GroupMember, 0)

	err := r.db.Model(&members).
		Where("group_id = ?", groupID).
		Order("requested_at ASC").
		Select()

	return members, err
}

func (r *groupMemberRepository) GetManyByUser(userID uuid.UUID, status ...models.MemberStatus) ([]*models.GroupMember, error) {
	members := make([]*models.GroupMember, 0)

	query := r.db.Model(&members).
		Where("user_id = ?", userID)

	if len(status) > 0 {
		query = query.WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			for _, s := range status {
				q = q.WhereOr("status = ?", s)
			}
			return q, nil
		})
	}

	err := query.
		Order("requested_at ASC").
		Select()

	return members, err
}
