package repositories

import (
	"trip_map_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type groupRepository struct {
	repository
}

type GroupRepository interface {
	Create(request *models.Group) (*models.Group, error)
	Delete(groupID uuid.UUID) error
	GetOne(groupID uuid.UUID) (*models.Group, error)
	GetManyByUser(userID uuid.UUID) ([]*models.Group, error)
}

func NewGroupRepository(db *pg.DB) GroupRepository {
	return &groupRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *groupRepository) Create(request *models.Group) (*models.Group, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

// Delete removes the group row; memberships, votes and polls go with it
// through the schema's ON DELETE CASCADE rules.
func (r *groupRepository) Delete(groupID uuid.UUID) error {
	_, err := r.db.Model((*models.Group)(nil)).
		Where("id = ?", groupID).
		Delete()

	return err
}

func (r *groupRepository) GetOne(groupID uuid.UUID) (*models.Group, error) {
	group := &models.Group{}

	err := r.db.Model(group).
		Relation("Members").
		Where("\"group\".id = ?", groupID).
		Select()

	return group, err
}

func (r *groupRepository) GetManyByUser(userID uuid.UUID) ([]*models.Group, error) {
	groups := make([]*models.Group, 0)

	err := r.db.Model(&groups).
		Join("JOIN group_members AS gm ON gm.group_id = \"group\".id").
		Where("gm.user_id = ?", userID).
		Order("created_at ASC").
		Select()

	return groups, err
}
