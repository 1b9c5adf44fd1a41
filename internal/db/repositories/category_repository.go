package repositories

import (
	"trip_map_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type categoryRepository struct {
	repository
}

type CategoryRepository interface {
	Create(request *models.Category) (*models.Category, error)
	GetOneByName(name string) (*models.Category, error)
	GetMany() ([]*models.Category, error)
}

func NewCategoryRepository(db *pg.DB) CategoryRepository {
	return &categoryRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *categoryRepository) Create(request *models.Category) (*models.Category, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *categoryRepository) GetOneByName(name string) (*models.Category, error) {
	category := &models.Category{}

	err := r.db.Model(category).
		Where("lower(name) = lower(?)", name).
		Select()

	return category, err
}

func (r *categoryRepository) GetMany() ([]*models.Category, error) {
	categories := make([]*models.Category, 0)

	err := r.db.Model(&categories).
		Order("name ASC").
		Select()

	return categories, err
}
