package repository

import (
	"context"

	"awardshub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.CategoryWithCount, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string, withNominees bool) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id int64) error
	CountNominees(ctx context.Context, id int64) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// List returns categories with their nominee counts, ordered for display.
func (r *categoryRepository) List(ctx context.Context, activeOnly bool) ([]models.CategoryWithCount, error) {
	var list []models.CategoryWithCount
	q := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Select("categories.*, COUNT(nominees.id) AS nominee_count").
		Joins("LEFT JOIN nominees ON nominees.category_id = categories.id").
		Group("categories.id").
		Order("categories.display_order asc, categories.name asc")
	if activeOnly {
		q = q.Where("categories.is_active = ?", true)
	}
	if err := q.Scan(&list).Error; err != nil {
		return nil, wrap("list categories", err)
	}
	return list, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, wrap("get category", err)
	}
	return &c, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string, withNominees bool) (*models.Category, error) {
	var c models.Category
	q := r.db.WithContext(ctx)
	if withNominees {
		q = q.Preload("Nominees", func(db *gorm.DB) *gorm.DB {
			return db.Order("nominees.display_order asc, nominees.name asc")
		})
	}
	if err := q.Where("slug = ?", slug).First(&c).Error; err != nil {
		return nil, wrap("get category by slug", err)
	}
	return &c, nil
}

func (r *categoryRepository) Create(ctx context.Context, c *models.Category) error {
	// GORM will populate c.ID and timestamps
	return wrap("create category", r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error)
}

func (r *categoryRepository) Update(ctx context.Context, c *models.Category) error {
	return wrap("update category", r.db.WithContext(ctx).Omit(clause.Associations).Save(c).Error)
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Category{}, id)
	if result.Error != nil {
		return wrap("delete category", result.Error)
	}
	if result.RowsAffected == 0 {
		return wrap("delete category", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *categoryRepository) CountNominees(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Nominee{}).Where("category_id = ?", id).Count(&count).Error
	return count, wrap("count nominees", err)
}
