package repository

import (
	"context"

	"awardshub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NomineeRepository interface {
	List(ctx context.Context, categoryID int64) ([]models.Nominee, error)
	GetByID(ctx context.Context, id int64) (*models.Nominee, error)
	Create(ctx context.Context, n *models.Nominee) error
	Update(ctx context.Context, n *models.Nominee) error
	Delete(ctx context.Context, id int64) error
	CountVotes(ctx context.Context, id int64) (int64, error)
}

type nomineeRepository struct {
	db *gorm.DB
}

func NewNomineeRepository(db *gorm.DB) NomineeRepository {
	return &nomineeRepository{db: db}
}

// List returns nominees of one category, or of every category when categoryID is 0.
func (r *nomineeRepository) List(ctx context.Context, categoryID int64) ([]models.Nominee, error) {
	var list []models.Nominee
	q := r.db.WithContext(ctx).Order("category_id asc, display_order asc, name asc")
	if categoryID > 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, wrap("list nominees", err)
	}
	return list, nil
}

func (r *nomineeRepository) GetByID(ctx context.Context, id int64) (*models.Nominee, error) {
	var n models.Nominee
	if err := r.db.WithContext(ctx).Preload("Category").First(&n, id).Error; err != nil {
		return nil, wrap("get nominee", err)
	}
	return &n, nil
}

func (r *nomineeRepository) Create(ctx context.Context, n *models.Nominee) error {
	return wrap("create nominee", r.db.WithContext(ctx).Omit(clause.Associations).Create(n).Error)
}

func (r *nomineeRepository) Update(ctx context.Context, n *models.Nominee) error {
	return wrap("update nominee", r.db.WithContext(ctx).Omit(clause.Associations).Save(n).Error)
}

func (r *nomineeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Nominee{}, id)
	if result.Error != nil {
		return wrap("delete nominee", result.Error)
	}
	if result.RowsAffected == 0 {
		return wrap("delete nominee", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *nomineeRepository) CountVotes(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Vote{}).Where("nominee_id = ?", id).Count(&count).Error
	return count, wrap("count nominee votes", err)
}
