package repository

import (
	"context"

	"awardshub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepository interface {
	Create(ctx context.Context, v *models.Vote) error
	Update(ctx context.Context, v *models.Vote) error
	GetByUserAndCategory(ctx context.Context, userID string, categoryID int64) (*models.Vote, error)
	ListByUser(ctx context.Context, userID string) ([]models.Vote, error)
	DeleteByUserAndCategory(ctx context.Context, userID string, categoryID int64) error
	Count(ctx context.Context) (int64, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Create inserts a vote. A second vote in the same category fails with ErrDuplicate.
func (r *voteRepository) Create(ctx context.Context, v *models.Vote) error {
	return wrap("create vote", r.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error)
}

func (r *voteRepository) Update(ctx context.Context, v *models.Vote) error {
	return wrap("update vote", r.db.WithContext(ctx).Omit(clause.Associations).Save(v).Error)
}

func (r *voteRepository) GetByUserAndCategory(ctx context.Context, userID string, categoryID int64) (*models.Vote, error) {
	var v models.Vote
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		First(&v).Error
	if err != nil {
		return nil, wrap("get vote", err)
	}
	return &v, nil
}

func (r *voteRepository) ListByUser(ctx context.Context, userID string) ([]models.Vote, error) {
	var list []models.Vote
	err := r.db.WithContext(ctx).
		Preload("Nominee").
		Preload("Category").
		Where("user_id = ?", userID).
		Order("category_id asc").
		Find(&list).Error
	if err != nil {
		return nil, wrap("list votes", err)
	}
	return list, nil
}

func (r *voteRepository) DeleteByUserAndCategory(ctx context.Context, userID string, categoryID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Delete(&models.Vote{})
	if result.Error != nil {
		return wrap("delete vote", result.Error)
	}
	if result.RowsAffected == 0 {
		return wrap("delete vote", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *voteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Vote{}).Count(&count).Error
	return count, wrap("count votes", err)
}
