package repository

import (
	"context"

	"awardshub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentRepository interface {
	List(ctx context.Context) ([]models.ContentBlock, error)
	GetBySection(ctx context.Context, section string) (*models.ContentBlock, error)
	Upsert(ctx context.Context, block *models.ContentBlock) error
	Delete(ctx context.Context, section string) error
	EnsureDefault(ctx context.Context, block *models.ContentBlock) (*models.ContentBlock, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) List(ctx context.Context) ([]models.ContentBlock, error) {
	var list []models.ContentBlock
	if err := r.db.WithContext(ctx).Order("section asc").Find(&list).Error; err != nil {
		return nil, wrap("list content blocks", err)
	}
	return list, nil
}

func (r *contentRepository) GetBySection(ctx context.Context, section string) (*models.ContentBlock, error) {
	var b models.ContentBlock
	if err := r.db.WithContext(ctx).Where("section = ?", section).First(&b).Error; err != nil {
		return nil, wrap("get content block", err)
	}
	return &b, nil
}

// Upsert writes the block's content, creating the section if it does not exist.
// is_predefined is kept from the existing row.
func (r *contentRepository) Upsert(ctx context.Context, block *models.ContentBlock) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "section"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).
		Create(block).Error
	return wrap("upsert content block", err)
}

func (r *contentRepository) Delete(ctx context.Context, section string) error {
	result := r.db.WithContext(ctx).Where("section = ?", section).Delete(&models.ContentBlock{})
	if result.Error != nil {
		return wrap("delete content block", result.Error)
	}
	if result.RowsAffected == 0 {
		return wrap("delete content block", gorm.ErrRecordNotFound)
	}
	return nil
}

// EnsureDefault inserts block unless its section already exists, then returns the stored row.
// Concurrent callers converge on one row.
func (r *contentRepository) EnsureDefault(ctx context.Context, block *models.ContentBlock) (*models.ContentBlock, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "section"}}, DoNothing: true}).
		Create(block).Error
	if err != nil {
		return nil, wrap("ensure content block", err)
	}
	return r.GetBySection(ctx, block.Section)
}
