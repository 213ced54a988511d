package repository

import (
	"context"

	"gorm.io/gorm"
)

// StatsRepository counts rows of any model for the admin dashboard.
type StatsRepository interface {
	Count(ctx context.Context, model any) (int64, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Count(ctx context.Context, model any) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(model).Count(&count).Error
	return count, wrap("count rows", err)
}
