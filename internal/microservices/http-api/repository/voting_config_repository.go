package repository

import (
	"context"

	"awardshub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VotingConfigRepository interface {
	Get(ctx context.Context) (*models.VotingConfig, error)
	Ensure(ctx context.Context) (*models.VotingConfig, error)
	Update(ctx context.Context, cfg *models.VotingConfig) error
}

type votingConfigRepository struct {
	db *gorm.DB
}

func NewVotingConfigRepository(db *gorm.DB) VotingConfigRepository {
	return &votingConfigRepository{db: db}
}

func (r *votingConfigRepository) Get(ctx context.Context) (*models.VotingConfig, error) {
	var cfg models.VotingConfig
	if err := r.db.WithContext(ctx).First(&cfg, models.VotingConfigID).Error; err != nil {
		return nil, wrap("get voting config", err)
	}
	return &cfg, nil
}

// Ensure inserts the default row if missing and returns the stored row.
func (r *votingConfigRepository) Ensure(ctx context.Context) (*models.VotingConfig, error) {
	def := models.DefaultVotingConfig()
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&def).Error
	if err != nil {
		return nil, wrap("ensure voting config", err)
	}
	return r.Get(ctx)
}

func (r *votingConfigRepository) Update(ctx context.Context, cfg *models.VotingConfig) error {
	cfg.ID = models.VotingConfigID
	return wrap("update voting config", r.db.WithContext(ctx).Save(cfg).Error)
}
