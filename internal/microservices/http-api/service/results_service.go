package service

import (
	"context"

	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/repository"
)

type ResultsService interface {
	// Tally returns vote counts. Non-admin callers only get them once results are
	// public, and only for active categories.
	Tally(ctx context.Context, categoryID int64, asAdmin bool) ([]models.NomineeTally, error)
}

type resultsService struct {
	results repository.ResultsRepository
	config  repository.VotingConfigRepository
}

func NewResultsService(results repository.ResultsRepository, config repository.VotingConfigRepository) ResultsService {
	return &resultsService{results: results, config: config}
}

func (s *resultsService) Tally(ctx context.Context, categoryID int64, asAdmin bool) ([]models.NomineeTally, error) {
	if !asAdmin {
		cfg, err := s.config.Ensure(ctx)
		if err != nil {
			return nil, err
		}
		if !cfg.ShowResults {
			return nil, ErrResultsHidden
		}
	}
	return s.results.Tally(ctx, categoryID, !asAdmin)
}
