package service

import (
	"context"
	"strings"

	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/repository"
)

type NomineePatch struct {
	CategoryID   *int64
	Name         *string
	Description  *string
	ImageURL     *string
	DisplayOrder *int
}

type NomineeService interface {
	List(ctx context.Context, categoryID int64) ([]models.Nominee, error)
	GetByID(ctx context.Context, id int64) (*models.Nominee, error)
	Create(ctx context.Context, n *models.Nominee) error
	Update(ctx context.Context, id int64, patch NomineePatch) (*models.Nominee, error)
	SetImage(ctx context.Context, id int64, url string) (*models.Nominee, error)
	Delete(ctx context.Context, id int64) error
}

type nomineeService struct {
	repo       repository.NomineeRepository
	categories repository.CategoryRepository
}

func NewNomineeService(repo repository.NomineeRepository, categories repository.CategoryRepository) NomineeService {
	return &nomineeService{repo: repo, categories: categories}
}

func (s *nomineeService) List(ctx context.Context, categoryID int64) ([]models.Nominee, error) {
	return s.repo.List(ctx, categoryID)
}

func (s *nomineeService) GetByID(ctx context.Context, id int64) (*models.Nominee, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrNotFound)
	}
	return n, nil
}

func (s *nomineeService) requireCategory(ctx context.Context, id int64) error {
	if id <= 0 {
		return invalid("category_id is required")
	}
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		return notFoundAs(err, ErrCategoryNotFound)
	}
	return nil
}

func (s *nomineeService) Create(ctx context.Context, n *models.Nominee) error {
	n.Name = strings.TrimSpace(n.Name)
	if n.Name == "" {
		return invalid("name is required")
	}
	if err := s.requireCategory(ctx, n.CategoryID); err != nil {
		return err
	}
	return s.repo.Create(ctx, n)
}

func (s *nomineeService) Update(ctx context.Context, id int64, patch NomineePatch) (*models.Nominee, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.CategoryID != nil && *patch.CategoryID != existing.CategoryID {
		if err := s.requireCategory(ctx, *patch.CategoryID); err != nil {
			return nil, err
		}
		// votes carry the nominee's category, so a voted nominee stays put
		votes, err := s.repo.CountVotes(ctx, id)
		if err != nil {
			return nil, err
		}
		if votes > 0 {
			return nil, ErrNomineeHasVotes
		}
		existing.CategoryID = *patch.CategoryID
		existing.Category = nil
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, invalid("name cannot be empty")
		}
		existing.Name = name
	}
	if patch.Description != nil {
		existing.Description = patch.Description
	}
	if patch.ImageURL != nil {
		existing.ImageURL = patch.ImageURL
	}
	if patch.DisplayOrder != nil {
		existing.DisplayOrder = *patch.DisplayOrder
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *nomineeService) SetImage(ctx context.Context, id int64, url string) (*models.Nominee, error) {
	return s.Update(ctx, id, NomineePatch{ImageURL: &url})
}

func (s *nomineeService) Delete(ctx context.Context, id int64) error {
	return notFoundAs(s.repo.Delete(ctx, id), ErrNotFound)
}
