package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"awardshub/internal/events"
	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/repository"
)

// CategoryPatch carries the fields an update may change; nil fields are left alone.
type CategoryPatch struct {
	Name         *string
	Slug         *string
	Description  *string
	DisplayOrder *int
	IsActive     *bool
}

type CategoryService interface {
	List(ctx context.Context, activeOnly bool) ([]models.CategoryWithCount, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, c *models.Category, actorID string) error
	Update(ctx context.Context, id int64, patch CategoryPatch, actorID string) (*models.Category, error)
	Delete(ctx context.Context, id int64, actorID string) error
}

type categoryService struct {
	repo repository.CategoryRepository
	notifier
}

func NewCategoryService(repo repository.CategoryRepository, pub events.Publisher, logger *slog.Logger) CategoryService {
	return &categoryService{repo: repo, notifier: notifier{pub: pub, logger: logger}}
}

func (s *categoryService) List(ctx context.Context, activeOnly bool) ([]models.CategoryWithCount, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrCategoryNotFound)
	}
	return c, nil
}

// GetBySlug returns the category with its nominees.
func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	c, err := s.repo.GetBySlug(ctx, slug, true)
	if err != nil {
		return nil, notFoundAs(err, ErrCategoryNotFound)
	}
	return c, nil
}

func (s *categoryService) Create(ctx context.Context, c *models.Category, actorID string) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return invalid("name is required")
	}
	slug, err := normalizeSlug(c.Slug, c.Name, "category")
	if err != nil {
		return err
	}
	c.Slug = slug

	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrSlugTaken
		}
		return err
	}

	s.emit(ctx, events.New(events.CategoryCreated, categoryKey(c.ID), actorID, map[string]any{
		"slug": c.Slug,
		"name": c.Name,
	}))
	return nil
}

func (s *categoryService) Update(ctx context.Context, id int64, patch CategoryPatch, actorID string) (*models.Category, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, invalid("name cannot be empty")
		}
		existing.Name = name
	}
	if patch.Slug != nil {
		slug, err := normalizeSlug(*patch.Slug, existing.Name, existing.Slug)
		if err != nil {
			return nil, err
		}
		existing.Slug = slug
	}
	if patch.Description != nil {
		existing.Description = patch.Description
	}
	if patch.DisplayOrder != nil {
		existing.DisplayOrder = *patch.DisplayOrder
	}
	if patch.IsActive != nil {
		existing.IsActive = *patch.IsActive
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	s.emit(ctx, events.New(events.CategoryUpdated, categoryKey(id), actorID, map[string]any{"slug": existing.Slug}))
	return existing, nil
}

// Delete removes a category. Categories that still have nominees are kept.
func (s *categoryService) Delete(ctx context.Context, id int64, actorID string) error {
	count, err := s.repo.CountNominees(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryHasNominees
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		// a nominee inserted since the count still blocks the delete
		if errors.Is(err, repository.ErrInUse) {
			return ErrCategoryHasNominees
		}
		return notFoundAs(err, ErrCategoryNotFound)
	}

	s.emit(ctx, events.New(events.CategoryDeleted, categoryKey(id), actorID, nil))
	return nil
}

func categoryKey(id int64) string {
	return fmt.Sprintf("category:%d", id)
}
