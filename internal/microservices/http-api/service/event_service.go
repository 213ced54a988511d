package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/repository"
)

type EventPatch struct {
	Title       *string
	Slug        *string
	Description *string
	Location    *string
	StartsAt    *time.Time
	EndsAt      *time.Time
	ClearWindow bool
	ImageURL    *string
	IsPublished *bool
}

type EventService interface {
	// List returns events. Public callers only see published ones.
	List(ctx context.Context, publishedOnly, upcomingOnly bool) ([]models.Event, error)
	GetPublished(ctx context.Context, slug string) (*models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, e *models.Event) error
	Update(ctx context.Context, id int64, patch EventPatch) (*models.Event, error)
	SetImage(ctx context.Context, id int64, url string) (*models.Event, error)
	Delete(ctx context.Context, id int64) error
}

type eventService struct {
	repo repository.EventRepository
	now  func() time.Time
}

func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo, now: time.Now}
}

func (s *eventService) List(ctx context.Context, publishedOnly, upcomingOnly bool) ([]models.Event, error) {
	return s.repo.List(ctx, repository.EventFilter{
		PublishedOnly: publishedOnly,
		UpcomingOnly:  upcomingOnly,
		Now:           s.now(),
	})
}

func (s *eventService) GetPublished(ctx context.Context, slug string) (*models.Event, error) {
	e, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundAs(err, ErrNotFound)
	}
	if !e.IsPublished {
		return nil, ErrNotFound
	}
	return e, nil
}

func (s *eventService) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrNotFound)
	}
	return e, nil
}

func validateWindow(startsAt, endsAt *time.Time) error {
	if startsAt != nil && endsAt != nil && endsAt.Before(*startsAt) {
		return invalid("ends_at must not be before starts_at")
	}
	return nil
}

func (s *eventService) Create(ctx context.Context, e *models.Event) error {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return invalid("title is required")
	}
	if err := validateWindow(e.StartsAt, e.EndsAt); err != nil {
		return err
	}
	slug, err := normalizeSlug(e.Slug, e.Title, "event")
	if err != nil {
		return err
	}
	e.Slug = slug

	if err := s.repo.Create(ctx, e); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrSlugTaken
		}
		return err
	}
	return nil
}

func (s *eventService) Update(ctx context.Context, id int64, patch EventPatch) (*models.Event, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, invalid("title cannot be empty")
		}
		existing.Title = title
	}
	if patch.Slug != nil {
		slug, err := normalizeSlug(*patch.Slug, existing.Title, existing.Slug)
		if err != nil {
			return nil, err
		}
		existing.Slug = slug
	}
	if patch.Description != nil {
		existing.Description = patch.Description
	}
	if patch.Location != nil {
		existing.Location = patch.Location
	}
	if patch.ClearWindow {
		existing.StartsAt, existing.EndsAt = nil, nil
	}
	if patch.StartsAt != nil {
		existing.StartsAt = patch.StartsAt
	}
	if patch.EndsAt != nil {
		existing.EndsAt = patch.EndsAt
	}
	if patch.ImageURL != nil {
		existing.ImageURL = patch.ImageURL
	}
	if patch.IsPublished != nil {
		existing.IsPublished = *patch.IsPublished
	}
	if err := validateWindow(existing.StartsAt, existing.EndsAt); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return existing, nil
}

func (s *eventService) SetImage(ctx context.Context, id int64, url string) (*models.Event, error) {
	return s.Update(ctx, id, EventPatch{ImageURL: &url})
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	return notFoundAs(s.repo.Delete(ctx, id), ErrNotFound)
}
