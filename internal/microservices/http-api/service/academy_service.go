package service

import (
	"context"
	"errors"
	"strings"

	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/repository"
)

type GenrePatch struct {
	Name         *string
	Slug         *string
	Description  *string
	DisplayOrder *int
}

// MemberPatch updates a member. A GenreID pointing at 0 detaches the member from its genre.
type MemberPatch struct {
	GenreID      *int64
	Name         *string
	Title        *string
	Bio          *string
	PhotoURL     *string
	DisplayOrder *int
}

type AcademyService interface {
	ListGenres(ctx context.Context, withMembers bool) ([]models.ArtisticGenre, error)
	GetGenre(ctx context.Context, slug string) (*models.ArtisticGenre, error)
	CreateGenre(ctx context.Context, g *models.ArtisticGenre) error
	UpdateGenre(ctx context.Context, id int64, patch GenrePatch) (*models.ArtisticGenre, error)
	DeleteGenre(ctx context.Context, id int64) error

	ListMembers(ctx context.Context, genreID int64) ([]models.AcademyMember, error)
	GetMember(ctx context.Context, id int64) (*models.AcademyMember, error)
	CreateMember(ctx context.Context, m *models.AcademyMember) error
	UpdateMember(ctx context.Context, id int64, patch MemberPatch) (*models.AcademyMember, error)
	SetMemberPhoto(ctx context.Context, id int64, url string) (*models.AcademyMember, error)
	DeleteMember(ctx context.Context, id int64) error
}

type academyService struct {
	genres  repository.GenreRepository
	members repository.MemberRepository
}

func NewAcademyService(genres repository.GenreRepository, members repository.MemberRepository) AcademyService {
	return &academyService{genres: genres, members: members}
}

func (s *academyService) ListGenres(ctx context.Context, withMembers bool) ([]models.ArtisticGenre, error) {
	return s.genres.List(ctx, withMembers)
}

func (s *academyService) GetGenre(ctx context.Context, slug string) (*models.ArtisticGenre, error) {
	g, err := s.genres.GetBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundAs(err, ErrGenreNotFound)
	}
	return g, nil
}

func (s *academyService) CreateGenre(ctx context.Context, g *models.ArtisticGenre) error {
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		return invalid("name is required")
	}
	slug, err := normalizeSlug(g.Slug, g.Name, "genre")
	if err != nil {
		return err
	}
	g.Slug = slug

	if err := s.genres.Create(ctx, g); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrSlugTaken
		}
		return err
	}
	return nil
}

func (s *academyService) UpdateGenre(ctx context.Context, id int64, patch GenrePatch) (*models.ArtisticGenre, error) {
	existing, err := s.genres.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrGenreNotFound)
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

	if err := s.genres.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return existing, nil
}

func (s *academyService) DeleteGenre(ctx context.Context, id int64) error {
	count, err := s.genres.CountMembers(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrGenreHasMembers
	}
	if err := s.genres.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInUse) {
			return ErrGenreHasMembers
		}
		return notFoundAs(err, ErrGenreNotFound)
	}
	return nil
}

func (s *academyService) ListMembers(ctx context.Context, genreID int64) ([]models.AcademyMember, error) {
	return s.members.List(ctx, genreID)
}

func (s *academyService) GetMember(ctx context.Context, id int64) (*models.AcademyMember, error) {
	m, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrNotFound)
	}
	return m, nil
}

func (s *academyService) requireGenre(ctx context.Context, id int64) error {
	if _, err := s.genres.GetByID(ctx, id); err != nil {
		return notFoundAs(err, ErrGenreNotFound)
	}
	return nil
}

func (s *academyService) CreateMember(ctx context.Context, m *models.AcademyMember) error {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return invalid("name is required")
	}
	if m.GenreID != nil {
		if *m.GenreID == 0 {
			m.GenreID = nil
		} else if err := s.requireGenre(ctx, *m.GenreID); err != nil {
			return err
		}
	}
	return s.members.Create(ctx, m)
}

func (s *academyService) UpdateMember(ctx context.Context, id int64, patch MemberPatch) (*models.AcademyMember, error) {
	existing, err := s.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.GenreID != nil {
		if *patch.GenreID == 0 {
			existing.GenreID = nil
		} else {
			if err := s.requireGenre(ctx, *patch.GenreID); err != nil {
				return nil, err
			}
			genreID := *patch.GenreID
			existing.GenreID = &genreID
		}
		existing.Genre = nil
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, invalid("name cannot be empty")
		}
		existing.Name = name
	}
	if patch.Title != nil {
		existing.Title = patch.Title
	}
	if patch.Bio != nil {
		existing.Bio = patch.Bio
	}
	if patch.PhotoURL != nil {
		existing.PhotoURL = patch.PhotoURL
	}
	if patch.DisplayOrder != nil {
		existing.DisplayOrder = *patch.DisplayOrder
	}

	if err := s.members.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *academyService) SetMemberPhoto(ctx context.Context, id int64, url string) (*models.AcademyMember, error) {
	return s.UpdateMember(ctx, id, MemberPatch{PhotoURL: &url})
}

func (s *academyService) DeleteMember(ctx context.Context, id int64) error {
	return notFoundAs(s.members.Delete(ctx, id), ErrNotFound)
}
