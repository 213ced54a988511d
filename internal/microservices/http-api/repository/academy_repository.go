package repository

import (
	"context"

	"awardshub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GenreRepository interface {
	List(ctx context.Context, withMembers bool) ([]models.ArtisticGenre, error)
	GetByID(ctx context.Context, id int64) (*models.ArtisticGenre, error)
	GetBySlug(ctx context.Context, slug string) (*models.ArtisticGenre, error)
	Create(ctx context.Context, g *models.ArtisticGenre) error
	Update(ctx context.Context, g *models.ArtisticGenre) error
	Delete(ctx context.Context, id int64) error
	CountMembers(ctx context.Context, id int64) (int64, error)
}

type MemberRepository interface {
	List(ctx context.Context, genreID int64) ([]models.AcademyMember, error)
	GetByID(ctx context.Context, id int64) (*models.AcademyMember, error)
	Create(ctx context.Context, m *models.AcademyMember) error
	Update(ctx context.Context, m *models.AcademyMember) error
	Delete(ctx context.Context, id int64) error
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func orderMembers(db *gorm.DB) *gorm.DB {
	return db.Order("academy_members.display_order asc, academy_members.name asc")
}

func (r *genreRepository) List(ctx context.Context, withMembers bool) ([]models.ArtisticGenre, error) {
	var list []models.ArtisticGenre
	q := r.db.WithContext(ctx).Order("display_order asc, name asc")
	if withMembers {
		q = q.Preload("Members", orderMembers)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, wrap("list genres", err)
	}
	return list, nil
}

func (r *genreRepository) GetByID(ctx context.Context, id int64) (*models.ArtisticGenre, error) {
	var g models.ArtisticGenre
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, wrap("get genre", err)
	}
	return &g, nil
}

func (r *genreRepository) GetBySlug(ctx context.Context, slug string) (*models.ArtisticGenre, error) {
	var g models.ArtisticGenre
	err := r.db.WithContext(ctx).
		Preload("Members", orderMembers).
		Where("slug = ?", slug).
		First(&g).Error
	if err != nil {
		return nil, wrap("get genre by slug", err)
	}
	return &g, nil
}

func (r *genreRepository) Create(ctx context.Context, g *models.ArtisticGenre) error {
	return wrap("create genre", r.db.WithContext(ctx).Omit(clause.Associations).Create(g).Error)
}

func (r *genreRepository) Update(ctx context.Context, g *models.ArtisticGenre) error {
	return wrap("update genre", r.db.WithContext(ctx).Omit(clause.Associations).Save(g).Error)
}

func (r *genreRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ArtisticGenre{}, id)
	if result.Error != nil {
		return wrap("delete genre", result.Error)
	}
	if result.RowsAffected == 0 {
		return wrap("delete genre", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *genreRepository) CountMembers(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AcademyMember{}).Where("genre_id = ?", id).Count(&count).Error
	return count, wrap("count members", err)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// List returns members of one genre, or all members when genreID is 0.
func (r *memberRepository) List(ctx context.Context, genreID int64) ([]models.AcademyMember, error) {
	var list []models.AcademyMember
	q := orderMembers(r.db.WithContext(ctx))
	if genreID > 0 {
		q = q.Where("genre_id = ?", genreID)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, wrap("list members", err)
	}
	return list, nil
}

func (r *memberRepository) GetByID(ctx context.Context, id int64) (*models.AcademyMember, error) {
	var m models.AcademyMember
	if err := r.db.WithContext(ctx).Preload("Genre").First(&m, id).Error; err != nil {
		return nil, wrap("get member", err)
	}
	return &m, nil
}

func (r *memberRepository) Create(ctx context.Context, m *models.AcademyMember) error {
	return wrap("create member", r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error)
}

func (r *memberRepository) Update(ctx context.Context, m *models.AcademyMember) error {
	return wrap("update member", r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error)
}

func (r *memberRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.AcademyMember{}, id)
	if result.Error != nil {
		return wrap("delete member", result.Error)
	}
	if result.RowsAffected == 0 {
		return wrap("delete member", gorm.ErrRecordNotFound)
	}
	return nil
}
