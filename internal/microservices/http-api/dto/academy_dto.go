package dto

import (
	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/service"
)

type CreateGenreDTO struct {
	Name         string  `json:"name" binding:"required,max=200"`
	Slug         string  `json:"slug" binding:"omitempty,max=200"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"display_order"`
}

func (d CreateGenreDTO) ToModel() models.ArtisticGenre {
	return models.ArtisticGenre{
		Name:         d.Name,
		Slug:         d.Slug,
		Description:  d.Description,
		DisplayOrder: d.DisplayOrder,
	}
}

type UpdateGenreDTO struct {
	Name         *string `json:"name" binding:"omitempty,max=200"`
	Slug         *string `json:"slug" binding:"omitempty,max=200"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"display_order"`
}

func (d UpdateGenreDTO) ToPatch() service.GenrePatch {
	return service.GenrePatch{
		Name:         d.Name,
		Slug:         d.Slug,
		Description:  d.Description,
		DisplayOrder: d.DisplayOrder,
	}
}

type CreateMemberDTO struct {
	GenreID      *int64  `json:"genre_id"`
	Name         string  `json:"name" binding:"required,max=200"`
	Title        *string `json:"title" binding:"omitempty,max=200"`
	Bio          *string `json:"bio"`
	PhotoURL     *string `json:"photo_url"`
	DisplayOrder int     `json:"display_order"`
}

func (d CreateMemberDTO) ToModel() models.AcademyMember {
	return models.AcademyMember{
		GenreID:      d.GenreID,
		Name:         d.Name,
		Title:        d.Title,
		Bio:          d.Bio,
		PhotoURL:     d.PhotoURL,
		DisplayOrder: d.DisplayOrder,
	}
}

// UpdateMemberDTO: genre_id 0 removes the member from its genre.
type UpdateMemberDTO struct {
	GenreID      *int64  `json:"genre_id" binding:"omitempty,gte=0"`
	Name         *string `json:"name" binding:"omitempty,max=200"`
	Title        *string `json:"title" binding:"omitempty,max=200"`
	Bio          *string `json:"bio"`
	PhotoURL     *string `json:"photo_url"`
	DisplayOrder *int    `json:"display_order"`
}

func (d UpdateMemberDTO) ToPatch() service.MemberPatch {
	return service.MemberPatch{
		GenreID:      d.GenreID,
		Name:         d.Name,
		Title:        d.Title,
		Bio:          d.Bio,
		PhotoURL:     d.PhotoURL,
		DisplayOrder: d.DisplayOrder,
	}
}
