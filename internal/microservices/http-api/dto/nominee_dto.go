package dto

import (
	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/service"
)

// CreateNomineeDTO for POST /api/admin/nominees
type CreateNomineeDTO struct {
	CategoryID   int64   `json:"category_id" binding:"required,gt=0"`
	Name         string  `json:"name" binding:"required,max=200"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url"`
	DisplayOrder int     `json:"display_order"`
}

func (d CreateNomineeDTO) ToModel() models.Nominee {
	return models.Nominee{
		CategoryID:   d.CategoryID,
		Name:         d.Name,
		Description:  d.Description,
		ImageURL:     d.ImageURL,
		DisplayOrder: d.DisplayOrder,
	}
}

type UpdateNomineeDTO struct {
	CategoryID   *int64  `json:"category_id" binding:"omitempty,gt=0"`
	Name         *string `json:"name" binding:"omitempty,max=200"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url"`
	DisplayOrder *int    `json:"display_order"`
}

func (d UpdateNomineeDTO) ToPatch() service.NomineePatch {
	return service.NomineePatch{
		CategoryID:   d.CategoryID,
		Name:         d.Name,
		Description:  d.Description,
		ImageURL:     d.ImageURL,
		DisplayOrder: d.DisplayOrder,
	}
}
