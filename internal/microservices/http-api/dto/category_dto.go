package dto

import (
	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/service"
)

// CreateCategoryDTO for POST /api/admin/categories
type CreateCategoryDTO struct {
	Name         string  `json:"name" binding:"required,max=200"`
	Slug         string  `json:"slug" binding:"omitempty,max=200"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

func (d CreateCategoryDTO) ToModel() models.Category {
	active := true
	if d.IsActive != nil {
		active = *d.IsActive
	}
	return models.Category{
		Name:         d.Name,
		Slug:         d.Slug,
		Description:  d.Description,
		DisplayOrder: d.DisplayOrder,
		IsActive:     active,
	}
}

// UpdateCategoryDTO for PUT /api/admin/categories/:id; omitted fields are unchanged.
type UpdateCategoryDTO struct {
	Name         *string `json:"name" binding:"omitempty,max=200"`
	Slug         *string `json:"slug" binding:"omitempty,max=200"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

func (d UpdateCategoryDTO) ToPatch() service.CategoryPatch {
	return service.CategoryPatch{
		Name:         d.Name,
		Slug:         d.Slug,
		Description:  d.Description,
		DisplayOrder: d.DisplayOrder,
		IsActive:     d.IsActive,
	}
}
