package dto

import (
	"time"

	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/service"
)

type CreateEventDTO struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Slug        string     `json:"slug" binding:"omitempty,max=200"`
	Description *string    `json:"description"`
	Location    *string    `json:"location" binding:"omitempty,max=255"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	ImageURL    *string    `json:"image_url"`
	IsPublished bool       `json:"is_published"`
}

func (d CreateEventDTO) ToModel() models.Event {
	return models.Event{
		Title:       d.Title,
		Slug:        d.Slug,
		Description: d.Description,
		Location:    d.Location,
		StartsAt:    d.StartsAt,
		EndsAt:      d.EndsAt,
		ImageURL:    d.ImageURL,
		IsPublished: d.IsPublished,
	}
}

// UpdateEventDTO for PUT /api/admin/events/:id. clear_window removes both
// dates before starts_at/ends_at are applied.
type UpdateEventDTO struct {
	Title       *string    `json:"title" binding:"omitempty,max=200"`
	Slug        *string    `json:"slug" binding:"omitempty,max=200"`
	Description *string    `json:"description"`
	Location    *string    `json:"location" binding:"omitempty,max=255"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	ClearWindow bool       `json:"clear_window"`
	ImageURL    *string    `json:"image_url"`
	IsPublished *bool      `json:"is_published"`
}

func (d UpdateEventDTO) ToPatch() service.EventPatch {
	return service.EventPatch{
		Title:       d.Title,
		Slug:        d.Slug,
		Description: d.Description,
		Location:    d.Location,
		StartsAt:    d.StartsAt,
		EndsAt:      d.EndsAt,
		ClearWindow: d.ClearWindow,
		ImageURL:    d.ImageURL,
		IsPublished: d.IsPublished,
	}
}
