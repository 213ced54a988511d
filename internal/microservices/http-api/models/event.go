package models

import "time"

type Event struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string     `json:"title" gorm:"not null;size:200"`
	Slug        string     `json:"slug" gorm:"uniqueIndex;not null;size:200"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty" gorm:"size:255"`
	StartsAt    *time.Time `json:"starts_at,omitempty" gorm:"index"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	IsPublished bool       `json:"is_published" gorm:"not null;default:false"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Event) TableName() string {
	return "events"
}
