package models

import "time"

type Category struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"not null;size:200"`
	Slug         string    `json:"slug" gorm:"uniqueIndex;not null;size:200"`
	Description  *string   `json:"description,omitempty"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0"`
	IsActive     bool      `json:"is_active" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// association
	Nominees []Nominee `json:"nominees,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT;"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryWithCount is a category row plus its nominee count, computed at read time.
type CategoryWithCount struct {
	Category
	NomineeCount int64 `json:"nominee_count" gorm:"column:nominee_count"`
}
