package models

import "time"

type Nominee struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CategoryID   int64     `json:"category_id" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"not null;size:200"`
	Description  *string   `json:"description,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

func (Nominee) TableName() string {
	return "nominees"
}
