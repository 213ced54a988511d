package models

import "time"

type ArtisticGenre struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"not null;size:200"`
	Slug         string    `json:"slug" gorm:"uniqueIndex;not null;size:200"`
	Description  *string   `json:"description,omitempty"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Members []AcademyMember `json:"members,omitempty" gorm:"foreignKey:GenreID"`
}

func (ArtisticGenre) TableName() string {
	return "artistic_genres"
}

type AcademyMember struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	GenreID      *int64    `json:"genre_id,omitempty" gorm:"index"`
	Name         string    `json:"name" gorm:"not null;size:200"`
	Title        *string   `json:"title,omitempty" gorm:"size:200"`
	Bio          *string   `json:"bio,omitempty"`
	PhotoURL     *string   `json:"photo_url,omitempty"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Genre *ArtisticGenre `json:"genre,omitempty" gorm:"foreignKey:GenreID"`
}

func (AcademyMember) TableName() string {
	return "academy_members"
}
