package models

import "time"

// Vote is one user's choice in one category. (user_id, category_id) is unique.
type Vote struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:uq_votes_user_category"`
	NomineeID  int64     `json:"nominee_id" gorm:"not null;index"`
	CategoryID int64     `json:"category_id" gorm:"not null;uniqueIndex:uq_votes_user_category"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Nominee  *Nominee  `json:"nominee,omitempty" gorm:"foreignKey:NomineeID;constraint:OnDelete:CASCADE;"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE;"`
}

func (Vote) TableName() string {
	return "votes"
}
