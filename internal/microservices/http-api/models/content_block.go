package models

import (
	"time"

	"gorm.io/datatypes"
)

// ContentBlock is a JSON blob keyed by section name, rendered into static page text.
type ContentBlock struct {
	ID           int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Section      string         `json:"section" gorm:"uniqueIndex;not null;size:100"`
	Content      datatypes.JSON `json:"content" gorm:"type:jsonb;not null"`
	IsPredefined bool           `json:"is_predefined" gorm:"not null;default:false"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (ContentBlock) TableName() string {
	return "content_blocks"
}
