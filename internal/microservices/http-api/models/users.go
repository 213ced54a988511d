package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        string         `gorm:"primaryKey;type:uuid" json:"id"`
	Username  string         `gorm:"uniqueIndex;not null" json:"username"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"column:password_hash;not null" json:"-"` // Not show in JSON
	Role      string         `gorm:"default:'user';not null" json:"role"`    // "user" or "admin"
	Metadata  datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	LastLogin *time.Time     `json:"last_login,omitempty"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if len(user.Metadata) == 0 {
		user.Metadata = datatypes.JSON(`{}`)
	}
	return
}

func (User) TableName() string {
	return "users"
}

// ValidRole reports whether role is one of the supported roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
