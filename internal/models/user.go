package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const RoleAdministrator = "administrator"

type User struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserRole is one role assignment. Role membership is the existence of a row.
type UserRole struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"size:36;index;not null" json:"user_id"`
	Role   string `gorm:"size:50;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
}
