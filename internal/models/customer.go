package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GenderNotSpecified = "not_specified"
	GenderMale         = "male"
	GenderFemale       = "female"
)

type Customer struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	OwnerID string `gorm:"size:36;index;not null" json:"owner_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:100" json:"state"`
	Postal  string `gorm:"size:20" json:"postal"`

	BirthDate *time.Time `json:"birth_date"`
	Notes     string     `gorm:"type:text" json:"notes"`
	Gender    string     `gorm:"size:20;default:'not_specified'" json:"gender"`
	Active    bool       `json:"active"`

	ImageBase64 string `gorm:"type:text" json:"image_base64"`

	CreatedOn time.Time  `json:"created_on"`
	UpdateOn  *time.Time `json:"update_on"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedOn.IsZero() {
		c.CreatedOn = time.Now().UTC()
	}
	return nil
}
