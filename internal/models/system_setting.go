package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemSetting is a singleton row, bootstrapped at startup by internal/db.
type SystemSetting struct {
	ID                     string `gorm:"primaryKey;size:36" json:"id"`
	EmailAPIKey            string `gorm:"size:255" json:"email_api_key"`
	SystemEmailAddress     string `gorm:"size:100" json:"system_email_address"`
	RegistrationEnabled    bool   `gorm:"default:true" json:"registration_enabled"`
	EmailDomainRestriction string `gorm:"size:255" json:"email_domain_restriction"`
}

func (s *SystemSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
