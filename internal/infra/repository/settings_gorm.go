package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/devsquadbr/crm-template/internal/domain/account"
	"github.com/devsquadbr/crm-template/internal/models"
)

// SettingsGormStore reads and writes the singleton settings row. The row is
// created at startup by internal/db, so Get never has to create it.
type SettingsGormStore struct {
	db *gorm.DB
}

func NewSettingsGormStore(db *gorm.DB) *SettingsGormStore {
	return &SettingsGormStore{db: db}
}

func (s *SettingsGormStore) Get(ctx context.Context) (*models.SystemSetting, error) {
	var settings models.SystemSetting
	if err := s.db.WithContext(ctx).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *SettingsGormStore) Update(
	ctx context.Context,
	settings *models.SystemSetting,
) error {
	return s.db.WithContext(ctx).Save(settings).Error
}

// Compile-time check
var _ domain.SettingsStore = (*SettingsGormStore)(nil)
