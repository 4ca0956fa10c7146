package db

import (
	"errors"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/devsquadbr/crm-template/internal/config"
	"github.com/devsquadbr/crm-template/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Customer{},
		&models.SystemSetting{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	bootstrapSettings(db)

	return db
}

// bootstrapSettings guarantees the singleton settings row exists before the
// first request, so reads never race a lazy create.
func bootstrapSettings(db *gorm.DB) {
	var settings models.SystemSetting
	err := db.First(&settings).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("failed to read system settings: %v", err)
	}

	settings = models.SystemSetting{RegistrationEnabled: true}
	if err := db.Create(&settings).Error; err != nil {
		log.Fatalf("failed to seed system settings: %v", err)
	}
}
