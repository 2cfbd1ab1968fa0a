package database

import (
	"errors"
	"fmt"
	"log"

	"rental-backoffice/internal/config"
	"rental-backoffice/internal/models"
	"rental-backoffice/internal/util"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Session{},
		&models.Employee{},
		&models.Tenant{},
		&models.Rent{},
		&models.Sanction{},
		&models.GcashAccount{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// SeedAdmin creates the configured admin account when no admin exists yet.
// It is a no-op once any admin is present.
func SeedAdmin(db *gorm.DB, cfg config.AdminConfig, bcryptCost int) error {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}
	if cfg.Username == "" || cfg.Password == "" {
		return errors.New("admin.username and admin.password are required to seed the first admin")
	}
	hash, err := util.HashPassword(cfg.Password, bcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := models.Admin{
		Username:     cfg.Username,
		PasswordHash: hash,
		DisplayName:  cfg.DisplayName,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Printf("seeded admin account %q", admin.Username)
	return nil
}
