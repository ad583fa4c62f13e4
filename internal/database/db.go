package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/zaqqye/navodaya_web/internal/config"
	"github.com/zaqqye/navodaya_web/internal/models"
	"github.com/zaqqye/navodaya_web/internal/repository"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AdminUser{},
		&models.CompanyInfo{},
		&models.Service{},
		&models.Project{},
		&models.ContactMessage{},
	)
}

// Open returns the store selected by DB_DRIVER, migrated and ready to seed.
func Open(cfg *config.Config) (repository.Store, error) {
	switch cfg.DBDriver {
	case "memory":
		return repository.NewMemoryStore(), nil
	case "postgres", "":
		db, err := Connect(cfg)
		if err != nil {
			return nil, fmt.Errorf("database connection failed: %w", err)
		}
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("database migration failed: %w", err)
		}
		return repository.NewGormStore(db), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}
