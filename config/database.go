package config

import (
	"fmt"
	"log"

	"github.com/mahmoudsultan/trivia-api/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultCategories is the category set inserted into an empty database
var DefaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

func dialector(env Environment) (gorm.Dialector, error) {
	switch env.DBDriver {
	case "postgres":
		return postgres.Open(env.DBURL), nil
	case "mysql":
		return mysql.Open(env.DBURL), nil
	case "sqlite":
		return sqlite.Open(env.DBURL), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", env.DBDriver)
	}
}

func logLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// Connect opens the database named by env and migrates the schema.
func Connect(env Environment) (*gorm.DB, error) {
	d, err := dialector(env)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel(env.DBLogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		return nil, fmt.Errorf("failed to auto migrate database: %w", err)
	}

	if env.SeedCategories {
		if err := SeedCategories(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// SeedCategories inserts DefaultCategories when the categories table is empty
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories := make([]models.Category, 0, len(DefaultCategories))
	for _, label := range DefaultCategories {
		categories = append(categories, models.Category{Type: label})
	}
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	log.Printf("SeedCategories: inserted %d categories", len(categories))
	return nil
}
