package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tender-app/backend/config"
	"github.com/tender-app/backend/internal/models"
)

// New opens the postgres database and runs migrations.
func New(cfg *config.Config) (*gorm.DB, error) {
	logrus.WithFields(logrus.Fields{
		"host": cfg.DBHost,
		"port": cfg.DBPort,
		"db":   cfg.DBName,
	}).Info("connecting to database")

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	logrus.Info("database ready")
	return db, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.DietaryRestriction{},
		&models.CuisinePreference{},
		&models.Recipe{},
		&models.RecipeLike{},
		&models.RecipeDislike{},
		&models.GroceryItem{},
		&models.FridgeItem{},
		&models.MealPlanEntry{},
	)
}
