package main

import (
	"github.com/sirupsen/logrus"

	"github.com/tender-app/backend/config"
	"github.com/tender-app/backend/internal/database"
)

// Seeds the starter recipe catalog and exits. The API server seeds on boot
// as well; this exists for provisioning a database ahead of time.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	db, err := database.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	if err := database.SeedRecipes(db); err != nil {
		logrus.WithError(err).Fatal("failed to seed recipes")
	}
	logrus.Info("seeding complete")
}
