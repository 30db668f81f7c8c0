package main

import (
	"github.com/sirupsen/logrus"

	"github.com/tender-app/backend/config"
	"github.com/tender-app/backend/internal/api"
	"github.com/tender-app/backend/internal/database"
	"github.com/tender-app/backend/internal/router"
	"github.com/tender-app/backend/internal/server"
	"github.com/tender-app/backend/internal/service"
	"github.com/tender-app/backend/internal/session"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

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

	// Sessions live in redis when it is configured; the in-memory store
	// keeps single-node development working without it.
	var sessions session.Store = session.NewMemoryStore()
	if cfg.RedisAddr != "" {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			logrus.WithError(err).Fatal("failed to connect to redis")
		}
		sessions = session.NewRedisStore(redisClient)
	} else {
		logrus.Warn("REDIS_ADDR not set, sessions will not survive restarts")
	}

	var scanner service.IngredientScanner
	if cfg.OpenAIAPIKey != "" {
		scanner = service.NewOpenAIVision(cfg.OpenAIAPIKey)
	} else {
		logrus.Warn("OPENAI_API_KEY not set, fridge scanning disabled")
	}

	authService := service.NewAuthService(db, sessions)
	profileService := service.NewProfileService(db, sessions)
	recipeService := service.NewRecipeService(db, nil)
	groceryService := service.NewGroceryService(db)
	fridgeService := service.NewFridgeService(db, scanner)
	mealPlanService := service.NewMealPlanService(db)
	adminService := service.NewAdminService(db)

	engine := router.SetupRouter(db, sessions, router.Handlers{
		Auth:     api.NewAuthHandler(authService, profileService),
		User:     api.NewUserHandler(profileService),
		Recipe:   api.NewRecipeHandler(db, recipeService),
		Grocery:  api.NewGroceryHandler(groceryService),
		Fridge:   api.NewFridgeHandler(fridgeService),
		MealPlan: api.NewMealPlanHandler(mealPlanService),
		Admin:    api.NewAdminHandler(adminService, profileService, recipeService),
	})

	srv := server.New(engine)
	if err := srv.Start(cfg.ServerPort); err != nil {
		logrus.WithError(err).Fatal("server shutdown failed")
	}
}
