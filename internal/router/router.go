package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tender-app/backend/internal/api"
	"github.com/tender-app/backend/internal/middleware"
	"github.com/tender-app/backend/internal/session"
)

// Handlers bundles everything SetupRouter wires up.
type Handlers struct {
	Auth     *api.AuthHandler
	User     *api.UserHandler
	Recipe   *api.RecipeHandler
	Grocery  *api.GroceryHandler
	Fridge   *api.FridgeHandler
	MealPlan *api.MealPlanHandler
	Admin    *api.AdminHandler
}

// SetupRouter configures the application routes
func SetupRouter(db *gorm.DB, sessions session.Store, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	v1 := router.Group("/api/v1")

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	// Public catalog
	v1.GET("/recipes", h.Recipe.ListRecipes)
	v1.GET("/recipes/:id", h.Recipe.GetRecipe)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.Auth(sessions))
	{
		protected.POST("/auth/logout", h.Auth.Logout)
		protected.GET("/auth/me", h.Auth.Me)

		users := protected.Group("/users")
		{
			users.GET("/profile", h.User.GetProfile)
			users.PUT("/profile", h.User.UpdateProfile)
			users.PUT("/password", h.User.ChangePassword)
			users.DELETE("/account", h.User.DeleteAccount)
		}
		protected.GET("/stats", h.User.Stats)

		recipes := protected.Group("/recipes")
		{
			recipes.GET("/discover", h.Recipe.Discover)
			recipes.GET("/user/liked", h.Recipe.ListLiked)
			recipes.GET("/user/created", h.Recipe.ListCreated)
			recipes.POST("", h.Recipe.CreateRecipe)
			recipes.PUT("/:id", h.Recipe.UpdateRecipe)
			recipes.DELETE("/:id", h.Recipe.DeleteRecipe)
			recipes.POST("/:id/like", h.Recipe.Like)
			recipes.POST("/:id/dislike", h.Recipe.Dislike)
			recipes.DELETE("/:id/like", h.Recipe.Unlike)
		}

		grocery := protected.Group("/grocery")
		{
			grocery.GET("", h.Grocery.List)
			grocery.POST("", h.Grocery.Add)
			grocery.PUT("/:id", h.Grocery.Update)
			grocery.POST("/:id/toggle", h.Grocery.Toggle)
			grocery.DELETE("/:id", h.Grocery.Delete)
			grocery.DELETE("", h.Grocery.Clear)
		}

		fridge := protected.Group("/fridge")
		{
			fridge.GET("", h.Fridge.List)
			fridge.POST("", h.Fridge.Add)
			fridge.POST("/scan", h.Fridge.Scan)
			fridge.DELETE("/:id", h.Fridge.Delete)
			fridge.DELETE("", h.Fridge.Clear)
		}

		mealplan := protected.Group("/mealplan")
		{
			mealplan.GET("", h.MealPlan.List)
			mealplan.POST("", h.MealPlan.Plan)
			mealplan.DELETE("/week", h.MealPlan.ClearWeek)
			mealplan.DELETE("/:date/:mealType", h.MealPlan.Remove)
		}

		// Promote sits outside RequireAdmin so the first admin can
		// bootstrap; the handler enforces admin after that.
		protected.POST("/admin/promote", h.Admin.Promote)

		admin := protected.Group("/admin")
		admin.Use(middleware.RequireAdmin(db))
		{
			admin.GET("/stats", h.Admin.Stats)
			admin.GET("/users", h.Admin.ListUsers)
			admin.GET("/recipes", h.Admin.ListRecipes)
			admin.GET("/likes", h.Admin.ListLikes)
			admin.GET("/dislikes", h.Admin.ListDislikes)
			admin.GET("/grocery", h.Admin.ListGrocery)
			admin.GET("/fridge", h.Admin.ListFridge)
			admin.GET("/mealplans", h.Admin.ListMealPlans)
			admin.POST("/demote", h.Admin.Demote)
		}
	}

	return router
}
