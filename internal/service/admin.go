package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/tender-app/backend/internal/models"
)

// AdminService exposes cross-user listings and aggregate counts for the
// dashboard. Every listing is joined with the owning user's email so rows are
// attributable at a glance.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// AdminUserRow is a dashboard user listing with per-user activity counts.
type AdminUserRow struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsAdmin      bool   `json:"is_admin"`
	LikedCount   int64  `json:"liked_count"`
	GroceryCount int64  `json:"grocery_count"`
	PlanCount    int64  `json:"plan_count"`
}

// OwnedRow tags an arbitrary record with its owner's email.
type OwnedRow struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	UserEmail string `json:"user_email"`
	Label     string `json:"label"`
	Detail    string `json:"detail,omitempty"`
}

// Stats are the dashboard headline numbers.
type Stats struct {
	Users        int64 `json:"users"`
	Recipes      int64 `json:"recipes"`
	Likes        int64 `json:"likes"`
	Dislikes     int64 `json:"dislikes"`
	GroceryItems int64 `json:"grocery_items"`
	FridgeItems  int64 `json:"fridge_items"`
	MealPlans    int64 `json:"meal_plans"`
}

// ListUsers returns every user with derived activity counts.
func (s *AdminService) ListUsers(ctx context.Context) ([]AdminUserRow, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	rows := make([]AdminUserRow, len(users))
	for i, u := range users {
		row := AdminUserRow{
			ID:        u.ID,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			IsAdmin:   u.IsAdmin,
		}
		if err := s.db.WithContext(ctx).Model(&models.RecipeLike{}).
			Where("user_id = ?", u.ID).Count(&row.LikedCount).Error; err != nil {
			return nil, err
		}
		if err := s.db.WithContext(ctx).Model(&models.GroceryItem{}).
			Where("user_id = ?", u.ID).Count(&row.GroceryCount).Error; err != nil {
			return nil, err
		}
		if err := s.db.WithContext(ctx).Model(&models.MealPlanEntry{}).
			Where("user_id = ?", u.ID).Count(&row.PlanCount).Error; err != nil {
			return nil, err
		}
		rows[i] = row
	}
	return rows, nil
}

// ListLikes returns every like with the user's email and the recipe name.
func (s *AdminService) ListLikes(ctx context.Context) ([]OwnedRow, error) {
	var rows []OwnedRow
	err := s.db.WithContext(ctx).Model(&models.RecipeLike{}).
		Select("recipe_likes.id, recipe_likes.user_id, users.email AS user_email, recipes.name AS label").
		Joins("JOIN users ON users.id = recipe_likes.user_id").
		Joins("JOIN recipes ON recipes.id = recipe_likes.recipe_id").
		Order("recipe_likes.id").
		Scan(&rows).Error
	return rows, err
}

// ListDislikes mirrors ListLikes for the dislike table.
func (s *AdminService) ListDislikes(ctx context.Context) ([]OwnedRow, error) {
	var rows []OwnedRow
	err := s.db.WithContext(ctx).Model(&models.RecipeDislike{}).
		Select("recipe_dislikes.id, recipe_dislikes.user_id, users.email AS user_email, recipes.name AS label").
		Joins("JOIN users ON users.id = recipe_dislikes.user_id").
		Joins("JOIN recipes ON recipes.id = recipe_dislikes.recipe_id").
		Order("recipe_dislikes.id").
		Scan(&rows).Error
	return rows, err
}

// ListGrocery returns every grocery item across users.
func (s *AdminService) ListGrocery(ctx context.Context) ([]OwnedRow, error) {
	var rows []OwnedRow
	err := s.db.WithContext(ctx).Model(&models.GroceryItem{}).
		Select("grocery_items.id, grocery_items.user_id, users.email AS user_email, grocery_items.name AS label, grocery_items.category AS detail").
		Joins("JOIN users ON users.id = grocery_items.user_id").
		Order("grocery_items.id").
		Scan(&rows).Error
	return rows, err
}

// ListFridge returns every fridge item across users.
func (s *AdminService) ListFridge(ctx context.Context) ([]OwnedRow, error) {
	var rows []OwnedRow
	err := s.db.WithContext(ctx).Model(&models.FridgeItem{}).
		Select("fridge_items.id, fridge_items.user_id, users.email AS user_email, fridge_items.name AS label, fridge_items.category AS detail").
		Joins("JOIN users ON users.id = fridge_items.user_id").
		Order("fridge_items.id").
		Scan(&rows).Error
	return rows, err
}

// ListMealPlans returns every plan entry with owner email and recipe name.
func (s *AdminService) ListMealPlans(ctx context.Context) ([]OwnedRow, error) {
	var rows []OwnedRow
	err := s.db.WithContext(ctx).Model(&models.MealPlanEntry{}).
		Select("meal_plan_entries.id, meal_plan_entries.user_id, users.email AS user_email, recipes.name AS label, meal_plan_entries.plan_date || ' ' || meal_plan_entries.meal_type AS detail").
		Joins("JOIN users ON users.id = meal_plan_entries.user_id").
		Joins("JOIN recipes ON recipes.id = meal_plan_entries.recipe_id").
		Order("meal_plan_entries.plan_date, meal_plan_entries.meal_type").
		Scan(&rows).Error
	return rows, err
}

// GetStats counts every table for the dashboard header.
func (s *AdminService) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &stats.Users},
		{&models.Recipe{}, &stats.Recipes},
		{&models.RecipeLike{}, &stats.Likes},
		{&models.RecipeDislike{}, &stats.Dislikes},
		{&models.GroceryItem{}, &stats.GroceryItems},
		{&models.FridgeItem{}, &stats.FridgeItems},
		{&models.MealPlanEntry{}, &stats.MealPlans},
	}
	for _, c := range counts {
		if err := s.db.WithContext(ctx).Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}
