package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tender-app/backend/internal/models"
	"github.com/tender-app/backend/internal/types"
)

// ErrBadPlanDate flags a date that is not in YYYY-MM-DD form.
var ErrBadPlanDate = errors.New("plan date must be YYYY-MM-DD")

// MealPlanService assigns recipes to (date, meal-type) slots. Each slot holds
// at most one recipe; planning over an occupied slot replaces it.
type MealPlanService struct {
	db *gorm.DB
}

func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

// PlanEntry is a meal-plan row joined with the planned recipe's display
// fields.
type PlanEntry struct {
	ID         uint   `json:"id"`
	RecipeID   uint   `json:"recipe_id"`
	PlanDate   string `json:"plan_date"`
	MealType   string `json:"meal_type"`
	RecipeName string `json:"recipe_name"`
	Emoji      string `json:"emoji"`
	CookTime   int    `json:"cook_time"`
}

// List returns the user's plan ordered by date then meal type.
func (s *MealPlanService) List(ctx context.Context, userID uint) ([]PlanEntry, error) {
	var entries []PlanEntry
	err := s.db.WithContext(ctx).Model(&models.MealPlanEntry{}).
		Select("meal_plan_entries.id, meal_plan_entries.recipe_id, meal_plan_entries.plan_date, meal_plan_entries.meal_type, recipes.name AS recipe_name, recipes.emoji, recipes.cook_time").
		Joins("JOIN recipes ON recipes.id = meal_plan_entries.recipe_id").
		Where("meal_plan_entries.user_id = ?", userID).
		Order("meal_plan_entries.plan_date, meal_plan_entries.meal_type").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Plan places a recipe in a slot, replacing whatever was there.
func (s *MealPlanService) Plan(ctx context.Context, userID uint, req *types.AddMealPlanRequest) (*models.MealPlanEntry, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrBadPlanDate
	}

	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, req.RecipeID).Error; err != nil {
		return nil, err
	}

	entry := models.MealPlanEntry{
		UserID:   userID,
		RecipeID: req.RecipeID,
		PlanDate: req.Date,
		MealType: req.MealType,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "plan_date"}, {Name: "meal_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"recipe_id"}),
	}).Create(&entry).Error
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND plan_date = ? AND meal_type = ?", userID, req.Date, req.MealType).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Remove clears one slot. An empty slot is a no-op.
func (s *MealPlanService) Remove(ctx context.Context, userID uint, date, mealType string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND plan_date = ? AND meal_type = ?", userID, date, mealType).
		Delete(&models.MealPlanEntry{}).Error
}

// ClearWeek removes every entry in the seven days starting at start. ISO
// dates compare lexicographically, so this is a range delete on the string
// column.
func (s *MealPlanService) ClearWeek(ctx context.Context, userID uint, start string) error {
	startDay, err := time.Parse("2006-01-02", start)
	if err != nil {
		return ErrBadPlanDate
	}
	end := startDay.AddDate(0, 0, 7).Format("2006-01-02")

	return s.db.WithContext(ctx).
		Where("user_id = ? AND plan_date >= ? AND plan_date < ?", userID, start, end).
		Delete(&models.MealPlanEntry{}).Error
}
