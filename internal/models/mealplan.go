package models

// MealPlanEntry holds at most one recipe per (user, date, meal-type) slot.
// PlanDate is an ISO date string so slot keys compare lexicographically.
type MealPlanEntry struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	UserID   uint   `gorm:"not null;uniqueIndex:idx_plan_slot" json:"user_id"`
	RecipeID uint   `gorm:"not null" json:"recipe_id"`
	PlanDate string `gorm:"size:10;not null;uniqueIndex:idx_plan_slot" json:"plan_date"`
	MealType string `gorm:"size:20;not null;uniqueIndex:idx_plan_slot" json:"meal_type"`
}
