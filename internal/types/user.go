package types

import "time"

type UserResponse struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	CookingSkill  string    `json:"cooking_skill"`
	HouseholdSize string    `json:"household_size"`
	WeeklyBudget  string    `json:"weekly_budget"`
	MealsPerWeek  string    `json:"meals_per_week"`
	Dietary       []string  `json:"dietary"`
	Cuisines      []string  `json:"cuisines"`
	LikedCount    int64     `json:"liked_count"`
	GroceryCount  int64     `json:"grocery_count"`
	IsAdmin       bool      `json:"is_admin"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Email         string   `json:"email" binding:"required,email"`
	Password      string   `json:"password" binding:"required,min=6"`
	FirstName     string   `json:"first_name" binding:"required"`
	LastName      string   `json:"last_name" binding:"required"`
	CookingSkill  string   `json:"cooking_skill"`
	HouseholdSize string   `json:"household_size"`
	WeeklyBudget  string   `json:"weekly_budget"`
	MealsPerWeek  string   `json:"meals_per_week"`
	Dietary       []string `json:"dietary"`
	Cuisines      []string `json:"cuisines"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName     *string   `json:"first_name"`
	LastName      *string   `json:"last_name"`
	CookingSkill  *string   `json:"cooking_skill"`
	HouseholdSize *string   `json:"household_size"`
	WeeklyBudget  *string   `json:"weekly_budget"`
	MealsPerWeek  *string   `json:"meals_per_week"`
	Dietary       *[]string `json:"dietary"`
	Cuisines      *[]string `json:"cuisines"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}
