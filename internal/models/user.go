package models

import (
	"time"
)

type User struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string    `gorm:"not null" json:"-"`
	FirstName     string    `gorm:"size:100;not null" json:"first_name"`
	LastName      string    `gorm:"size:100;not null" json:"last_name"`
	CookingSkill  string    `gorm:"size:50;default:'intermediate'" json:"cooking_skill"`
	HouseholdSize string    `gorm:"size:20;default:'2'" json:"household_size"`
	WeeklyBudget  string    `gorm:"size:50;default:'moderate'" json:"weekly_budget"`
	MealsPerWeek  string    `gorm:"size:20;default:'4-7'" json:"meals_per_week"`
	IsAdmin       bool      `gorm:"default:false" json:"is_admin"`
}

// DietaryRestriction is one restriction label attached to a user. Labels come
// from the fixed vocabulary in the dietary package; at most one row per
// (user, label) pair.
type DietaryRestriction struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_user_dietary" json:"user_id"`
	Label  string `gorm:"size:50;not null;uniqueIndex:idx_user_dietary" json:"label"`
}

type CuisinePreference struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	UserID  uint   `gorm:"not null;uniqueIndex:idx_user_cuisine" json:"user_id"`
	Cuisine string `gorm:"size:50;not null;uniqueIndex:idx_user_cuisine" json:"cuisine"`
}
