package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// StringList stores a string slice as a JSON text column so it works on both
// postgres and sqlite.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Recipe stores ingredients as raw separator text (comma or newline), not a
// parsed list, so the stored form round-trips exactly. DietaryOverrides names
// restriction labels this recipe is excused from during discovery filtering.
type Recipe struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	Name             string     `gorm:"size:255;not null" json:"name"`
	Description      string     `gorm:"type:text" json:"description"`
	CookTime         int        `json:"cook_time"`
	Servings         int        `gorm:"default:4" json:"servings"`
	Difficulty       string     `gorm:"size:20;default:'medium'" json:"difficulty"`
	Cuisine          string     `gorm:"size:50" json:"cuisine"`
	Emoji            string     `gorm:"size:16;default:'🍽️'" json:"emoji"`
	ImageURL         string     `gorm:"size:255" json:"image_url"`
	SourceURL        string     `gorm:"size:255" json:"source_url"`
	Ingredients      string     `gorm:"type:text" json:"-"`
	Instructions     string     `gorm:"type:text" json:"instructions"`
	DietaryOverrides StringList `gorm:"type:text" json:"dietary_overrides"`
	CreatedBy        *uint      `json:"created_by"`
}

// RecipeLike records that a user swiped right on a recipe. At most one row
// per (user, recipe) pair; mutually exclusive with RecipeDislike.
type RecipeLike struct {
	ID       uint      `gorm:"primarykey" json:"id"`
	UserID   uint      `gorm:"not null;uniqueIndex:idx_like_user_recipe" json:"user_id"`
	RecipeID uint      `gorm:"not null;uniqueIndex:idx_like_user_recipe" json:"recipe_id"`
	LikedAt  time.Time `gorm:"autoCreateTime" json:"liked_at"`
}

type RecipeDislike struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_dislike_user_recipe" json:"user_id"`
	RecipeID   uint      `gorm:"not null;uniqueIndex:idx_dislike_user_recipe" json:"recipe_id"`
	DislikedAt time.Time `gorm:"autoCreateTime" json:"disliked_at"`
}
