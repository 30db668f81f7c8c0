package types

import "time"

// RecipeResponse is the wire shape for recipes: ingredient text expanded into
// a list and the read-derived like count attached.
type RecipeResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	CookTime         int       `json:"cook_time"`
	Servings         int       `json:"servings"`
	Difficulty       string    `json:"difficulty"`
	Cuisine          string    `json:"cuisine"`
	Emoji            string    `json:"emoji"`
	ImageURL         string    `json:"image_url,omitempty"`
	SourceURL        string    `json:"source_url,omitempty"`
	Ingredients      []string  `json:"ingredients"`
	Instructions     string    `json:"instructions"`
	LikesCount       int64     `json:"likes_count"`
	DietaryOverrides []string  `json:"dietary_overrides"`
	CreatedBy        *uint     `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
}

type CreateRecipeRequest struct {
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description"`
	CookTime         int      `json:"cook_time"`
	Servings         int      `json:"servings"`
	Difficulty       string   `json:"difficulty"`
	Cuisine          string   `json:"cuisine"`
	Emoji            string   `json:"emoji"`
	ImageURL         string   `json:"image_url"`
	SourceURL        string   `json:"source_url"`
	Ingredients      []string `json:"ingredients"`
	Instructions     string   `json:"instructions"`
	DietaryOverrides []string `json:"dietary_overrides"`
}

// UpdateRecipeRequest uses pointers so absent fields leave the stored value
// untouched.
type UpdateRecipeRequest struct {
	Name             *string   `json:"name"`
	Description      *string   `json:"description"`
	CookTime         *int      `json:"cook_time"`
	Servings         *int      `json:"servings"`
	Difficulty       *string   `json:"difficulty"`
	Cuisine          *string   `json:"cuisine"`
	Emoji            *string   `json:"emoji"`
	ImageURL         *string   `json:"image_url"`
	SourceURL        *string   `json:"source_url"`
	Ingredients      *[]string `json:"ingredients"`
	Instructions     *string   `json:"instructions"`
	DietaryOverrides *[]string `json:"dietary_overrides"`
}
