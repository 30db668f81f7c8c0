package types

type AddItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
}

type UpdateGroceryItemRequest struct {
	Name     *string `json:"name"`
	Quantity *int    `json:"quantity"`
	Checked  *bool   `json:"checked"`
}

type AddMealPlanRequest struct {
	RecipeID uint   `json:"recipe_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	MealType string `json:"meal_type" binding:"required"`
}

// IngredientGuess is one item identified by the vision collaborator when
// scanning a fridge photo.
type IngredientGuess struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
}
