package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tender-app/backend/internal/models"
	"github.com/tender-app/backend/internal/testdb"
	"github.com/tender-app/backend/internal/types"
)

func TestPlanReplacesOccupiedSlot(t *testing.T) {
	db := testdb.Setup(t)
	svc := NewMealPlanService(db)
	ctx := context.Background()

	userID := seedUser(t, db, "planner@example.com")
	soup := seedRecipe(t, db, "Soup", "water")
	stew := seedRecipe(t, db, "Stew", "water")

	_, err := svc.Plan(ctx, userID, &types.AddMealPlanRequest{RecipeID: soup, Date: "2026-09-01", MealType: "dinner"})
	require.NoError(t, err)
	entry, err := svc.Plan(ctx, userID, &types.AddMealPlanRequest{RecipeID: stew, Date: "2026-09-01", MealType: "dinner"})
	require.NoError(t, err)
	assert.Equal(t, stew, entry.RecipeID)

	var count int64
	require.NoError(t, db.Model(&models.MealPlanEntry{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPlanRejectsBadDate(t *testing.T) {
	db := testdb.Setup(t)
	svc := NewMealPlanService(db)

	userID := seedUser(t, db, "baddate@example.com")
	recipeID := seedRecipe(t, db, "Soup", "water")

	_, err := svc.Plan(context.Background(), userID, &types.AddMealPlanRequest{
		RecipeID: recipeID, Date: "09/01/2026", MealType: "dinner",
	})
	assert.ErrorIs(t, err, ErrBadPlanDate)
}

func TestPlanRejectsMissingRecipe(t *testing.T) {
	db := testdb.Setup(t)
	svc := NewMealPlanService(db)

	userID := seedUser(t, db, "norecipe@example.com")
	_, err := svc.Plan(context.Background(), userID, &types.AddMealPlanRequest{
		RecipeID: 9999, Date: "2026-09-01", MealType: "dinner",
	})
	assert.Error(t, err)
}

func TestListJoinsRecipeFields(t *testing.T) {
	db := testdb.Setup(t)
	svc := NewMealPlanService(db)
	ctx := context.Background()

	userID := seedUser(t, db, "joiner@example.com")
	recipeID := seedRecipe(t, db, "Pancakes", "flour,milk,eggs")

	_, err := svc.Plan(ctx, userID, &types.AddMealPlanRequest{RecipeID: recipeID, Date: "2026-09-02", MealType: "breakfast"})
	require.NoError(t, err)

	entries, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Pancakes", entries[0].RecipeName)
	assert.Equal(t, "2026-09-02", entries[0].PlanDate)
}

func TestClearWeekDeletesSevenDayRange(t *testing.T) {
	db := testdb.Setup(t)
	svc := NewMealPlanService(db)
	ctx := context.Background()

	userID := seedUser(t, db, "weekly@example.com")
	recipeID := seedRecipe(t, db, "Soup", "water")

	for _, date := range []string{"2026-08-31", "2026-09-01", "2026-09-07", "2026-09-08"} {
		_, err := svc.Plan(ctx, userID, &types.AddMealPlanRequest{RecipeID: recipeID, Date: date, MealType: "dinner"})
		require.NoError(t, err)
	}

	require.NoError(t, svc.ClearWeek(ctx, userID, "2026-09-01"))

	entries, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2026-08-31", entries[0].PlanDate)
	assert.Equal(t, "2026-09-08", entries[1].PlanDate)
}

func TestRemoveSlot(t *testing.T) {
	db := testdb.Setup(t)
	svc := NewMealPlanService(db)
	ctx := context.Background()

	userID := seedUser(t, db, "remover@example.com")
	recipeID := seedRecipe(t, db, "Soup", "water")

	_, err := svc.Plan(ctx, userID, &types.AddMealPlanRequest{RecipeID: recipeID, Date: "2026-09-03", MealType: "lunch"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, userID, "2026-09-03", "lunch"))
	require.NoError(t, svc.Remove(ctx, userID, "2026-09-03", "lunch"))

	entries, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
