package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tender-app/backend/internal/models"
	"github.com/tender-app/backend/internal/testdb"
)

func TestAdminStats(t *testing.T) {
	db := testdb.Setup(t)
	admin := NewAdminService(db)
	recipes := testRecipeService(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice-admin@example.com")
	seedUser(t, db, "bob-admin@example.com")
	recipeID := seedRecipe(t, db, "Soup", "water")
	require.NoError(t, recipes.Like(ctx, alice, recipeID))
	require.NoError(t, db.Create(&models.GroceryItem{UserID: alice, Name: "milk"}).Error)

	stats, err := admin.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Users)
	assert.EqualValues(t, 1, stats.Recipes)
	assert.EqualValues(t, 1, stats.Likes)
	assert.EqualValues(t, 0, stats.Dislikes)
	assert.EqualValues(t, 1, stats.GroceryItems)
}

func TestAdminListUsersCounts(t *testing.T) {
	db := testdb.Setup(t)
	admin := NewAdminService(db)
	recipes := testRecipeService(db)
	ctx := context.Background()

	alice := seedUser(t, db, "counted@example.com")
	recipeID := seedRecipe(t, db, "Soup", "water")
	require.NoError(t, recipes.Like(ctx, alice, recipeID))

	rows, err := admin.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "counted@example.com", rows[0].Email)
	assert.EqualValues(t, 1, rows[0].LikedCount)
}

func TestAdminListLikesJoinsOwners(t *testing.T) {
	db := testdb.Setup(t)
	admin := NewAdminService(db)
	recipes := testRecipeService(db)
	ctx := context.Background()

	alice := seedUser(t, db, "joined@example.com")
	recipeID := seedRecipe(t, db, "Famous Soup", "water")
	require.NoError(t, recipes.Like(ctx, alice, recipeID))

	rows, err := admin.ListLikes(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "joined@example.com", rows[0].UserEmail)
	assert.Equal(t, "Famous Soup", rows[0].Label)
}
