package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tender-app/backend/internal/models"
	"github.com/tender-app/backend/internal/session"
	"github.com/tender-app/backend/internal/testdb"
	"github.com/tender-app/backend/internal/types"
)

func registerRequest(email string) *types.RegisterRequest {
	return &types.RegisterRequest{
		Email:     email,
		Password:  "secret123",
		FirstName: "Test",
		LastName:  "User",
		Dietary:   []string{"vegetarian"},
		Cuisines:  []string{"italian", "mexican"},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := testdb.Setup(t)
	sessions := session.NewMemoryStore()
	svc := NewAuthService(db, sessions)
	ctx := context.Background()

	userID, token, err := svc.Register(ctx, registerRequest("new@example.com"))
	require.NoError(t, err)
	require.NotZero(t, userID)

	resolved, err := sessions.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, resolved)

	loginID, loginToken, err := svc.Login(ctx, "new@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, userID, loginID)
	assert.NotEqual(t, token, loginToken)
}

func TestRegisterStoresProfileLabels(t *testing.T) {
	db := testdb.Setup(t)
	svc := NewAuthService(db, session.NewMemoryStore())
	profile := NewProfileService(db, session.NewMemoryStore())
	ctx := context.Background()

	userID, _, err := svc.Register(ctx, registerRequest("labels@example.com"))
	require.NoError(t, err)

	user, err := profile.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"vegetarian"}, user.Dietary)
	assert.ElementsMatch(t, []string{"italian", "mexican"}, user.Cuisines)
	assert.Equal(t, "intermediate", user.CookingSkill)
	assert.False(t, user.IsAdmin)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testdb.Setup(t)
	svc := NewAuthService(db, session.NewMemoryStore())
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerRequest("dup@example.com"))
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, registerRequest("DUP@example.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	db := testdb.Setup(t)
	svc := NewAuthService(db, session.NewMemoryStore())
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerRequest("locked@example.com"))
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "locked@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRevokesSession(t *testing.T) {
	db := testdb.Setup(t)
	sessions := session.NewMemoryStore()
	svc := NewAuthService(db, sessions)
	ctx := context.Background()

	_, token, err := svc.Register(ctx, registerRequest("bye@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	_, err = sessions.Resolve(ctx, token)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestChangePassword(t *testing.T) {
	db := testdb.Setup(t)
	sessions := session.NewMemoryStore()
	auth := NewAuthService(db, sessions)
	profile := NewProfileService(db, sessions)
	ctx := context.Background()

	userID, _, err := auth.Register(ctx, registerRequest("pw@example.com"))
	require.NoError(t, err)

	err = profile.ChangePassword(ctx, userID, "wrongpass", "newsecret")
	assert.ErrorIs(t, err, ErrWrongPassword)

	require.NoError(t, profile.ChangePassword(ctx, userID, "secret123", "newsecret"))

	_, _, err = auth.Login(ctx, "pw@example.com", "newsecret")
	assert.NoError(t, err)
}

func TestDeleteAccountRemovesEverything(t *testing.T) {
	db := testdb.Setup(t)
	sessions := session.NewMemoryStore()
	auth := NewAuthService(db, sessions)
	profile := NewProfileService(db, sessions)
	recipes := testRecipeService(db)
	ctx := context.Background()

	userID, token, err := auth.Register(ctx, registerRequest("gone@example.com"))
	require.NoError(t, err)

	recipeID := seedRecipe(t, db, "Soup", "water")
	require.NoError(t, recipes.Like(ctx, userID, recipeID))
	require.NoError(t, db.Create(&models.GroceryItem{UserID: userID, Name: "milk"}).Error)

	require.NoError(t, profile.DeleteAccount(ctx, userID))

	var users, likes, items int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", userID).Count(&users).Error)
	require.NoError(t, db.Model(&models.RecipeLike{}).Where("user_id = ?", userID).Count(&likes).Error)
	require.NoError(t, db.Model(&models.GroceryItem{}).Where("user_id = ?", userID).Count(&items).Error)
	assert.Zero(t, users)
	assert.Zero(t, likes)
	assert.Zero(t, items)

	_, err = sessions.Resolve(ctx, token)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestSetAdminByEmail(t *testing.T) {
	db := testdb.Setup(t)
	sessions := session.NewMemoryStore()
	auth := NewAuthService(db, sessions)
	profile := NewProfileService(db, sessions)
	ctx := context.Background()

	_, _, err := auth.Register(ctx, registerRequest("boss@example.com"))
	require.NoError(t, err)

	hasAdmins, err := profile.HasAdmins(ctx)
	require.NoError(t, err)
	assert.False(t, hasAdmins)

	user, err := profile.SetAdmin(ctx, "Boss@Example.com", true)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)

	hasAdmins, err = profile.HasAdmins(ctx)
	require.NoError(t, err)
	assert.True(t, hasAdmins)

	user, err = profile.SetAdmin(ctx, "boss@example.com", false)
	require.NoError(t, err)
	assert.False(t, user.IsAdmin)
}
