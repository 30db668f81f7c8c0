package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tender-app/backend/internal/api"
	"github.com/tender-app/backend/internal/models"
	"github.com/tender-app/backend/internal/router"
	"github.com/tender-app/backend/internal/service"
	"github.com/tender-app/backend/internal/session"
	"github.com/tender-app/backend/internal/testdb"
)

type testApp struct {
	engine *gin.Engine
	db     *gorm.DB
}

func setupApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.Setup(t)
	sessions := session.NewMemoryStore()

	authService := service.NewAuthService(db, sessions)
	profileService := service.NewProfileService(db, sessions)
	recipeService := service.NewRecipeService(db, rand.New(rand.NewSource(1)))
	groceryService := service.NewGroceryService(db)
	fridgeService := service.NewFridgeService(db, nil)
	mealPlanService := service.NewMealPlanService(db)
	adminService := service.NewAdminService(db)

	engine := router.SetupRouter(db, sessions, router.Handlers{
		Auth:     api.NewAuthHandler(authService, profileService),
		User:     api.NewUserHandler(profileService),
		Recipe:   api.NewRecipeHandler(db, recipeService),
		Grocery:  api.NewGroceryHandler(groceryService),
		Fridge:   api.NewFridgeHandler(fridgeService),
		MealPlan: api.NewMealPlanHandler(mealPlanService),
		Admin:    api.NewAdminHandler(adminService, profileService, recipeService),
	})
	return &testApp{engine: engine, db: db}
}

func (a *testApp) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) register(t *testing.T, email string) string {
	t.Helper()
	rec := a.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":      email,
		"password":   "secret123",
		"first_name": "Test",
		"last_name":  "User",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterLoginMe(t *testing.T) {
	app := setupApp(t)
	token := app.register(t, "flow@example.com")

	rec := app.request(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var user struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "flow@example.com", user.Email)

	rec = app.request(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "flow@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app := setupApp(t)

	rec := app.request(t, http.MethodGet, "/api/v1/users/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/v1/users/profile", "sess_bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	app := setupApp(t)
	token := app.register(t, "logout@example.com")

	rec := app.request(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRecipeSwipeFlow(t *testing.T) {
	app := setupApp(t)
	token := app.register(t, "swipe@example.com")

	rec := app.request(t, http.MethodPost, "/api/v1/recipes", token, gin.H{
		"name":        "Test Soup",
		"ingredients": []string{"water", "salt"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = app.request(t, http.MethodPost, fmt.Sprintf("/api/v1/recipes/%d/like", created.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/v1/recipes/user/liked", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var liked struct {
		Recipes []struct {
			ID         uint  `json:"id"`
			LikesCount int64 `json:"likes_count"`
		} `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &liked))
	require.Len(t, liked.Recipes, 1)
	assert.Equal(t, created.ID, liked.Recipes[0].ID)
	assert.EqualValues(t, 1, liked.Recipes[0].LikesCount)

	// Liked recipes disappear from discovery.
	rec = app.request(t, http.MethodGet, "/api/v1/recipes/discover", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var feed struct {
		Recipes []struct {
			ID uint `json:"id"`
		} `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	assert.Empty(t, feed.Recipes)
}

func TestDiscoverCoercesMalformedLimit(t *testing.T) {
	app := setupApp(t)
	token := app.register(t, "limits@example.com")

	for i := 0; i < 15; i++ {
		rec := app.request(t, http.MethodPost, "/api/v1/recipes", token, gin.H{
			"name": "Filler", "ingredients": []string{"water"},
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := app.request(t, http.MethodGet, "/api/v1/recipes/discover?limit=abc", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var feed struct {
		Recipes []json.RawMessage `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	assert.Len(t, feed.Recipes, 10)
}

func TestSwipeOnMissingRecipeIsNoOp(t *testing.T) {
	app := setupApp(t)
	token := app.register(t, "ghost@example.com")

	rec := app.request(t, http.MethodPost, "/api/v1/recipes/999/like", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = app.request(t, http.MethodPost, "/api/v1/recipes/999/dislike", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.request(t, http.MethodDelete, "/api/v1/recipes/999/like", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Nothing was recorded.
	rec = app.request(t, http.MethodGet, "/api/v1/recipes/user/liked", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var liked struct {
		Recipes []json.RawMessage `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &liked))
	assert.Empty(t, liked.Recipes)
}

func TestRecipeOwnershipEnforced(t *testing.T) {
	app := setupApp(t)
	owner := app.register(t, "owner@example.com")
	other := app.register(t, "other@example.com")

	rec := app.request(t, http.MethodPost, "/api/v1/recipes", owner, gin.H{
		"name": "Private Dish", "ingredients": []string{"secret sauce"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = app.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/recipes/%d", created.ID), other, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = app.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/recipes/%d", created.ID), owner, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminBootstrapAndGuard(t *testing.T) {
	app := setupApp(t)
	first := app.register(t, "first@example.com")
	second := app.register(t, "second@example.com")

	// Admin routes are closed before any admin exists.
	rec := app.request(t, http.MethodGet, "/api/v1/admin/stats", first, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// First promotion is open to any authenticated user.
	rec = app.request(t, http.MethodPost, "/api/v1/admin/promote", first, gin.H{"email": "first@example.com"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// After bootstrap, only admins can promote.
	rec = app.request(t, http.MethodPost, "/api/v1/admin/promote", second, gin.H{"email": "second@example.com"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/v1/admin/stats", first, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/v1/admin/stats", second, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGroceryEndpoints(t *testing.T) {
	app := setupApp(t)
	token := app.register(t, "grocer@example.com")

	rec := app.request(t, http.MethodPost, "/api/v1/grocery", token, gin.H{"name": "Eggs", "quantity": 2})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.request(t, http.MethodPost, "/api/v1/grocery", token, gin.H{"name": "eggs", "quantity": 2})
	require.Equal(t, http.StatusCreated, rec.Code)

	var item struct {
		ID       uint `json:"id"`
		Quantity int  `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, 4, item.Quantity)

	rec = app.request(t, http.MethodPost, fmt.Sprintf("/api/v1/grocery/%d/toggle", item.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.request(t, http.MethodDelete, "/api/v1/grocery", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/v1/grocery", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Items []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Empty(t, list.Items)
}

func TestStoreFailuresReturnGenericError(t *testing.T) {
	app := setupApp(t)
	token := app.register(t, "broken@example.com")

	// Break the backing store after the session is established.
	require.NoError(t, app.db.Migrator().DropTable(&models.User{}))

	rec := app.request(t, http.MethodGet, "/api/v1/users/profile", token, nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestUserStats(t *testing.T) {
	app := setupApp(t)
	token := app.register(t, "stats@example.com")

	rec := app.request(t, http.MethodPost, "/api/v1/grocery", token, gin.H{"name": "milk"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/v1/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats struct {
		GroceryCount int64 `json:"grocery_count"`
		MemberDays   int   `json:"member_days"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.EqualValues(t, 1, stats.GroceryCount)
	assert.GreaterOrEqual(t, stats.MemberDays, 1)
}

func TestFridgeScanUnavailableWithoutKey(t *testing.T) {
	app := setupApp(t)
	token := app.register(t, "noscan@example.com")

	rec := app.request(t, http.MethodPost, "/api/v1/fridge/scan", token, gin.H{"image": "abc123"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMealPlanEndpoints(t *testing.T) {
	app := setupApp(t)
	token := app.register(t, "mealer@example.com")

	rec := app.request(t, http.MethodPost, "/api/v1/recipes", token, gin.H{
		"name": "Plannable", "ingredients": []string{"water"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = app.request(t, http.MethodPost, "/api/v1/mealplan", token, gin.H{
		"recipe_id": created.ID, "date": "2026-09-01", "meal_type": "dinner",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = app.request(t, http.MethodGet, "/api/v1/mealplan", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var plan struct {
		Entries []struct {
			RecipeName string `json:"recipe_name"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	require.Len(t, plan.Entries, 1)
	assert.Equal(t, "Plannable", plan.Entries[0].RecipeName)

	rec = app.request(t, http.MethodDelete, "/api/v1/mealplan/2026-09-01/dinner", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
