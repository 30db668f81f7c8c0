package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tender-app/backend/internal/middleware"
	"github.com/tender-app/backend/internal/models"
	"github.com/tender-app/backend/internal/service"
	"github.com/tender-app/backend/internal/types"
)

// RecipeHandler handles the catalog, discovery and swipe endpoints.
type RecipeHandler struct {
	db      *gorm.DB
	recipes *service.RecipeService
}

func NewRecipeHandler(db *gorm.DB, recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{db: db, recipes: recipes}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}
	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "recipe not found")
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// Discover returns the randomized, filtered feed for swiping. An optional
// ?limit= caps the batch size; anything unparsable falls back to the
// default.
func (h *RecipeHandler) Discover(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	recipes, err := h.recipes.Discover(c.Request.Context(), middleware.UserID(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) ListLiked(c *gin.Context) {
	recipes, err := h.recipes.ListLiked(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) ListCreated(c *gin.Context) {
	recipes, err := h.recipes.ListCreatedBy(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create recipe"})
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}
	if !h.canModify(c, id) {
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, err, "recipe not found")
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}
	if !h.canModify(c, id) {
		return
	}

	if err := h.recipes.DeleteRecipe(c.Request.Context(), id); err != nil {
		writeError(c, err, "recipe not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

func (h *RecipeHandler) Like(c *gin.Context) {
	h.swipe(c, h.recipes.Like, "recipe liked")
}

func (h *RecipeHandler) Dislike(c *gin.Context) {
	h.swipe(c, h.recipes.Dislike, "recipe dismissed")
}

func (h *RecipeHandler) Unlike(c *gin.Context) {
	h.swipe(c, h.recipes.Unlike, "like removed")
}

// swipe records a like/dislike/unlike. A recipe id that does not resolve is
// acknowledged without recording anything.
func (h *RecipeHandler) swipe(c *gin.Context, op func(ctx context.Context, userID, recipeID uint) error, msg string) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var recipe models.Recipe
	if err := h.db.WithContext(c.Request.Context()).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"message": msg})
			return
		}
		writeError(c, err, "recipe not found")
		return
	}

	if err := op(c.Request.Context(), middleware.UserID(c), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record swipe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// canModify enforces creator-or-admin ownership. Seed recipes (no creator)
// are admin-only.
func (h *RecipeHandler) canModify(c *gin.Context, recipeID uint) bool {
	var recipe models.Recipe
	if err := h.db.WithContext(c.Request.Context()).First(&recipe, recipeID).Error; err != nil {
		writeError(c, err, "recipe not found")
		return false
	}

	userID := middleware.UserID(c)
	if recipe.CreatedBy != nil && *recipe.CreatedBy == userID {
		return true
	}

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).First(&user, userID).Error; err == nil && user.IsAdmin {
		return true
	}

	c.JSON(http.StatusForbidden, gin.H{"error": "you do not own this recipe"})
	return false
}
