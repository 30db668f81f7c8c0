package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tender-app/backend/internal/middleware"
	"github.com/tender-app/backend/internal/service"
)

// AdminHandler exposes the dashboard listings and the promote/demote
// controls.
type AdminHandler struct {
	admin   *service.AdminService
	profile *service.ProfileService
	recipes *service.RecipeService
}

func NewAdminHandler(admin *service.AdminService, profile *service.ProfileService, recipes *service.RecipeService) *AdminHandler {
	return &AdminHandler{admin: admin, profile: profile, recipes: recipes}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.admin.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *AdminHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *AdminHandler) ListLikes(c *gin.Context) {
	h.listOwned(c, h.admin.ListLikes, "likes")
}

func (h *AdminHandler) ListDislikes(c *gin.Context) {
	h.listOwned(c, h.admin.ListDislikes, "dislikes")
}

func (h *AdminHandler) ListGrocery(c *gin.Context) {
	h.listOwned(c, h.admin.ListGrocery, "items")
}

func (h *AdminHandler) ListFridge(c *gin.Context) {
	h.listOwned(c, h.admin.ListFridge, "items")
}

func (h *AdminHandler) ListMealPlans(c *gin.Context) {
	h.listOwned(c, h.admin.ListMealPlans, "entries")
}

func (h *AdminHandler) listOwned(c *gin.Context, list func(ctx context.Context) ([]service.OwnedRow, error), key string) {
	rows, err := list(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch records"})
		return
	}
	c.JSON(http.StatusOK, gin.H{key: rows})
}

// Promote grants the admin flag by email. While no admin exists yet, any
// authenticated user may perform the first promotion; after that it is
// admin-only.
func (h *AdminHandler) Promote(c *gin.Context) {
	hasAdmins, err := h.profile.HasAdmins(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check admins"})
		return
	}
	if hasAdmins {
		caller, err := h.profile.GetUser(c.Request.Context(), middleware.UserID(c))
		if err != nil || !caller.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
	}
	h.setAdmin(c, true)
}

// Demote revokes the admin flag by email.
func (h *AdminHandler) Demote(c *gin.Context) {
	h.setAdmin(c, false)
}

func (h *AdminHandler) setAdmin(c *gin.Context, isAdmin bool) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.profile.SetAdmin(c.Request.Context(), req.Email, isAdmin)
	if err != nil {
		writeError(c, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, user)
}
