package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tender-app/backend/internal/middleware"
	"github.com/tender-app/backend/internal/service"
	"github.com/tender-app/backend/internal/types"
)

// MealPlanHandler handles the weekly planner endpoints.
type MealPlanHandler struct {
	plans *service.MealPlanService
}

func NewMealPlanHandler(plans *service.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{plans: plans}
}

func (h *MealPlanHandler) List(c *gin.Context) {
	entries, err := h.plans.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch meal plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *MealPlanHandler) Plan(c *gin.Context) {
	var req types.AddMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.plans.Plan(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrBadPlanDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		writeError(c, err, "recipe not found")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Remove clears one slot, addressed by date and meal type.
func (h *MealPlanHandler) Remove(c *gin.Context) {
	date := c.Param("date")
	mealType := c.Param("mealType")
	if date == "" || mealType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and meal type are required"})
		return
	}

	if err := h.plans.Remove(c.Request.Context(), middleware.UserID(c), date, mealType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "entry removed"})
}

// ClearWeek wipes the seven days starting at ?start=YYYY-MM-DD.
func (h *MealPlanHandler) ClearWeek(c *gin.Context) {
	start := c.Query("start")
	if start == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start date is required"})
		return
	}

	if err := h.plans.ClearWeek(c.Request.Context(), middleware.UserID(c), start); err != nil {
		if errors.Is(err, service.ErrBadPlanDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear week"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "week cleared"})
}
