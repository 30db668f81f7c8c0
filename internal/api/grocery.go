package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tender-app/backend/internal/middleware"
	"github.com/tender-app/backend/internal/service"
	"github.com/tender-app/backend/internal/types"
)

// GroceryHandler handles the shopping list endpoints.
type GroceryHandler struct {
	grocery *service.GroceryService
}

func NewGroceryHandler(grocery *service.GroceryService) *GroceryHandler {
	return &GroceryHandler{grocery: grocery}
}

func (h *GroceryHandler) List(c *gin.Context) {
	items, err := h.grocery.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch grocery list"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *GroceryHandler) Add(c *gin.Context) {
	var req types.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.grocery.Add(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *GroceryHandler) Update(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req types.UpdateGroceryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.grocery.Update(c.Request.Context(), middleware.UserID(c), id, &req)
	if err != nil {
		writeError(c, err, "item not found")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *GroceryHandler) Toggle(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}

	item, err := h.grocery.Toggle(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		writeError(c, err, "item not found")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *GroceryHandler) Delete(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}

	if err := h.grocery.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		writeError(c, err, "item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

func (h *GroceryHandler) Clear(c *gin.Context) {
	if err := h.grocery.Clear(c.Request.Context(), middleware.UserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear list"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "grocery list cleared"})
}
