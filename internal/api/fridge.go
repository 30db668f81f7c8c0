package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tender-app/backend/internal/middleware"
	"github.com/tender-app/backend/internal/service"
	"github.com/tender-app/backend/internal/types"
)

// FridgeHandler handles fridge inventory endpoints, including photo scans.
type FridgeHandler struct {
	fridge *service.FridgeService
}

func NewFridgeHandler(fridge *service.FridgeService) *FridgeHandler {
	return &FridgeHandler{fridge: fridge}
}

func (h *FridgeHandler) List(c *gin.Context) {
	items, err := h.fridge.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch fridge"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *FridgeHandler) Add(c *gin.Context) {
	var req types.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.fridge.Add(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *FridgeHandler) Delete(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}

	if err := h.fridge.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		writeError(c, err, "item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

func (h *FridgeHandler) Clear(c *gin.Context) {
	if err := h.fridge.Clear(c.Request.Context(), middleware.UserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear fridge"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "fridge cleared"})
}

// Scan accepts a base64 photo and adds every identified ingredient.
func (h *FridgeHandler) Scan(c *gin.Context) {
	var req struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.fridge.Scan(c.Request.Context(), middleware.UserID(c), req.Image)
	if err != nil {
		if errors.Is(err, service.ErrScannerUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ingredient scanning is not configured"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to scan image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
