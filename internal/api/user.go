package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tender-app/backend/internal/middleware"
	"github.com/tender-app/backend/internal/service"
	"github.com/tender-app/backend/internal/types"
)

// UserHandler handles profile management for the authenticated user.
type UserHandler struct {
	profile *service.ProfileService
}

func NewUserHandler(profile *service.ProfileService) *UserHandler {
	return &UserHandler{profile: profile}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.profile.GetUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.profile.UpdateProfile(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		writeError(c, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req types.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.profile.ChangePassword(c.Request.Context(), middleware.UserID(c), req.OldPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			c.JSON(http.StatusForbidden, gin.H{"error": "current password is incorrect"})
			return
		}
		writeError(c, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

func (h *UserHandler) Stats(c *gin.Context) {
	stats, err := h.profile.GetStats(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *UserHandler) DeleteAccount(c *gin.Context) {
	if err := h.profile.DeleteAccount(c.Request.Context(), middleware.UserID(c)); err != nil {
		writeError(c, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
