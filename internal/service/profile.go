package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tender-app/backend/internal/models"
	"github.com/tender-app/backend/internal/session"
	"github.com/tender-app/backend/internal/types"
)

var ErrWrongPassword = errors.New("current password is incorrect")

// ProfileService handles user profile operations
type ProfileService struct {
	db       *gorm.DB
	sessions session.Store
}

func NewProfileService(db *gorm.DB, sessions session.Store) *ProfileService {
	return &ProfileService{
		db:       db,
		sessions: sessions,
	}
}

// GetUser returns the formatted user: profile fields plus dietary and
// cuisine labels and the derived liked/grocery counts.
func (s *ProfileService) GetUser(ctx context.Context, userID uint) (*types.UserResponse, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}

	var dietary []string
	if err := s.db.WithContext(ctx).Model(&models.DietaryRestriction{}).
		Where("user_id = ?", userID).Pluck("label", &dietary).Error; err != nil {
		return nil, err
	}

	var cuisines []string
	if err := s.db.WithContext(ctx).Model(&models.CuisinePreference{}).
		Where("user_id = ?", userID).Pluck("cuisine", &cuisines).Error; err != nil {
		return nil, err
	}

	var likedCount, groceryCount int64
	if err := s.db.WithContext(ctx).Model(&models.RecipeLike{}).
		Where("user_id = ?", userID).Count(&likedCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.GroceryItem{}).
		Where("user_id = ?", userID).Count(&groceryCount).Error; err != nil {
		return nil, err
	}

	if dietary == nil {
		dietary = []string{}
	}
	if cuisines == nil {
		cuisines = []string{}
	}

	return &types.UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		CookingSkill:  user.CookingSkill,
		HouseholdSize: user.HouseholdSize,
		WeeklyBudget:  user.WeeklyBudget,
		MealsPerWeek:  user.MealsPerWeek,
		Dietary:       dietary,
		Cuisines:      cuisines,
		LikedCount:    likedCount,
		GroceryCount:  groceryCount,
		IsAdmin:       user.IsAdmin,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}, nil
}

// UpdateProfile updates the provided fields and, when present, replaces the
// dietary and cuisine label sets wholesale.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uint, req *types.UpdateProfileRequest) (*types.UserResponse, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.CookingSkill != nil {
		updates["cooking_skill"] = *req.CookingSkill
	}
	if req.HouseholdSize != nil {
		updates["household_size"] = *req.HouseholdSize
	}
	if req.WeeklyBudget != nil {
		updates["weekly_budget"] = *req.WeeklyBudget
	}
	if req.MealsPerWeek != nil {
		updates["meals_per_week"] = *req.MealsPerWeek
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&user).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.Dietary != nil {
			if err := replaceDietary(tx, userID, *req.Dietary); err != nil {
				return err
			}
		}
		if req.Cuisines != nil {
			if err := replaceCuisines(tx, userID, *req.Cuisines); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetUser(ctx, userID)
}

// ChangePassword verifies the current credential before rehashing.
func (s *ProfileService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Model(&user).Update("password_hash", string(hashed)).Error
}

// DeleteAccount removes the user and every row scoped to them, then revokes
// all of their sessions.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scoped := []interface{}{
			&models.DietaryRestriction{},
			&models.CuisinePreference{},
			&models.RecipeLike{},
			&models.RecipeDislike{},
			&models.GroceryItem{},
			&models.FridgeItem{},
			&models.MealPlanEntry{},
		}
		for _, model := range scoped {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, userID).Error
	})
	if err != nil {
		return err
	}
	return s.sessions.RevokeUser(ctx, userID)
}

// UserStats are the headline numbers for the profile screen.
type UserStats struct {
	LikedCount   int64 `json:"liked_count"`
	GroceryCount int64 `json:"grocery_count"`
	PlanCount    int64 `json:"plan_count"`
	MemberDays   int   `json:"member_days"`
}

// GetStats derives the per-user activity counts. MemberDays is at least 1 so
// a brand-new account never shows zero.
func (s *ProfileService) GetStats(ctx context.Context, userID uint) (*UserStats, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}

	stats := &UserStats{}
	if err := s.db.WithContext(ctx).Model(&models.RecipeLike{}).
		Where("user_id = ?", userID).Count(&stats.LikedCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.GroceryItem{}).
		Where("user_id = ?", userID).Count(&stats.GroceryCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.MealPlanEntry{}).
		Where("user_id = ?", userID).Count(&stats.PlanCount).Error; err != nil {
		return nil, err
	}

	stats.MemberDays = int(time.Since(user.CreatedAt).Hours()/24) + 1
	return stats, nil
}

// HasAdmins reports whether any admin exists yet. The first promotion is
// allowed through while this is false.
func (s *ProfileService) HasAdmins(ctx context.Context) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SetAdmin grants or revokes the admin flag by email.
func (s *ProfileService) SetAdmin(ctx context.Context, email string, isAdmin bool) (*types.UserResponse, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&user).Update("is_admin", isAdmin).Error; err != nil {
		return nil, err
	}
	return s.GetUser(ctx, user.ID)
}
