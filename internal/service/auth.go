package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tender-app/backend/internal/models"
	"github.com/tender-app/backend/internal/session"
	"github.com/tender-app/backend/internal/types"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	db       *gorm.DB
	sessions session.Store
}

func NewAuthService(db *gorm.DB, sessions session.Store) *AuthService {
	return &AuthService{
		db:       db,
		sessions: sessions,
	}
}

// Register creates a user with their dietary and cuisine labels and opens a
// session. Emails are stored lower-cased; uniqueness is case-insensitive.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (uint, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return 0, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, "", err
	}

	user := models.User{
		Email:         email,
		PasswordHash:  string(hashed),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		CookingSkill:  defaultString(req.CookingSkill, "intermediate"),
		HouseholdSize: defaultString(req.HouseholdSize, "2"),
		WeeklyBudget:  defaultString(req.WeeklyBudget, "moderate"),
		MealsPerWeek:  defaultString(req.MealsPerWeek, "4-7"),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if err := replaceDietary(tx, user.ID, req.Dietary); err != nil {
			return err
		}
		return replaceCuisines(tx, user.ID, req.Cuisines)
	})
	if err != nil {
		return 0, "", err
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return 0, "", err
	}
	return user.ID, token, nil
}

// Login verifies the credential and opens a new session.
func (s *AuthService) Login(ctx context.Context, email, password string) (uint, string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		return 0, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return 0, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return 0, "", err
	}
	return user.ID, token, nil
}

// Logout revokes the session token. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func replaceDietary(tx *gorm.DB, userID uint, labels []string) error {
	if err := tx.Where("user_id = ?", userID).Delete(&models.DietaryRestriction{}).Error; err != nil {
		return err
	}
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if err := tx.Create(&models.DietaryRestriction{UserID: userID, Label: label}).Error; err != nil {
			return err
		}
	}
	return nil
}

func replaceCuisines(tx *gorm.DB, userID uint, cuisines []string) error {
	if err := tx.Where("user_id = ?", userID).Delete(&models.CuisinePreference{}).Error; err != nil {
		return err
	}
	for _, cuisine := range cuisines {
		cuisine = strings.TrimSpace(cuisine)
		if cuisine == "" {
			continue
		}
		if err := tx.Create(&models.CuisinePreference{UserID: userID, Cuisine: cuisine}).Error; err != nil {
			return err
		}
	}
	return nil
}
