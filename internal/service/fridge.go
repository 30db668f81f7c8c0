package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/tender-app/backend/internal/models"
	"github.com/tender-app/backend/internal/types"
)

// FridgeService tracks what the user actually has at home. It shares the
// grocery list's case-insensitive merge semantics and adds photo scanning
// through a pluggable vision collaborator.
type FridgeService struct {
	db      *gorm.DB
	scanner IngredientScanner
}

func NewFridgeService(db *gorm.DB, scanner IngredientScanner) *FridgeService {
	return &FridgeService{db: db, scanner: scanner}
}

// List returns the user's fridge items, most recently added first.
func (s *FridgeService) List(ctx context.Context, userID uint) ([]models.FridgeItem, error) {
	var items []models.FridgeItem
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("added_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Add inserts or merges an item the same way the grocery list does.
func (s *FridgeService) Add(ctx context.Context, userID uint, req *types.AddItemRequest) (*models.FridgeItem, error) {
	name := strings.TrimSpace(req.Name)
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	var item models.FridgeItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).First(&item)
		if result.Error == nil {
			item.Quantity += quantity
			return tx.Model(&item).Update("quantity", item.Quantity).Error
		}
		if result.Error != gorm.ErrRecordNotFound {
			return result.Error
		}

		item = models.FridgeItem{
			UserID:   userID,
			Name:     name,
			Quantity: quantity,
			Unit:     req.Unit,
			Category: defaultString(req.Category, "Other"),
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes one item owned by userID.
func (s *FridgeService) Delete(ctx context.Context, userID, itemID uint) error {
	var item models.FridgeItem
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&item, itemID).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&item).Error
}

// Clear empties the user's fridge inventory.
func (s *FridgeService) Clear(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.FridgeItem{}).Error
}

// Scan sends the photo to the vision collaborator and merges every identified
// ingredient into the fridge. It returns the items as stored after merging.
func (s *FridgeService) Scan(ctx context.Context, userID uint, imageBase64 string) ([]models.FridgeItem, error) {
	if s.scanner == nil {
		return nil, ErrScannerUnavailable
	}

	guesses, err := s.scanner.ScanImage(ctx, imageBase64)
	if err != nil {
		return nil, err
	}

	added := make([]models.FridgeItem, 0, len(guesses))
	for _, guess := range guesses {
		if strings.TrimSpace(guess.Name) == "" {
			continue
		}
		item, err := s.Add(ctx, userID, &types.AddItemRequest{
			Name:     guess.Name,
			Quantity: guess.Quantity,
			Category: guess.Category,
		})
		if err != nil {
			return nil, err
		}
		added = append(added, *item)
	}
	return added, nil
}
