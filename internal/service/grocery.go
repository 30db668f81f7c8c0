package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/tender-app/backend/internal/models"
	"github.com/tender-app/backend/internal/types"
)

// GroceryService handles the per-user grocery list
type GroceryService struct {
	db *gorm.DB
}

func NewGroceryService(db *gorm.DB) *GroceryService {
	return &GroceryService{db: db}
}

// List returns the user's grocery items, most recently added first.
func (s *GroceryService) List(ctx context.Context, userID uint) ([]models.GroceryItem, error) {
	var items []models.GroceryItem
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("added_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Add inserts an item, or merges into an existing row when the user already
// has one with the same name ignoring case. Merging adds quantities and
// leaves the stored name and casing untouched.
func (s *GroceryService) Add(ctx context.Context, userID uint, req *types.AddItemRequest) (*models.GroceryItem, error) {
	name := strings.TrimSpace(req.Name)
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	var item models.GroceryItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).First(&item)
		if result.Error == nil {
			item.Quantity += quantity
			return tx.Model(&item).Update("quantity", item.Quantity).Error
		}
		if result.Error != gorm.ErrRecordNotFound {
			return result.Error
		}

		item = models.GroceryItem{
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

// Update applies the provided fields to an item owned by userID.
func (s *GroceryService) Update(ctx context.Context, userID, itemID uint, req *types.UpdateGroceryItemRequest) (*models.GroceryItem, error) {
	var item models.GroceryItem
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&item, itemID).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Checked != nil {
		updates["checked"] = *req.Checked
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&item).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &item, nil
}

// Toggle flips the checked flag.
func (s *GroceryService) Toggle(ctx context.Context, userID, itemID uint) (*models.GroceryItem, error) {
	var item models.GroceryItem
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&item, itemID).Error; err != nil {
		return nil, err
	}
	item.Checked = !item.Checked
	if err := s.db.WithContext(ctx).Model(&item).Update("checked", item.Checked).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes one item owned by userID.
func (s *GroceryService) Delete(ctx context.Context, userID, itemID uint) error {
	var item models.GroceryItem
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&item, itemID).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&item).Error
}

// Clear empties the user's grocery list.
func (s *GroceryService) Clear(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.GroceryItem{}).Error
}
