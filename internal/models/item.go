package models

import (
	"time"
)

type GroceryItem struct {
	ID       uint      `gorm:"primarykey" json:"id"`
	UserID   uint      `gorm:"not null;index" json:"user_id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Quantity int       `gorm:"default:1" json:"quantity"`
	Unit     string    `gorm:"size:50;default:''" json:"unit"`
	Category string    `gorm:"size:50;default:'Other'" json:"category"`
	Checked  bool      `gorm:"default:false" json:"checked"`
	AddedAt  time.Time `gorm:"autoCreateTime" json:"added_at"`
}

type FridgeItem struct {
	ID       uint      `gorm:"primarykey" json:"id"`
	UserID   uint      `gorm:"not null;index" json:"user_id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Quantity int       `gorm:"default:1" json:"quantity"`
	Unit     string    `gorm:"size:50;default:''" json:"unit"`
	Category string    `gorm:"size:50;default:'Other'" json:"category"`
	AddedAt  time.Time `gorm:"autoCreateTime" json:"added_at"`
}
