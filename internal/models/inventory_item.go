package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InventoryItem struct {
	ID        string          `gorm:"primaryKey;size:36" json:"id"`
	Sku       string          `gorm:"size:50;uniqueIndex;not null" json:"sku"`
	Name      string          `gorm:"size:100;not null" json:"name"`
	Unit      string          `gorm:"size:20;not null" json:"unit"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	StockQty  int             `gorm:"not null" json:"stockQty"`
	IsActive  bool            `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
