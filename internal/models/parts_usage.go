package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PartsUsage records inventory consumed on a job card. Historical rows
// keep their price snapshot even if the item is later edited or deleted.
type PartsUsage struct {
	ID              string          `gorm:"primaryKey;size:36" json:"id"`
	JobCardID       string          `gorm:"size:36;not null;index" json:"jobCardId"`
	InventoryItemID string          `gorm:"size:36;not null;index" json:"inventoryItemId"`
	Qty             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"qty"`
	UnitPriceCents  int             `gorm:"not null" json:"unitPriceCents"`
	TotalCents      int             `gorm:"not null" json:"totalCents"`
	AddedBy         string          `gorm:"size:36;not null" json:"addedBy"`
	AddedAt         time.Time       `gorm:"autoCreateTime" json:"addedAt"`
}

func (p *PartsUsage) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
