package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LabourItem prices are held in integer minor units (paise). The API
// accepts a decimal rupee amount and converts on write.
type LabourItem struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Code        string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Description string `gorm:"size:255;not null" json:"description"`
	PriceCents  int    `gorm:"not null" json:"priceCents"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`
}

func (l *LabourItem) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
