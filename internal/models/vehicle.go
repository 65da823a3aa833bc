package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vehicle struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	CustomerID string    `gorm:"size:36;not null;index" json:"customerId"`
	Customer   Customer  `json:"-"`
	Make       string    `gorm:"size:50;not null" json:"make"`
	Model      string    `gorm:"size:50;not null" json:"model"`
	Year       int       `gorm:"not null" json:"year"`
	RegNumber  string    `gorm:"size:20;uniqueIndex;not null" json:"regNumber"`
	Vin        *string   `gorm:"size:30" json:"vin"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
