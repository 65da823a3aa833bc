package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Phone         *string   `gorm:"size:30" json:"phone"`
	Email         *string   `gorm:"size:100;uniqueIndex" json:"email"`
	WhatsappOptIn bool      `gorm:"not null;default:true" json:"whatsappOptIn"`
	CreatedBy     string    `gorm:"size:36;not null;index" json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
