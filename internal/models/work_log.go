package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkLog struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	JobCardID  string    `gorm:"size:36;not null;index" json:"jobCardId"`
	MechanicID string    `gorm:"size:36;not null;index" json:"mechanicId"`
	Note       string    `gorm:"type:text;not null" json:"note"`
	AddedAt    time.Time `gorm:"autoCreateTime" json:"addedAt"`
}

func (w *WorkLog) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
