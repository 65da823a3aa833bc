package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationChannel string

const (
	NotificationChannelWhatsapp NotificationChannel = "WHATSAPP"
)

type NotificationStatus string

const (
	NotificationStatusQueued NotificationStatus = "QUEUED"
	NotificationStatusSent   NotificationStatus = "SENT"
	NotificationStatusFailed NotificationStatus = "FAILED"
)

// Notification is a queued outbound message row. Delivery is handled by an
// external worker; this service only enqueues.
type Notification struct {
	ID        string              `gorm:"primaryKey;size:36" json:"id"`
	JobCardID *string             `gorm:"size:36;index" json:"jobCardId"`
	Channel   NotificationChannel `gorm:"size:20;not null" json:"channel"`
	ToPhone   string              `gorm:"size:30;not null" json:"toPhone"`
	Template  string              `gorm:"size:100;not null" json:"template"`
	Payload   json.RawMessage     `gorm:"type:jsonb" json:"payload"`
	Status    NotificationStatus  `gorm:"size:20;not null;default:QUEUED" json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
