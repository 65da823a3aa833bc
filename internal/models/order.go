package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "PENDING"
	OrderStatusPaid    OrderStatus = "PAID"
)

// Order amounts are snapshots written by the billing collaborator,
// never recomputed here.
type Order struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	JobCardID   string          `gorm:"size:36;not null;index" json:"jobCardId"`
	GrossAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"grossAmount"`
	TaxAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"taxAmount"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	Status      OrderStatus     `gorm:"size:20;not null;default:PENDING" json:"status"`
	PdfURL      *string         `gorm:"size:255" json:"pdfUrl"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
