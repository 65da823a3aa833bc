package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodRazorpay PaymentMethod = "RAZORPAY"
)

// One order may carry many payments; no sum-to-total check exists.
type Payment struct {
	ID              string          `gorm:"primaryKey;size:36" json:"id"`
	OrderID         string          `gorm:"size:36;not null;index" json:"orderId"`
	RazorpayOrderID *string         `gorm:"size:100" json:"razorpayOrderId"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod   PaymentMethod   `gorm:"size:20;not null" json:"paymentMethod"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
