package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type EstimateStatus string

const (
	EstimateStatusPending  EstimateStatus = "PENDING"
	EstimateStatusApproved EstimateStatus = "APPROVED"
	EstimateStatusRejected EstimateStatus = "REJECTED"
)

type EstimateLineKind string

const (
	EstimateLineInventory EstimateLineKind = "INVENTORY"
	EstimateLineLabour    EstimateLineKind = "LABOUR"
)

// Estimate is a priced proposal for a job card. Written by the estimating
// flow, which has no CRUD surface in this subsystem.
type Estimate struct {
	ID            string         `gorm:"primaryKey;size:36" json:"id"`
	JobCardID     string         `gorm:"size:36;not null;index" json:"jobCardId"`
	CreatedBy     string         `gorm:"size:36;not null" json:"createdBy"`
	SubtotalCents int            `gorm:"not null" json:"subtotalCents"`
	TaxCents      int            `gorm:"not null" json:"taxCents"`
	TotalCents    int            `gorm:"not null" json:"totalCents"`
	Status        EstimateStatus `gorm:"size:20;not null;default:PENDING" json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (e *Estimate) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

type EstimateLine struct {
	ID             string           `gorm:"primaryKey;size:36" json:"id"`
	EstimateID     string           `gorm:"size:36;not null;index" json:"estimateId"`
	Kind           EstimateLineKind `gorm:"size:20;not null" json:"kind"`
	RefID          string           `gorm:"size:36;not null" json:"refId"` // inventory item or labour item id
	Name           string           `gorm:"size:100;not null" json:"name"` // snapshot
	Qty            decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"qty"`
	UnitPriceCents int              `gorm:"not null" json:"unitPriceCents"` // snapshot
	TotalCents     int              `gorm:"not null" json:"totalCents"`
}

func (e *EstimateLine) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
