package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobState is the named stage a job card is in. Stored as plain text,
// no transition order is enforced at the storage layer.
type JobState string

const (
	JobStateVehicleReceived    JobState = "VEHICLE_RECEIVED"
	JobStateWaitingForEstimate JobState = "WAITING_FOR_ESTIMATE_APPROVAL"
	JobStateEstimateApproved   JobState = "ESTIMATE_APPROVED"
	JobStateEstimateRejected   JobState = "ESTIMATE_REJECTED"
	JobStateInService          JobState = "IN_SERVICE"
	JobStateQualityCheck       JobState = "QUALITY_CHECK"
	JobStateBilling            JobState = "BILLING"
	JobStateReadyForDelivery   JobState = "READY_FOR_DELIVERY"
	JobStateClosed             JobState = "CLOSED"
)

// Fuel gauge reading noted at intake.
const (
	FuelLevelEmpty        = "E"
	FuelLevelQuarter      = "1/4"
	FuelLevelHalf         = "1/2"
	FuelLevelThreeQuarter = "3/4"
	FuelLevelFull         = "F"
)

type Job struct {
	ID                   string          `gorm:"primaryKey;size:36" json:"id"`
	CustomerID           string          `gorm:"size:36;not null;index" json:"customerId"`
	VehicleID            string          `gorm:"size:36;not null;index" json:"vehicleId"`
	AssignedMechanicID   *string         `gorm:"size:36;index" json:"assignedMechanicId"`
	State                JobState        `gorm:"size:40;not null" json:"state"`
	OdoKm                *int            `json:"odoKm"`
	FuelLevel            *string         `gorm:"size:5" json:"fuelLevel"`
	ConditionMedia       json.RawMessage `gorm:"type:jsonb" json:"conditionMedia"` // {photos: [keys], video: key}
	CustomerRequirements *string         `gorm:"type:text" json:"customerRequirements"`
	CreatedBy            string          `gorm:"size:36;not null" json:"createdBy"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}
