package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a fleet vehicle.
type Vehicle struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"size:50;not null" json:"name"`
	InitialMileage int       `gorm:"not null" json:"initialMileage"`
	ActualMileage  int       `gorm:"not null" json:"actualMileage"`
	CreatedAt      time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"not null" json:"updatedAt"`
}

func (Vehicle) TableName() string { return "vehicles" }

// VehicleDocument holds a vehicle's registration paperwork. Chassis number,
// registration number and plate are alternate keys.
type VehicleDocument struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ChassisNumber      string     `gorm:"size:17;not null;uniqueIndex:unq_vehicle_documents_chassis_number" json:"chassisNumber"`
	RegistrationNumber string     `gorm:"size:11;not null;uniqueIndex:unq_vehicle_documents_registration_number" json:"registrationNumber"`
	Plate              string     `gorm:"size:8;not null;uniqueIndex:unq_vehicle_documents_plate" json:"plate"`
	IssuedAt           *time.Time `gorm:"type:date" json:"issuedAt"`
	VehicleID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"vehicleId"`
	CreatedAt          time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt          time.Time  `gorm:"not null" json:"updatedAt"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"-"`
}

func (VehicleDocument) TableName() string { return "vehicle_documents" }
