package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RouteStatus is the reference table routes point to (e.g. "CREATED",
// "IN_PROGRESS", "FINISHED").
type RouteStatus struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code        string    `gorm:"size:20;not null;uniqueIndex:unq_route_status_code" json:"code"`
	Description string    `gorm:"size:100;not null" json:"description"`
}

func (RouteStatus) TableName() string { return "route_status" }

// Route is a journey between an initial point and an optional final point.
// TotalDistance is derived data: it is written exactly once per create or
// update and always equals the haversine distance between the endpoints at
// that time, or zero when no final point is set. Final coordinates are
// nullable; a zero value is a legitimate coordinate, never a sentinel.
type Route struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	StartedAt        time.Time        `gorm:"not null" json:"startedAt"`
	EndedAt          *time.Time       `json:"endedAt"`
	TotalDistance    decimal.Decimal  `gorm:"type:numeric(12,2);not null" json:"totalDistance"`
	InitialLat       decimal.Decimal  `gorm:"type:numeric(11,8);not null" json:"initialLat"`
	InitialLong      decimal.Decimal  `gorm:"type:numeric(11,8);not null" json:"initialLong"`
	FinalLat         *decimal.Decimal `gorm:"type:numeric(11,8)" json:"finalLat"`
	FinalLong        *decimal.Decimal `gorm:"type:numeric(11,8)" json:"finalLong"`
	InitialAddressID *uuid.UUID       `gorm:"type:uuid" json:"initialAddressId"`
	FinalAddressID   *uuid.UUID       `gorm:"type:uuid" json:"finalAddressId"`
	VehicleID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"vehicleId"`
	DriverID         *uuid.UUID       `gorm:"type:uuid" json:"driverId"`
	StatusID         uuid.UUID        `gorm:"type:uuid;not null" json:"statusId"`
	CreatedAt        time.Time        `gorm:"not null" json:"createdAt"`
	UpdatedAt        time.Time        `gorm:"not null" json:"updatedAt"`

	InitialAddress *Address     `gorm:"foreignKey:InitialAddressID" json:"-"`
	FinalAddress   *Address     `gorm:"foreignKey:FinalAddressID" json:"-"`
	Vehicle        *Vehicle     `gorm:"foreignKey:VehicleID" json:"-"`
	Driver         *Driver      `gorm:"foreignKey:DriverID" json:"-"`
	Status         *RouteStatus `gorm:"foreignKey:StatusID" json:"-"`
}

func (Route) TableName() string { return "routes" }
