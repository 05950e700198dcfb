package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Address is a street address, optionally geocoded. Latitude and longitude
// are either both set or both null; no partial points are persisted.
type Address struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Address       string           `gorm:"size:100;not null;uniqueIndex:unq_addresses_address_number_zip_code" json:"address"`
	Number        string           `gorm:"size:10;not null;uniqueIndex:unq_addresses_address_number_zip_code" json:"number"`
	Neighbourhood string           `gorm:"size:60;not null" json:"neighbourhood"`
	Reference     *string          `gorm:"size:60" json:"reference"`
	Complement    *string          `gorm:"size:60" json:"complement"`
	ZipCode       string           `gorm:"size:8;not null;uniqueIndex:unq_addresses_address_number_zip_code" json:"zipCode"`
	Latitude      *decimal.Decimal `gorm:"type:numeric(11,8)" json:"latitude"`
	Longitude     *decimal.Decimal `gorm:"type:numeric(11,8)" json:"longitude"`
	CityID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"cityId"`

	City *City `gorm:"foreignKey:CityID" json:"-"`
}

func (Address) TableName() string { return "addresses" }
