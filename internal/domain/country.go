package domain

import "github.com/google/uuid"

// Country is an ISO 3166-1 reference row. The three code columns are
// alternate keys usable for lookups.
type Country struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"size:100;not null;uniqueIndex:unq_countries_name" json:"name"`
	Alpha2   string    `gorm:"column:alpha_2;size:2;not null;uniqueIndex:unq_countries_alpha_2" json:"alpha2"`
	Alpha3   string    `gorm:"column:alpha_3;size:3;not null;uniqueIndex:unq_countries_alpha_3" json:"alpha3"`
	Numeric3 string    `gorm:"column:numeric_3;size:3;not null;uniqueIndex:unq_countries_numeric_3" json:"numeric3"`
}

func (Country) TableName() string { return "countries" }

// State is a first-level subdivision of a country.
type State struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Code      string    `gorm:"size:10;not null;uniqueIndex:unq_states_code" json:"code"`
	CountryID uuid.UUID `gorm:"type:uuid;not null;index" json:"countryId"`

	Country *Country `gorm:"foreignKey:CountryID" json:"-"`
}

func (State) TableName() string { return "states" }

// City belongs to a state.
type City struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string    `gorm:"size:100;not null" json:"name"`
	Code    string    `gorm:"size:10;not null;uniqueIndex:unq_cities_code" json:"code"`
	StateID uuid.UUID `gorm:"type:uuid;not null;index" json:"stateId"`

	State *State `gorm:"foreignKey:StateID" json:"-"`
}

func (City) TableName() string { return "cities" }
