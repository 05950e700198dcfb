package repository

import (
	"gorm.io/gorm"

	"github.com/frotaops/route-manager/internal/domain"
)

// Per-entity schema descriptors. Lookup columns are listed in the priority
// order used by Get when no primary id is supplied.

func NewCountryRepository(db *gorm.DB) *Repository[domain.Country] {
	return New[domain.Country](db, Schema{
		Entity:  "Country",
		Lookups: []string{"name", "alpha_2", "alpha_3", "numeric_3"},
	})
}

func NewStateRepository(db *gorm.DB) *Repository[domain.State] {
	return New[domain.State](db, Schema{
		Entity:  "State",
		Lookups: []string{"name", "code"},
	})
}

func NewCityRepository(db *gorm.DB) *Repository[domain.City] {
	return New[domain.City](db, Schema{
		Entity:  "City",
		Lookups: []string{"name", "code"},
	})
}

func NewAddressRepository(db *gorm.DB) *Repository[domain.Address] {
	return New[domain.Address](db, Schema{Entity: "Address"})
}

func NewCollaboratorRepository(db *gorm.DB) *Repository[domain.Collaborator] {
	return New[domain.Collaborator](db, Schema{
		Entity:  "Collaborator",
		Lookups: []string{"cpf", "rg", "email"},
	})
}

func NewCnhTypeRepository(db *gorm.DB) *Repository[domain.CnhType] {
	return New[domain.CnhType](db, Schema{
		Entity:  "CNH type",
		Lookups: []string{"code"},
	})
}

func NewDriverRepository(db *gorm.DB) *Repository[domain.Driver] {
	return New[domain.Driver](db, Schema{
		Entity:  "Driver",
		Lookups: []string{"cnh_number", "collaborator_id"},
	})
}

func NewVehicleRepository(db *gorm.DB) *Repository[domain.Vehicle] {
	return New[domain.Vehicle](db, Schema{Entity: "Vehicle"})
}

func NewVehicleDocumentRepository(db *gorm.DB) *Repository[domain.VehicleDocument] {
	return New[domain.VehicleDocument](db, Schema{
		Entity:  "Vehicle document",
		Lookups: []string{"chassis_number", "registration_number", "plate"},
	})
}

func NewRouteStatusRepository(db *gorm.DB) *Repository[domain.RouteStatus] {
	return New[domain.RouteStatus](db, Schema{
		Entity:  "Route status",
		Lookups: []string{"code"},
	})
}

func NewRouteRepository(db *gorm.DB) *Repository[domain.Route] {
	return New[domain.Route](db, Schema{Entity: "Route"})
}
