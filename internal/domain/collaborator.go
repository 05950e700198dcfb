package domain

import (
	"time"

	"github.com/google/uuid"
)

// Collaborator is an employee record. CPF, RG and email are alternate keys.
type Collaborator struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CPF       string    `gorm:"column:cpf;size:11;not null;uniqueIndex:unq_collaborators_cpf" json:"cpf"`
	RG        string    `gorm:"column:rg;size:13;not null;uniqueIndex:unq_collaborators_rg" json:"rg"`
	Email     string    `gorm:"size:100;not null;uniqueIndex:unq_collaborators_email" json:"email"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Collaborator) TableName() string { return "collaborators" }

// CnhType is the reference table of driver license categories.
type CnhType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code        string    `gorm:"size:5;not null;uniqueIndex:unq_cnh_types_code" json:"code"`
	Description string    `gorm:"size:100;not null" json:"description"`
}

func (CnhType) TableName() string { return "cnh_types" }

// Driver links a collaborator to a driver license. A collaborator can hold
// at most one driver record.
type Driver struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CnhNumber         string    `gorm:"size:11;not null;uniqueIndex:unq_drivers_cnh_number" json:"cnhNumber"`
	CnhExpirationDate time.Time `gorm:"type:date;not null" json:"cnhExpirationDate"`
	CnhTypeID         uuid.UUID `gorm:"type:uuid;not null" json:"cnhTypeId"`
	CollaboratorID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:unq_drivers_collaborator_id" json:"collaboratorId"`
	CreatedAt         time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"not null" json:"updatedAt"`

	CnhType      *CnhType      `gorm:"foreignKey:CnhTypeID" json:"-"`
	Collaborator *Collaborator `gorm:"foreignKey:CollaboratorID" json:"-"`
}

func (Driver) TableName() string { return "drivers" }
