package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/frotaops/route-manager/internal/domain"
	"github.com/frotaops/route-manager/internal/repository"
)

// RegisterVehicleRequest is the create/update body for vehicles.
type RegisterVehicleRequest struct {
	Name           string `json:"name" binding:"required,max=50"`
	InitialMileage int    `json:"initialMileage" binding:"min=0"`
	ActualMileage  int    `json:"actualMileage" binding:"min=0"`
}

// RegisterVehicleDocumentRequest is the create/update body for vehicle
// documents. IssuedAt uses the yyyy-mm-dd layout.
type RegisterVehicleDocumentRequest struct {
	ChassisNumber      string  `json:"chassisNumber" binding:"required,max=17"`
	RegistrationNumber string  `json:"registrationNumber" binding:"required,max=11"`
	Plate              string  `json:"plate" binding:"required,max=8"`
	IssuedAt           *string `json:"issuedAt"`
	VehicleID          string  `json:"vehicleId" binding:"required,uuid"`
}

// VehicleService implements vehicle and vehicle-document use cases.
type VehicleService struct {
	vehicles  Store[domain.Vehicle]
	documents Store[domain.VehicleDocument]
	log       *zap.Logger
}

func NewVehicleService(
	vehicles Store[domain.Vehicle],
	documents Store[domain.VehicleDocument],
	log *zap.Logger,
) *VehicleService {
	return &VehicleService{vehicles: vehicles, documents: documents, log: log}
}

// --- Vehicles ---

func (s *VehicleService) GetVehicle(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	vehicle, err := s.vehicles.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.NewNotFoundError("Vehicle", id.String())
	}
	return vehicle, nil
}

func (s *VehicleService) ListVehicles(ctx context.Context, page, limit int) ([]domain.Vehicle, error) {
	return s.vehicles.List(ctx, page, limit)
}

func (s *VehicleService) CreateVehicle(ctx context.Context, req RegisterVehicleRequest) (*domain.Vehicle, error) {
	if req.ActualMileage < req.InitialMileage {
		return nil, domain.NewValidationError("actualMileage cannot be lower than initialMileage")
	}
	return s.vehicles.Save(ctx, &domain.Vehicle{
		ID:             uuid.New(),
		Name:           req.Name,
		InitialMileage: req.InitialMileage,
		ActualMileage:  req.ActualMileage,
	})
}

func (s *VehicleService) UpdateVehicle(ctx context.Context, id uuid.UUID, req RegisterVehicleRequest) (*domain.Vehicle, error) {
	if req.ActualMileage < req.InitialMileage {
		return nil, domain.NewValidationError("actualMileage cannot be lower than initialMileage")
	}
	return s.vehicles.Update(ctx, id, &domain.Vehicle{
		Name:           req.Name,
		InitialMileage: req.InitialMileage,
		ActualMileage:  req.ActualMileage,
	})
}

func (s *VehicleService) DeleteVehicle(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	vehicle, err := s.vehicles.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.NewNotFoundError("Vehicle", id.String())
	}
	return vehicle, nil
}

// ListDocumentsOfVehicle returns all documents referencing the given vehicle.
func (s *VehicleService) ListDocumentsOfVehicle(ctx context.Context, vehicleID uuid.UUID) ([]domain.VehicleDocument, error) {
	if _, err := s.GetVehicle(ctx, vehicleID); err != nil {
		return nil, err
	}
	return s.documents.ListWhere(ctx, "vehicle_id", vehicleID)
}

// --- Vehicle documents ---

func (s *VehicleService) GetDocument(ctx context.Context, id uuid.UUID) (*domain.VehicleDocument, error) {
	document, err := s.documents.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, domain.NewNotFoundError("Vehicle document", id.String())
	}
	return document, nil
}

func (s *VehicleService) ListDocuments(ctx context.Context, page, limit int) ([]domain.VehicleDocument, error) {
	return s.documents.List(ctx, page, limit)
}

func (s *VehicleService) CreateDocument(ctx context.Context, req RegisterVehicleDocumentRequest) (*domain.VehicleDocument, error) {
	row, err := s.buildDocument(req)
	if err != nil {
		return nil, err
	}
	row.ID = uuid.New()

	document, err := s.documents.Save(ctx, row)
	if err != nil {
		return nil, s.documentWriteError(err)
	}
	return document, nil
}

func (s *VehicleService) UpdateDocument(ctx context.Context, id uuid.UUID, req RegisterVehicleDocumentRequest) (*domain.VehicleDocument, error) {
	row, err := s.buildDocument(req)
	if err != nil {
		return nil, err
	}

	document, err := s.documents.Update(ctx, id, row)
	if err != nil {
		return nil, s.documentWriteError(err)
	}
	return document, nil
}

func (s *VehicleService) DeleteDocument(ctx context.Context, id uuid.UUID) (*domain.VehicleDocument, error) {
	document, err := s.documents.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, domain.NewNotFoundError("Vehicle document", id.String())
	}
	return document, nil
}

func (s *VehicleService) buildDocument(req RegisterVehicleDocumentRequest) (*domain.VehicleDocument, error) {
	vehicleID, err := parseRef("vehicleId", req.VehicleID)
	if err != nil {
		return nil, err
	}

	var issuedAt *time.Time
	if req.IssuedAt != nil && *req.IssuedAt != "" {
		parsed, err := time.Parse(dateLayout, *req.IssuedAt)
		if err != nil {
			return nil, domain.NewValidationError("issuedAt must use the yyyy-mm-dd format")
		}
		issuedAt = &parsed
	}

	return &domain.VehicleDocument{
		ChassisNumber:      req.ChassisNumber,
		RegistrationNumber: req.RegistrationNumber,
		Plate:              req.Plate,
		IssuedAt:           issuedAt,
		VehicleID:          vehicleID,
	}, nil
}

func (s *VehicleService) documentWriteError(err error) error {
	err = decorateConflict(err,
		"There is already a vehicle document with the provided chassisNumber, registrationNumber or plate",
		"use GET /api/v1/vehicles/documents to inspect the existing entries")
	return decorateForeignKey(err, map[string]fkMessage{
		"vehicle": {
			Message: "Vehicle not found",
			Hint:    "use GET /api/v1/vehicles to retrieve valid vehicle ids",
		},
	})
}
