package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/frotaops/route-manager/internal/domain"
	"github.com/frotaops/route-manager/internal/repository"
)

const dateLayout = "2006-01-02"

// RegisterCollaboratorRequest is the create/update body for collaborators.
type RegisterCollaboratorRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	CPF   string `json:"cpf" binding:"required,len=11"`
	RG    string `json:"rg" binding:"required,max=13"`
	Email string `json:"email" binding:"required,email,max=100"`
}

// RegisterCnhTypeRequest is the create body for CNH license categories.
type RegisterCnhTypeRequest struct {
	Code        string `json:"code" binding:"required,max=5"`
	Description string `json:"description" binding:"required,max=100"`
}

// RegisterDriverRequest is the create/update body for drivers. The
// expiration date uses the yyyy-mm-dd layout.
type RegisterDriverRequest struct {
	CnhNumber         string `json:"cnhNumber" binding:"required,len=11"`
	CnhExpirationDate string `json:"cnhExpirationDate" binding:"required"`
	CnhTypeID         string `json:"cnhTypeId" binding:"required,uuid"`
	CollaboratorID    string `json:"collaboratorId" binding:"required,uuid"`
}

// CollaboratorService implements collaborator, driver and CNH type use cases.
type CollaboratorService struct {
	collaborators Store[domain.Collaborator]
	drivers       Store[domain.Driver]
	cnhTypes      Store[domain.CnhType]
	log           *zap.Logger
}

func NewCollaboratorService(
	collaborators Store[domain.Collaborator],
	drivers Store[domain.Driver],
	cnhTypes Store[domain.CnhType],
	log *zap.Logger,
) *CollaboratorService {
	return &CollaboratorService{
		collaborators: collaborators,
		drivers:       drivers,
		cnhTypes:      cnhTypes,
		log:           log,
	}
}

// --- Collaborators ---

func (s *CollaboratorService) GetCollaborator(ctx context.Context, id uuid.UUID) (*domain.Collaborator, error) {
	collaborator, err := s.collaborators.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}
	if collaborator == nil {
		return nil, domain.NewNotFoundError("Collaborator", id.String())
	}
	return collaborator, nil
}

func (s *CollaboratorService) ListCollaborators(ctx context.Context, page, limit int) ([]domain.Collaborator, error) {
	return s.collaborators.List(ctx, page, limit)
}

func (s *CollaboratorService) CreateCollaborator(ctx context.Context, req RegisterCollaboratorRequest) (*domain.Collaborator, error) {
	collaborator, err := s.collaborators.Save(ctx, &domain.Collaborator{
		ID:    uuid.New(),
		Name:  req.Name,
		CPF:   req.CPF,
		RG:    req.RG,
		Email: req.Email,
	})
	if err != nil {
		return nil, decorateConflict(err,
			"There is already a collaborator with the provided cpf, rg or email",
			"use GET /api/v1/collaborators to inspect the existing entries")
	}
	return collaborator, nil
}

func (s *CollaboratorService) UpdateCollaborator(ctx context.Context, id uuid.UUID, req RegisterCollaboratorRequest) (*domain.Collaborator, error) {
	collaborator, err := s.collaborators.Update(ctx, id, &domain.Collaborator{
		Name:  req.Name,
		CPF:   req.CPF,
		RG:    req.RG,
		Email: req.Email,
	})
	if err != nil {
		return nil, decorateConflict(err,
			"There is already a collaborator with the provided cpf, rg or email",
			"use GET /api/v1/collaborators to inspect the existing entries")
	}
	return collaborator, nil
}

// DeleteCollaborator removes the collaborator's driver record first, then
// the collaborator itself. The two deletes are sequential best-effort calls,
// not a transaction.
func (s *CollaboratorService) DeleteCollaborator(ctx context.Context, id uuid.UUID) (*domain.Collaborator, error) {
	drivers, err := s.drivers.ListWhere(ctx, "collaborator_id", id)
	if err != nil {
		return nil, err
	}
	for _, driver := range drivers {
		if _, err := s.drivers.Delete(ctx, driver.ID); err != nil {
			return nil, err
		}
	}

	collaborator, err := s.collaborators.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if collaborator == nil {
		return nil, domain.NewNotFoundError("Collaborator", id.String())
	}
	return collaborator, nil
}

// GetDriverOfCollaborator returns the driver record held by the given
// collaborator.
func (s *CollaboratorService) GetDriverOfCollaborator(ctx context.Context, collaboratorID uuid.UUID) (*domain.Driver, error) {
	driver, err := s.drivers.Get(ctx, repository.ByKey(1, collaboratorID.String()))
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, domain.NewNotFoundError("Driver", collaboratorID.String())
	}
	return driver, nil
}

// --- Drivers ---

func (s *CollaboratorService) GetDriver(ctx context.Context, id uuid.UUID) (*domain.Driver, error) {
	driver, err := s.drivers.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, domain.NewNotFoundError("Driver", id.String())
	}
	return driver, nil
}

func (s *CollaboratorService) ListDrivers(ctx context.Context, page, limit int) ([]domain.Driver, error) {
	return s.drivers.List(ctx, page, limit)
}

func (s *CollaboratorService) CreateDriver(ctx context.Context, req RegisterDriverRequest) (*domain.Driver, error) {
	row, err := s.buildDriver(req)
	if err != nil {
		return nil, err
	}
	row.ID = uuid.New()

	driver, err := s.drivers.Save(ctx, row)
	if err != nil {
		return nil, s.driverWriteError(err)
	}
	return driver, nil
}

func (s *CollaboratorService) UpdateDriver(ctx context.Context, id uuid.UUID, req RegisterDriverRequest) (*domain.Driver, error) {
	row, err := s.buildDriver(req)
	if err != nil {
		return nil, err
	}

	driver, err := s.drivers.Update(ctx, id, row)
	if err != nil {
		return nil, s.driverWriteError(err)
	}
	return driver, nil
}

func (s *CollaboratorService) DeleteDriver(ctx context.Context, id uuid.UUID) (*domain.Driver, error) {
	driver, err := s.drivers.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, domain.NewNotFoundError("Driver", id.String())
	}
	return driver, nil
}

func (s *CollaboratorService) buildDriver(req RegisterDriverRequest) (*domain.Driver, error) {
	cnhTypeID, err := parseRef("cnhTypeId", req.CnhTypeID)
	if err != nil {
		return nil, err
	}
	collaboratorID, err := parseRef("collaboratorId", req.CollaboratorID)
	if err != nil {
		return nil, err
	}
	expiration, err := time.Parse(dateLayout, req.CnhExpirationDate)
	if err != nil {
		return nil, domain.NewValidationError("cnhExpirationDate must use the yyyy-mm-dd format")
	}

	return &domain.Driver{
		CnhNumber:         req.CnhNumber,
		CnhExpirationDate: expiration,
		CnhTypeID:         cnhTypeID,
		CollaboratorID:    collaboratorID,
	}, nil
}

func (s *CollaboratorService) driverWriteError(err error) error {
	err = decorateConflict(err,
		"There is already a driver with the provided cnhNumber or collaboratorId",
		"use GET /api/v1/collaborators/drivers to inspect the existing entries")
	return decorateForeignKey(err, map[string]fkMessage{
		"collaborator": {
			Message: "Collaborator not found",
			Hint:    "use GET /api/v1/collaborators to retrieve valid collaborator ids",
		},
		"cnh_type": {
			Message: "CNH type not found",
			Hint:    "use GET /api/v1/collaborators/drivers/cnh to retrieve valid CNH type ids",
		},
	})
}

// --- CNH types ---

func (s *CollaboratorService) GetCnhType(ctx context.Context, id uuid.UUID) (*domain.CnhType, error) {
	cnhType, err := s.cnhTypes.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}
	if cnhType == nil {
		return nil, domain.NewNotFoundError("CNH type", id.String())
	}
	return cnhType, nil
}

func (s *CollaboratorService) ListCnhTypes(ctx context.Context, page, limit int) ([]domain.CnhType, error) {
	return s.cnhTypes.List(ctx, page, limit)
}

func (s *CollaboratorService) CreateCnhType(ctx context.Context, req RegisterCnhTypeRequest) (*domain.CnhType, error) {
	cnhType, err := s.cnhTypes.Save(ctx, &domain.CnhType{
		ID:          uuid.New(),
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		return nil, decorateConflict(err,
			"There is already a CNH type with the provided code",
			"use GET /api/v1/collaborators/drivers/cnh to inspect the existing entries")
	}
	return cnhType, nil
}
