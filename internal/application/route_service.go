package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/frotaops/route-manager/internal/domain"
	"github.com/frotaops/route-manager/internal/geo"
	"github.com/frotaops/route-manager/internal/repository"
)

// RegisterRouteRequest is the create/update body for routes. Final
// coordinates must be supplied together or not at all; when absent the
// route is persisted with a total distance of zero.
type RegisterRouteRequest struct {
	InitialLat       decimal.Decimal  `json:"initialLat" binding:"required"`
	InitialLong      decimal.Decimal  `json:"initialLong" binding:"required"`
	FinalLat         *decimal.Decimal `json:"finalLat"`
	FinalLong        *decimal.Decimal `json:"finalLong"`
	EndedAt          *time.Time       `json:"endedAt"`
	InitialAddressID *string          `json:"initialAddressId" binding:"omitempty,uuid"`
	FinalAddressID   *string          `json:"finalAddressId" binding:"omitempty,uuid"`
	VehicleID        string           `json:"vehicleId" binding:"required,uuid"`
	DriverID         *string          `json:"driverId" binding:"omitempty,uuid"`
	StatusID         string           `json:"statusId" binding:"required,uuid"`
}

// RegisterRouteStatusRequest is the create body for route statuses.
type RegisterRouteStatusRequest struct {
	Code        string `json:"code" binding:"required,max=20"`
	Description string `json:"description" binding:"required,max=100"`
}

// RouteService assembles route records: it resolves the referenced entities,
// computes the great-circle distance between the endpoints and persists the
// result in a single write.
type RouteService struct {
	routes   Store[domain.Route]
	statuses Store[domain.RouteStatus]
	log      *zap.Logger
}

func NewRouteService(
	routes Store[domain.Route],
	statuses Store[domain.RouteStatus],
	log *zap.Logger,
) *RouteService {
	return &RouteService{routes: routes, statuses: statuses, log: log}
}

// --- Routes ---

func (s *RouteService) GetRoute(ctx context.Context, id uuid.UUID) (*domain.Route, error) {
	route, err := s.routes.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, domain.NewNotFoundError("Route", id.String())
	}
	return route, nil
}

func (s *RouteService) ListRoutes(ctx context.Context, page, limit int) ([]domain.Route, error) {
	return s.routes.List(ctx, page, limit)
}

// CreateRoute validates the references, computes the distance and persists
// the new route in one write.
func (s *RouteService) CreateRoute(ctx context.Context, req RegisterRouteRequest) (*domain.Route, error) {
	row, err := s.assemble(req)
	if err != nil {
		return nil, err
	}
	row.ID = uuid.New()
	row.StartedAt = time.Now().UTC()

	route, err := s.routes.Save(ctx, row)
	if err != nil {
		return nil, s.routeWriteError(err)
	}

	s.log.Info("route created",
		zap.String("id", route.ID.String()),
		zap.String("total_distance", route.TotalDistance.String()),
	)
	return route, nil
}

// UpdateRoute replaces all mutable fields of the route, recomputing the
// distance from the supplied coordinates. The stored distance is never
// refreshed implicitly when related rows change; this call is the only way
// to recompute it.
func (s *RouteService) UpdateRoute(ctx context.Context, id uuid.UUID, req RegisterRouteRequest) (*domain.Route, error) {
	existing, err := s.GetRoute(ctx, id)
	if err != nil {
		return nil, err
	}

	row, err := s.assemble(req)
	if err != nil {
		return nil, err
	}
	row.StartedAt = existing.StartedAt

	route, err := s.routes.Update(ctx, id, row)
	if err != nil {
		return nil, s.routeWriteError(err)
	}
	return route, nil
}

func (s *RouteService) DeleteRoute(ctx context.Context, id uuid.UUID) (*domain.Route, error) {
	route, err := s.routes.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, domain.NewNotFoundError("Route", id.String())
	}
	return route, nil
}

// GetStatusOfRoute returns the status row the given route points to.
func (s *RouteService) GetStatusOfRoute(ctx context.Context, routeID uuid.UUID) (*domain.RouteStatus, error) {
	route, err := s.GetRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}
	return s.GetRouteStatus(ctx, route.StatusID)
}

// assemble validates all references and coordinates and builds the route row
// with its derived distance. No storage call happens here; referential
// integrity is enforced by the store on write.
func (s *RouteService) assemble(req RegisterRouteRequest) (*domain.Route, error) {
	vehicleID, err := parseRef("vehicleId", req.VehicleID)
	if err != nil {
		return nil, err
	}
	statusID, err := parseRef("statusId", req.StatusID)
	if err != nil {
		return nil, err
	}
	driverID, err := parseOptionalRef("driverId", req.DriverID)
	if err != nil {
		return nil, err
	}
	initialAddressID, err := parseOptionalRef("initialAddressId", req.InitialAddressID)
	if err != nil {
		return nil, err
	}
	finalAddressID, err := parseOptionalRef("finalAddressId", req.FinalAddressID)
	if err != nil {
		return nil, err
	}

	initial := geo.NewPoint(req.InitialLat, req.InitialLong)
	if !initial.Valid() {
		return nil, domain.NewValidationError("initialLat must be in [-90, 90] and initialLong in [-180, 180]")
	}
	if (req.FinalLat == nil) != (req.FinalLong == nil) {
		return nil, domain.NewValidationError("finalLat and finalLong must be supplied together")
	}

	distance := decimal.Zero
	if req.FinalLat != nil {
		final := geo.NewPoint(*req.FinalLat, *req.FinalLong)
		if !final.Valid() {
			return nil, domain.NewValidationError("finalLat must be in [-90, 90] and finalLong in [-180, 180]")
		}
		distance = decimal.NewFromFloat(geo.Distance(initial, final)).Round(2)
	}

	return &domain.Route{
		EndedAt:          req.EndedAt,
		TotalDistance:    distance,
		InitialLat:       req.InitialLat,
		InitialLong:      req.InitialLong,
		FinalLat:         req.FinalLat,
		FinalLong:        req.FinalLong,
		InitialAddressID: initialAddressID,
		FinalAddressID:   finalAddressID,
		VehicleID:        vehicleID,
		DriverID:         driverID,
		StatusID:         statusID,
	}, nil
}

func (s *RouteService) routeWriteError(err error) error {
	return decorateForeignKey(err, map[string]fkMessage{
		"address": {
			Message: "Address not found",
			Hint:    "use GET /api/v1/addresses to retrieve valid address ids",
		},
		"vehicle": {
			Message: "Vehicle not found",
			Hint:    "use GET /api/v1/vehicles to retrieve valid vehicle ids",
		},
		"driver": {
			Message: "Driver not found",
			Hint:    "use GET /api/v1/collaborators/drivers to retrieve valid driver ids",
		},
		"status": {
			Message: "Route status not found",
			Hint:    "use GET /api/v1/routes/status to retrieve valid status ids",
		},
	})
}

// --- Route statuses ---

func (s *RouteService) GetRouteStatus(ctx context.Context, id uuid.UUID) (*domain.RouteStatus, error) {
	status, err := s.statuses.Get(ctx, repository.ByID(id))
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, domain.NewNotFoundError("Route status", id.String())
	}
	return status, nil
}

func (s *RouteService) ListRouteStatuses(ctx context.Context, page, limit int) ([]domain.RouteStatus, error) {
	return s.statuses.List(ctx, page, limit)
}

func (s *RouteService) CreateRouteStatus(ctx context.Context, req RegisterRouteStatusRequest) (*domain.RouteStatus, error) {
	status, err := s.statuses.Save(ctx, &domain.RouteStatus{
		ID:          uuid.New(),
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		return nil, decorateConflict(err,
			"There is already a route status with the provided code",
			"use GET /api/v1/routes/status to inspect the existing entries")
	}
	return status, nil
}

func (s *RouteService) UpdateRouteStatus(ctx context.Context, id uuid.UUID, req RegisterRouteStatusRequest) (*domain.RouteStatus, error) {
	status, err := s.statuses.Update(ctx, id, &domain.RouteStatus{
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		return nil, decorateConflict(err,
			"There is already a route status with the provided code",
			"use GET /api/v1/routes/status to inspect the existing entries")
	}
	return status, nil
}

func (s *RouteService) DeleteRouteStatus(ctx context.Context, id uuid.UUID) (*domain.RouteStatus, error) {
	status, err := s.statuses.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, domain.NewNotFoundError("Route status", id.String())
	}
	return status, nil
}
