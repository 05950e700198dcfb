package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/frotaops/route-manager/internal/domain"
	"github.com/frotaops/route-manager/internal/repository"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func decPtr(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d := decimal.RequireFromString(s)
	return &d
}

func newRouteRequest(t *testing.T) RegisterRouteRequest {
	t.Helper()
	return RegisterRouteRequest{
		InitialLat:  dec(t, "-23.55052000"),
		InitialLong: dec(t, "-46.63330800"),
		VehicleID:   uuid.NewString(),
		StatusID:    uuid.NewString(),
	}
}

func TestCreateRoute_NoFinalPointMeansZeroDistance(t *testing.T) {
	routes := &fakeStore[domain.Route]{}
	svc := NewRouteService(routes, &fakeStore[domain.RouteStatus]{}, zap.NewNop())

	route, err := svc.CreateRoute(context.Background(), newRouteRequest(t))
	require.NoError(t, err)

	assert.True(t, route.TotalDistance.IsZero())
	assert.Nil(t, route.FinalLat)
	assert.Nil(t, route.FinalLong)
	assert.NotEqual(t, uuid.Nil, route.ID)
	assert.False(t, route.StartedAt.IsZero())
	assert.Equal(t, 1, routes.saveCalls)
}

func TestCreateRoute_ComputesHaversineDistance(t *testing.T) {
	routes := &fakeStore[domain.Route]{}
	svc := NewRouteService(routes, &fakeStore[domain.RouteStatus]{}, zap.NewNop())

	req := newRouteRequest(t)
	req.FinalLat = decPtr(t, "-22.90684600")
	req.FinalLong = decPtr(t, "-43.17289600")

	route, err := svc.CreateRoute(context.Background(), req)
	require.NoError(t, err)

	// Sao Paulo to Rio de Janeiro, roughly 361 km.
	assert.InDelta(t, 361000.0, route.TotalDistance.InexactFloat64(), 5000)
	assert.True(t, route.TotalDistance.Equal(route.TotalDistance.Round(2)))
}

func TestCreateRoute_MalformedVehicleIDFailsBeforeStorage(t *testing.T) {
	routes := &fakeStore[domain.Route]{}
	svc := NewRouteService(routes, &fakeStore[domain.RouteStatus]{}, zap.NewNop())

	req := newRouteRequest(t)
	req.VehicleID = "not-a-uuid"

	_, err := svc.CreateRoute(context.Background(), req)

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Message, "vehicleId")
	assert.Zero(t, routes.saveCalls)
}

func TestCreateRoute_HalfFinalPointIsRejected(t *testing.T) {
	routes := &fakeStore[domain.Route]{}
	svc := NewRouteService(routes, &fakeStore[domain.RouteStatus]{}, zap.NewNop())

	req := newRouteRequest(t)
	req.FinalLat = decPtr(t, "-22.90684600")

	_, err := svc.CreateRoute(context.Background(), req)

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Zero(t, routes.saveCalls)
}

func TestCreateRoute_OutOfRangeCoordinatesAreRejected(t *testing.T) {
	routes := &fakeStore[domain.Route]{}
	svc := NewRouteService(routes, &fakeStore[domain.RouteStatus]{}, zap.NewNop())

	req := newRouteRequest(t)
	req.InitialLat = dec(t, "91")

	_, err := svc.CreateRoute(context.Background(), req)

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Zero(t, routes.saveCalls)
}

func TestCreateRoute_ClassifiesForeignKeyViolations(t *testing.T) {
	cases := []struct {
		constraint string
		message    string
	}{
		{"fk_routes_initial_address_id", "Address not found"},
		{"fk_routes_final_address_id", "Address not found"},
		{"fk_routes_vehicle_id", "Vehicle not found"},
		{"fk_routes_driver_id", "Driver not found"},
		{"fk_routes_route_status", "Route status not found"},
	}

	for _, tc := range cases {
		t.Run(tc.constraint, func(t *testing.T) {
			routes := &fakeStore[domain.Route]{
				saveFn: func(*domain.Route) (*domain.Route, error) {
					return nil, &domain.ForeignKeyError{
						Message:    "generic",
						Constraint: tc.constraint,
					}
				},
			}
			svc := NewRouteService(routes, &fakeStore[domain.RouteStatus]{}, zap.NewNop())

			_, err := svc.CreateRoute(context.Background(), newRouteRequest(t))

			var fk *domain.ForeignKeyError
			require.ErrorAs(t, err, &fk)
			assert.Equal(t, tc.message, fk.Message)
			assert.NotEmpty(t, fk.Hint)
		})
	}
}

func TestUpdateRoute_RecomputesDistanceAndKeepsStartedAt(t *testing.T) {
	routeID := uuid.New()
	startedAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	routes := &fakeStore[domain.Route]{
		getFn: func(repository.Filter) (*domain.Route, error) {
			return &domain.Route{ID: routeID, StartedAt: startedAt}, nil
		},
		updateFn: func(_ uuid.UUID, row *domain.Route) (*domain.Route, error) {
			return row, nil
		},
	}
	svc := NewRouteService(routes, &fakeStore[domain.RouteStatus]{}, zap.NewNop())

	req := newRouteRequest(t)
	req.FinalLat = decPtr(t, "-22.90684600")
	req.FinalLong = decPtr(t, "-43.17289600")

	route, err := svc.UpdateRoute(context.Background(), routeID, req)
	require.NoError(t, err)

	assert.InDelta(t, 361000.0, route.TotalDistance.InexactFloat64(), 5000)
	assert.Equal(t, startedAt, route.StartedAt)
	assert.Equal(t, 1, routes.updateCalls)
}

func TestUpdateRoute_MissingRouteIsNotFound(t *testing.T) {
	routes := &fakeStore[domain.Route]{}
	svc := NewRouteService(routes, &fakeStore[domain.RouteStatus]{}, zap.NewNop())

	_, err := svc.UpdateRoute(context.Background(), uuid.New(), newRouteRequest(t))

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Zero(t, routes.updateCalls)
}

func TestGetRoute_MissingRowIsNotFound(t *testing.T) {
	svc := NewRouteService(&fakeStore[domain.Route]{}, &fakeStore[domain.RouteStatus]{}, zap.NewNop())

	_, err := svc.GetRoute(context.Background(), uuid.New())

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDeleteRoute_MissingRowIsNotFound(t *testing.T) {
	svc := NewRouteService(&fakeStore[domain.Route]{}, &fakeStore[domain.RouteStatus]{}, zap.NewNop())

	_, err := svc.DeleteRoute(context.Background(), uuid.New())

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGetStatusOfRoute_FollowsStatusReference(t *testing.T) {
	routeID := uuid.New()
	statusID := uuid.New()

	routes := &fakeStore[domain.Route]{
		getFn: func(repository.Filter) (*domain.Route, error) {
			return &domain.Route{ID: routeID, StatusID: statusID}, nil
		},
	}
	statuses := &fakeStore[domain.RouteStatus]{
		getFn: func(f repository.Filter) (*domain.RouteStatus, error) {
			require.NotNil(t, f.ID)
			assert.Equal(t, statusID, *f.ID)
			return &domain.RouteStatus{ID: statusID, Code: "IN_PROGRESS"}, nil
		},
	}
	svc := NewRouteService(routes, statuses, zap.NewNop())

	status, err := svc.GetStatusOfRoute(context.Background(), routeID)
	require.NoError(t, err)
	assert.Equal(t, "IN_PROGRESS", status.Code)
}

func TestCreateRouteStatus_DecoratesConflicts(t *testing.T) {
	statuses := &fakeStore[domain.RouteStatus]{
		saveFn: func(*domain.RouteStatus) (*domain.RouteStatus, error) {
			return nil, domain.NewConflictError("generic")
		},
	}
	svc := NewRouteService(&fakeStore[domain.Route]{}, statuses, zap.NewNop())

	_, err := svc.CreateRouteStatus(context.Background(), RegisterRouteStatusRequest{
		Code:        "CREATED",
		Description: "Route created",
	})

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "There is already a route status with the provided code", conflict.Message)
}
