//go:build integration

package main_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgmodule "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/frotaops/route-manager/internal/application"
	"github.com/frotaops/route-manager/internal/domain"
	"github.com/frotaops/route-manager/internal/repository"
)

// testStack holds the wired-up services backed by a real PostgreSQL
// container.
type testStack struct {
	DB           *gorm.DB
	Reference    *application.ReferenceService
	Collaborator *application.CollaboratorService
	Vehicle      *application.VehicleService
	Route        *application.RouteService
}

// setupDatabase starts a PostgreSQL testcontainer and returns a connected,
// migrated GORM DB.
func setupDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := pgmodule.Run(ctx, "postgres:16-alpine",
		pgmodule.WithDatabase("test_routes"),
		pgmodule.WithUsername("test"),
		pgmodule.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	var db *gorm.DB
	require.Eventually(t, func() bool {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			return false
		}
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, 30*time.Second, 1*time.Second, "PostgreSQL not ready for connections")

	require.NoError(t, db.AutoMigrate(
		&domain.Country{},
		&domain.State{},
		&domain.City{},
		&domain.Address{},
		&domain.Collaborator{},
		&domain.CnhType{},
		&domain.Driver{},
		&domain.Vehicle{},
		&domain.VehicleDocument{},
		&domain.RouteStatus{},
		&domain.Route{},
	))

	return db
}

// setupStack wires repositories and services over the given DB.
func setupStack(t *testing.T, db *gorm.DB) *testStack {
	t.Helper()
	log := zap.NewNop()

	return &testStack{
		DB: db,
		Reference: application.NewReferenceService(
			repository.NewCountryRepository(db),
			repository.NewStateRepository(db),
			repository.NewCityRepository(db),
			repository.NewAddressRepository(db),
			log,
		),
		Collaborator: application.NewCollaboratorService(
			repository.NewCollaboratorRepository(db),
			repository.NewDriverRepository(db),
			repository.NewCnhTypeRepository(db),
			log,
		),
		Vehicle: application.NewVehicleService(
			repository.NewVehicleRepository(db),
			repository.NewVehicleDocumentRepository(db),
			log,
		),
		Route: application.NewRouteService(
			repository.NewRouteRepository(db),
			repository.NewRouteStatusRepository(db),
			log,
		),
	}
}

// seedCountry inserts a country with unique codes derived from n.
func seedCountry(t *testing.T, stack *testStack, n int) *domain.Country {
	t.Helper()
	country, err := stack.Reference.CreateCountry(context.Background(), application.RegisterCountryRequest{
		Name:     fmt.Sprintf("Country %03d %s", n, uuid.NewString()[:8]),
		Alpha2:   fmt.Sprintf("%c%c", 'A'+n/26%26, 'A'+n%26),
		Alpha3:   fmt.Sprintf("%c%c%c", 'A'+n/676%26, 'A'+n/26%26, 'A'+n%26),
		Numeric3: fmt.Sprintf("%03d", n),
	})
	require.NoError(t, err)
	return country
}

// seedVehicleAndStatus creates the rows a route needs.
func seedVehicleAndStatus(t *testing.T, stack *testStack) (*domain.Vehicle, *domain.RouteStatus) {
	t.Helper()
	ctx := context.Background()

	vehicle, err := stack.Vehicle.CreateVehicle(ctx, application.RegisterVehicleRequest{
		Name:           "Truck " + uuid.NewString()[:8],
		InitialMileage: 1000,
		ActualMileage:  1500,
	})
	require.NoError(t, err)

	status, err := stack.Route.CreateRouteStatus(ctx, application.RegisterRouteStatusRequest{
		Code:        "ST" + uuid.NewString()[:8],
		Description: "integration status",
	})
	require.NoError(t, err)

	return vehicle, status
}
