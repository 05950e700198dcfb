package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/frotaops/route-manager/internal/application"
	"github.com/frotaops/route-manager/internal/config"
	"github.com/frotaops/route-manager/internal/database"
	"github.com/frotaops/route-manager/internal/domain"
	"github.com/frotaops/route-manager/internal/handler"
	"github.com/frotaops/route-manager/internal/logger"
	"github.com/frotaops/route-manager/internal/middleware"
	"github.com/frotaops/route-manager/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "route-manager")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting route-manager",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DB, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(
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
		); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.DB.URL(), "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize repositories
	countryRepo := repository.NewCountryRepository(db)
	stateRepo := repository.NewStateRepository(db)
	cityRepo := repository.NewCityRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	collaboratorRepo := repository.NewCollaboratorRepository(db)
	cnhTypeRepo := repository.NewCnhTypeRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	documentRepo := repository.NewVehicleDocumentRepository(db)
	routeStatusRepo := repository.NewRouteStatusRepository(db)
	routeRepo := repository.NewRouteRepository(db)

	// Initialize application services
	referenceService := application.NewReferenceService(countryRepo, stateRepo, cityRepo, addressRepo, log)
	collaboratorService := application.NewCollaboratorService(collaboratorRepo, driverRepo, cnhTypeRepo, log)
	vehicleService := application.NewVehicleService(vehicleRepo, documentRepo, log)
	routeService := application.NewRouteService(routeRepo, routeStatusRepo, log)

	// Seed the countries table from the external API when configured
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	countrySync := application.NewCountrySync(countryRepo, cfg.CountryAPI, log)
	go func() {
		if err := countrySync.Run(ctx); err != nil {
			log.Error("country sync failed", zap.Error(err))
		}
	}()

	// Initialize HTTP handlers
	healthHandler := handler.NewHealthHandler("Route Manager API")
	referenceHandler := handler.NewReferenceHandler(referenceService)
	collaboratorHandler := handler.NewCollaboratorHandler(collaboratorService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	routeHandler := handler.NewRouteHandler(routeService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	// Register routes
	healthHandler.RegisterRoutes(&router.RouterGroup)
	referenceHandler.RegisterRoutes(&router.RouterGroup)
	collaboratorHandler.RegisterRoutes(&router.RouterGroup)
	vehicleHandler.RegisterRoutes(&router.RouterGroup)
	routeHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down route-manager...")

	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("route-manager stopped")
}
