package main

import (
	"log"
	"os"

	"github.com/eventdesk/eventdesk-api/internal/application/service"
	"github.com/eventdesk/eventdesk-api/internal/config"
	"github.com/eventdesk/eventdesk-api/internal/infrastructure/database"
	"github.com/eventdesk/eventdesk-api/internal/infrastructure/repository"
	"github.com/eventdesk/eventdesk-api/internal/presentation/http/handler"
	"github.com/eventdesk/eventdesk-api/internal/presentation/http/routes"
	"github.com/eventdesk/eventdesk-api/pkg/printer"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	stallRepo := repository.NewStallRepository(db)
	productRepo := repository.NewProductRepository(db)
	billingRepo := repository.NewBillingRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	programRepo := repository.NewProgramRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	stallService := service.NewStallService(stallRepo)
	productService := service.NewProductService(productRepo, stallRepo)
	billingService := service.NewBillingService(billingRepo, stallRepo, productRepo)
	registrationService := service.NewRegistrationService(registrationRepo)
	paymentService := service.NewPaymentService(paymentRepo, billingRepo, stallRepo, productRepo)
	programService := service.NewProgramService(programRepo)
	teamService := service.NewTeamService(teamRepo)
	ledgerService := service.NewLedgerService(billingRepo, registrationRepo)
	dashboardService := service.NewDashboardService(stallRepo, productRepo, billingRepo, registrationRepo, programRepo, teamRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, billingRepo, registrationRepo, cfg.Printer, cfg.Event)

	// Initialize handlers
	handlers := &routes.Handlers{
		Stall:        handler.NewStallHandler(stallService),
		Product:      handler.NewProductHandler(productService),
		Bill:         handler.NewBillHandler(billingService),
		Registration: handler.NewRegistrationHandler(registrationService),
		Payment:      handler.NewPaymentHandler(paymentService),
		Program:      handler.NewProgramHandler(programService),
		Team:         handler.NewTeamHandler(teamService),
		Ledger:       handler.NewLedgerHandler(ledgerService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Printer:      handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
