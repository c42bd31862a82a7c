package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/recibos/ticketero-api/internal/application/service"
	"github.com/recibos/ticketero-api/internal/config"
	"github.com/recibos/ticketero-api/internal/domain/repository"
	"github.com/recibos/ticketero-api/internal/infrastructure/database"
	infraRepo "github.com/recibos/ticketero-api/internal/infrastructure/repository"
	"github.com/recibos/ticketero-api/internal/infrastructure/spreadsheet"
	"github.com/recibos/ticketero-api/internal/infrastructure/storage"
	"github.com/recibos/ticketero-api/internal/presentation/http/handler"
	"github.com/recibos/ticketero-api/internal/presentation/http/routes"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Tabular store: one workbook, opened fresh per request
	source := spreadsheet.NewExcelSource(cfg.Workbook.Path)

	// Initialize repositories
	customerRepo := infraRepo.NewCustomerRepository(source, cfg.Workbook.CustomerSheet, logger)
	lineItemRepo := infraRepo.NewLineItemRepository(source, cfg.Workbook.LineSheet, logger)
	receiptLogRepo := newReceiptLogRepo(cfg, logger)

	// Blob store
	store, err := newBlobStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize blob store: %v", err)
	}

	// Initialize services
	calculator := service.NewTaxCalculator(cfg.Tax.Rate)
	renderer := service.NewPDFRenderer(cfg.App.StoreName)
	ticketService := service.NewTicketService(
		customerRepo,
		lineItemRepo,
		receiptLogRepo,
		calculator,
		renderer,
		store,
		logger,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Ticket: handler.NewTicketHandler(ticketService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:    cfg,
		Logger: logger,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logger.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env))

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.App.Env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// newReceiptLogRepo connects the audit database when one is configured.
// Auditing is optional; a missing or unreachable database downgrades to a
// no-op repository with a warning.
func newReceiptLogRepo(cfg *config.Config, logger *zap.Logger) repository.ReceiptLogRepository {
	if !cfg.Database.AuditEnabled() {
		logger.Info("no audit database configured, receipt logging disabled")
		return infraRepo.NewNoopReceiptLogRepository()
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logger.Warn("failed to connect to audit database, receipt logging disabled", zap.Error(err))
		return infraRepo.NewNoopReceiptLogRepository()
	}

	if err := database.AutoMigrate(db); err != nil {
		logger.Warn("failed to run audit migrations, receipt logging disabled", zap.Error(err))
		return infraRepo.NewNoopReceiptLogRepository()
	}

	return infraRepo.NewReceiptLogRepository(db)
}

func newBlobStore(cfg *config.Config) (storage.BlobStore, error) {
	switch cfg.Storage.Backend {
	case "s3":
		return storage.NewS3Store(context.Background(), storage.S3Options{
			Bucket:   cfg.Storage.Bucket,
			Region:   cfg.Storage.Region,
			Prefix:   cfg.Storage.KeyPrefix,
			Endpoint: cfg.Storage.Endpoint,
		})
	default:
		return storage.NewLocalStore(cfg.Storage.LocalPath, cfg.Storage.LocalBaseURL), nil
	}
}
