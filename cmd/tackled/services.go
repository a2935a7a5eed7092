package main

import (
	"context"
	"log/slog"

	"github.com/harrisonbray/tackle"
	"github.com/harrisonbray/tackle/engine"
	"github.com/harrisonbray/tackle/internal/email"
	"github.com/harrisonbray/tackle/internal/storage"
	"github.com/harrisonbray/tackle/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Services holds all application services.
type Services struct {
	DueDateService             tackle.DueDateService
	SchedulingService          tackle.SchedulingService
	MultiInspectService        tackle.MultiInspectService
	InspectionService          tackle.InspectionService
	HoldingService             tackle.HoldingService
	ScheduledInspectionService tackle.ScheduledInspectionService
	FileStorage                tackle.FileStorage
	EmailService               tackle.EmailService
}

// initServices initializes all application services.
func initServices(ctx context.Context, pool *pgxpool.Pool, cfg *Config, logger *slog.Logger) (*Services, error) {
	// Initialize database wrapper with all repositories
	db := postgres.NewDB(pool)
	logger.Info("database services initialized")

	// Initialize file storage
	fileStorage, err := initFileStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("file storage initialized", slog.String("provider", cfg.StorageProvider))

	// Initialize email service
	emailService := initEmailService(cfg, logger)
	logger.Info("email service initialized", slog.String("provider", cfg.EmailProvider))

	// Domain engines over the repositories
	dueDates := engine.NewDueDateEngine(logger, db.HoldingService, db.InspectionService, db.ScheduledInspectionService)
	scheduler := engine.NewScheduler(logger, db.HoldingService, db.InspectorService, db.ScheduledInspectionService)
	multiInspector := engine.NewMultiInspector(logger, db.CustomerService, db.HoldingService, db.InspectorService, db.InspectionService)

	return &Services{
		DueDateService:             dueDates,
		SchedulingService:          scheduler,
		MultiInspectService:        multiInspector,
		InspectionService:          db.InspectionService,
		HoldingService:             db.HoldingService,
		ScheduledInspectionService: db.ScheduledInspectionService,
		FileStorage:                fileStorage,
		EmailService:               emailService,
	}, nil
}

// initFileStorage creates the appropriate file storage implementation.
func initFileStorage(ctx context.Context, cfg *Config, logger *slog.Logger) (tackle.FileStorage, error) {
	logger.Debug("storage service configuration",
		slog.String("provider", cfg.StorageProvider),
		slog.String("local_path", cfg.StorageLocalPath),
		slog.String("s3_bucket", cfg.StorageS3Bucket),
		slog.String("s3_region", cfg.StorageS3Region))

	storageCfg := tackle.StorageConfig{
		Provider:  cfg.StorageProvider,
		LocalPath: cfg.StorageLocalPath,
		LocalURL:  cfg.StorageLocalURL,
		S3Bucket:  cfg.StorageS3Bucket,
		S3Region:  cfg.StorageS3Region,
		S3BaseURL: cfg.StorageS3BaseURL,
	}

	return storage.NewFileStorage(ctx, logger, storageCfg)
}

// initEmailService creates the appropriate email service implementation.
func initEmailService(cfg *Config, logger *slog.Logger) tackle.EmailService {
	logger.Debug("email service configuration",
		slog.String("provider", cfg.EmailProvider),
		slog.String("from_address", cfg.EmailFromAddress),
		slog.String("from_name", cfg.EmailFromName))

	emailCfg := tackle.EmailConfig{
		Provider:             cfg.EmailProvider,
		FromAddress:          cfg.EmailFromAddress,
		FromName:             cfg.EmailFromName,
		PostmarkServerToken:  cfg.EmailPostmarkToken,
		PostmarkAccountToken: cfg.EmailPostmarkAccount,
	}

	return email.NewEmailService(logger, emailCfg)
}
