package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/craftwise/proposal-api/docs"
	"github.com/craftwise/proposal-api/internal/auth"
	"github.com/craftwise/proposal-api/internal/config"
	"github.com/craftwise/proposal-api/internal/database"
	"github.com/craftwise/proposal-api/internal/http/handler"
	"github.com/craftwise/proposal-api/internal/http/middleware"
	"github.com/craftwise/proposal-api/internal/http/router"
	"github.com/craftwise/proposal-api/internal/jobs"
	"github.com/craftwise/proposal-api/internal/logger"
	"github.com/craftwise/proposal-api/internal/repository"
	"github.com/craftwise/proposal-api/internal/reviews"
	"github.com/craftwise/proposal-api/internal/service"
	"github.com/craftwise/proposal-api/internal/storage"
	"go.uber.org/zap"
)

// @title Craftwise Proposal API
// @version 1.0
// @description Proposal and statement-of-work lifecycle API with pricing, document numbering and e-signing

// @contact.name API Support
// @contact.email support@craftwise.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch basicCfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "proposals-staging.craftwise.io"
	case "production":
		docs.SwaggerInfo.Host = "api.craftwise.io"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Storage for signature images
	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Reviews database connection (optional, read-only).
	// The app continues without it if not configured.
	var reviewsClient *reviews.Client
	if cfg.Reviews.Enabled {
		reviewsClient, err = reviews.NewClient(&cfg.Reviews, log)
		if err != nil {
			log.Warn("Reviews connection failed, continuing without it",
				zap.Error(err),
			)
		}
	} else {
		log.Info("Reviews database not configured, skipping")
	}

	// Initialize repositories
	proposalRepo := repository.NewProposalRepository(db)
	contactRepo := repository.NewContactRepository(db)
	signatureRepo := repository.NewSignatureRepository(db)
	prefixRepo := repository.NewSowPrefixRepository(db)
	sequenceRepo := repository.NewSowSequenceRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	numberingService := service.NewNumberingService(prefixRepo, sequenceRepo, proposalRepo, log)
	notificationService := service.NewNotificationService(notificationRepo, userRepo, log)
	contactService := service.NewContactService(contactRepo, log)
	proposalService := service.NewProposalService(proposalRepo, contactRepo, numberingService, log)
	lifecycleService := service.NewLifecycleService(proposalRepo, signatureRepo, proposalService, notificationService, fileStorage, log)

	// Initialize middleware
	authMiddleware := auth.NewMiddleware(cfg, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	proposalHandler := handler.NewProposalHandler(proposalService, lifecycleService, log)
	publicHandler := handler.NewPublicHandler(lifecycleService, log)
	contactHandler := handler.NewContactHandler(contactService, log)
	settingsHandler := handler.NewSettingsHandler(numberingService, log)
	notificationHandler := handler.NewNotificationHandler(notificationService, log)
	reviewsHandler := handler.NewReviewsHandler(reviewsClient, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		rateLimiter,
		proposalHandler,
		publicHandler,
		contactHandler,
		settingsHandler,
		notificationHandler,
		reviewsHandler,
	)

	// Daily expiry sweep and expiring-soon reminders
	var scheduler *jobs.Scheduler
	if cfg.Reminders.Enabled {
		scheduler = jobs.NewScheduler(log)
		if err := jobs.RegisterExpiryJob(
			scheduler,
			lifecycleService,
			log,
			cfg.Reminders.Schedule,
			cfg.Reminders.ExpiringSoonDays,
		); err != nil {
			log.Error("Failed to register expiry job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with expiry job",
				zap.String("cron_expr", cfg.Reminders.Schedule),
				zap.Int("expiring_soon_days", cfg.Reminders.ExpiringSoonDays),
			)
		}
	} else {
		log.Info("Reminders disabled, scheduler not started")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		if reviewsClient != nil {
			if err := reviewsClient.Close(); err != nil {
				log.Warn("Error closing reviews connection", zap.Error(err))
			}
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
