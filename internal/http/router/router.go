package router

import (
	"encoding/json"
	"net/http"

	"github.com/craftwise/proposal-api/internal/auth"
	"github.com/craftwise/proposal-api/internal/config"
	"github.com/craftwise/proposal-api/internal/database"
	"github.com/craftwise/proposal-api/internal/http/handler"
	"github.com/craftwise/proposal-api/internal/http/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/craftwise/proposal-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg                 *config.Config
	logger              *zap.Logger
	db                  *gorm.DB
	authMiddleware      *auth.Middleware
	rateLimiter         *middleware.RateLimiter
	proposalHandler     *handler.ProposalHandler
	publicHandler       *handler.PublicHandler
	contactHandler      *handler.ContactHandler
	settingsHandler     *handler.SettingsHandler
	notificationHandler *handler.NotificationHandler
	reviewsHandler      *handler.ReviewsHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	proposalHandler *handler.ProposalHandler,
	publicHandler *handler.PublicHandler,
	contactHandler *handler.ContactHandler,
	settingsHandler *handler.SettingsHandler,
	notificationHandler *handler.NotificationHandler,
	reviewsHandler *handler.ReviewsHandler,
) *Router {
	return &Router{
		cfg:                 cfg,
		logger:              logger,
		db:                  db,
		authMiddleware:      authMiddleware,
		rateLimiter:         rateLimiter,
		proposalHandler:     proposalHandler,
		publicHandler:       publicHandler,
		contactHandler:      contactHandler,
		settingsHandler:     settingsHandler,
		notificationHandler: notificationHandler,
		reviewsHandler:      reviewsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with detailed stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
			},
		})
	})

	// Combined readiness check
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if allHealthy {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "healthy",
				"checks": checks,
			})
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "unhealthy",
				"checks": checks,
			})
		}
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// Recipient-facing routes reached through the share token.
	// OptionalAuthenticate lets an authenticated owner preview a link
	// without triggering the viewed transition.
	r.Route("/p/{token}", func(r chi.Router) {
		r.Use(rt.authMiddleware.OptionalAuthenticate)
		r.Get("/", rt.publicHandler.ViewProposal)
		r.Post("/sign", rt.publicHandler.SignProposal)
		r.Post("/decline", rt.publicHandler.DeclineProposal)
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)

			// Proposals and templates
			r.Route("/proposals", func(r chi.Router) {
				r.Get("/", rt.proposalHandler.ListProposals)
				r.Post("/", rt.proposalHandler.CreateProposal)
				r.Get("/status-counts", rt.proposalHandler.GetStatusCounts)
				r.Get("/{id}", rt.proposalHandler.GetProposal)
				r.Put("/{id}", rt.proposalHandler.UpdateProposal)
				r.Delete("/{id}", rt.proposalHandler.DeleteProposal)

				// Lifecycle endpoints
				r.Post("/{id}/send", rt.proposalHandler.SendProposal)
				r.Put("/{id}/status", rt.proposalHandler.SetProposalStatus)
				r.Post("/{id}/clone", rt.proposalHandler.CloneProposal)
			})

			// Contacts
			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", rt.contactHandler.ListContacts)
				r.Post("/", rt.contactHandler.CreateContact)
				r.Get("/{id}", rt.contactHandler.GetContact)
				r.Put("/{id}", rt.contactHandler.UpdateContact)
				r.Delete("/{id}", rt.contactHandler.DeleteContact)
			})

			// Account settings
			r.Route("/settings", func(r chi.Router) {
				r.Get("/sow-prefix", rt.settingsHandler.GetSowPrefix)
				r.Put("/sow-prefix", rt.settingsHandler.SetSowPrefix)
			})

			// Notifications
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", rt.notificationHandler.ListNotifications)
				r.Get("/unread-count", rt.notificationHandler.GetUnreadCount)
				r.Post("/read-all", rt.notificationHandler.MarkAllAsRead)
				r.Post("/{id}/read", rt.notificationHandler.MarkAsRead)
			})

			// Review excerpts for the section editor
			r.Get("/reviews/excerpts", rt.reviewsHandler.ListExcerpts)
		})
	})

	return r
}
