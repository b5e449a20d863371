// Package api provides the HTTP API for NutriLog.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/nutrilog/nutrilog/internal/api/handler"
	"github.com/nutrilog/nutrilog/internal/api/middleware"
	"github.com/nutrilog/nutrilog/internal/auth"
	"github.com/nutrilog/nutrilog/internal/diary"
	"github.com/nutrilog/nutrilog/internal/profile"
	"github.com/nutrilog/nutrilog/internal/reference"
	"github.com/nutrilog/nutrilog/internal/weight"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version         string
	BuildTime       string
	Logger          zerolog.Logger
	ServiceName     string
	Metrics         *middleware.Metrics
	DiaryMetrics    *middleware.DiaryMetrics
	JWTService      *auth.JWTService
	ProfileService  *profile.Service
	DiaryService    *diary.Service
	WeightService   *weight.Service
	FoodCatalog     *reference.FoodCatalog
	ActivityCatalog *reference.ActivityCatalog
	DB              handler.Pinger
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "nutrilog-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type
	r.Use(middleware.RequireJSON)          // Reject non-JSON request bodies

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.DB)
	referenceHandler := handler.NewReferenceHandler(cfg.FoodCatalog, cfg.ActivityCatalog)
	profileHandler := handler.NewProfileHandler(cfg.ProfileService)
	diaryHandler := handler.NewDiaryHandler(cfg.DiaryService, cfg.DiaryMetrics)
	weightHandler := handler.NewWeightHandler(cfg.WeightService)

	authMiddleware := middleware.Auth(cfg.JWTService)

	searchRateLimit := middleware.RateLimitByIP(middleware.SearchRateLimit)      // 120 req/min
	userRateLimit := middleware.RateLimitByUser(middleware.StandardRateLimit)    // 100 req/min per user
	userWriteRateLimit := middleware.RateLimitByUser(middleware.WriteRateLimit)  // 60 req/min per user

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
		})

		// Reference search endpoints (public) - per-keystroke traffic
		r.Route("/reference", func(r chi.Router) {
			r.Use(searchRateLimit)
			r.Get("/foods", referenceHandler.SearchFoods)
			r.Get("/activities", referenceHandler.SearchActivities)
		})

		// Me endpoints (authenticated) - user-based rate limiting
		r.Route("/me", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(userRateLimit)

			// Profile
			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profileHandler.GetProfile)
				r.With(userWriteRateLimit).Put("/", profileHandler.UpsertProfile)
				r.Get("/metrics", profileHandler.GetMetrics)
			})

			// Diary
			r.Route("/diary", func(r chi.Router) {
				r.Get("/", diaryHandler.GetRange)
				r.Get("/stats", diaryHandler.GetStats)
				r.Route("/{date}", func(r chi.Router) {
					r.Get("/", diaryHandler.GetDay)
					r.With(userWriteRateLimit).Post("/copy", diaryHandler.CopyMeals)

					r.Route("/meals/{mealType}/items", func(r chi.Router) {
						r.Use(userWriteRateLimit)
						r.Post("/", diaryHandler.AddFood)
						r.Delete("/{itemID}", diaryHandler.RemoveFood)
					})

					r.Route("/activities", func(r chi.Router) {
						r.Use(userWriteRateLimit)
						r.Post("/", diaryHandler.AddActivity)
						r.Delete("/{activityID}", diaryHandler.RemoveActivity)
					})
				})
			})

			// Weight series
			r.Route("/weight", func(r chi.Router) {
				r.Get("/", weightHandler.ListWeights)
				r.With(userWriteRateLimit).Post("/", weightHandler.AddWeight)
				r.Get("/stats", weightHandler.GetWeightStats)
				r.With(userWriteRateLimit).Delete("/{entryID}", weightHandler.DeleteWeight)
			})
		})
	})

	return r
}
