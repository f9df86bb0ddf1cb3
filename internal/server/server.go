package server

import (
	"fmt"
	"net/http"
	"time"

	"farmmarket/internal/cart"
	"farmmarket/internal/catalog"
	"farmmarket/internal/config"
	"farmmarket/internal/domain"
	custommiddleware "farmmarket/internal/middleware"
	"farmmarket/internal/monitoring"
	"farmmarket/internal/repository"
	"farmmarket/internal/service"
	"farmmarket/internal/session"
	"farmmarket/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(nil, cfg.Server.Env == "development"))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))

	// Optional Redis-backed rate limiting
	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         "ratelimit",
		}, logger))
	}

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize stores and session manager
	catalogStore := catalog.NewDefaultStore()
	monitoringStore := monitoring.NewStore()
	sessions := session.NewManager(cfg.Listing.MaxImageBytes)
	calculator := cart.NewCalculator(
		cfg.Pricing.FreeDeliveryThreshold,
		cfg.Pricing.DeliveryFee,
		cfg.Pricing.TaxRate,
	)

	// Initialize repositories and services
	userRepo := repository.NewUserRepository()
	authService := service.NewAuthService(
		userRepo,
		sessions,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessExpiry)*time.Minute,
	)

	// Initialize handlers
	authHandler := transport.NewAuthHandler(authService, logger)
	catalogHandler := transport.NewCatalogHandler(catalogStore, logger)
	cartHandler := transport.NewCartHandler(sessions, catalogStore, calculator, logger)
	wishlistHandler := transport.NewWishlistHandler(sessions, catalogStore, logger)
	surveyHandler := transport.NewSurveyHandler(sessions, logger)
	listingHandler := transport.NewListingHandler(sessions, logger)
	monitoringHandler := transport.NewMonitoringHandler(monitoringStore, logger)

	// Create auth middleware
	authMiddleware := custommiddleware.AuthMiddleware(authService, logger)

	// Public routes
	authHandler.RegisterRoutes(router, authMiddleware)
	catalogHandler.RegisterRoutes(router)

	// Consumer routes
	router.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(custommiddleware.RequireUserType(string(domain.UserTypeConsumer), logger))

		cartHandler.RegisterRoutes(r)
		wishlistHandler.RegisterRoutes(r)
	})

	// Farmer routes
	router.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(custommiddleware.RequireUserType(string(domain.UserTypeFarmer), logger))

		surveyHandler.RegisterRoutes(r)
		listingHandler.RegisterRoutes(r)
		monitoringHandler.RegisterRoutes(r)
	})

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		redis:  redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
