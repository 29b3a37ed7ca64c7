package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/agendafacil/booking-platform/internal/adapters/database"
	"github.com/agendafacil/booking-platform/internal/adapters/events"
	"github.com/agendafacil/booking-platform/internal/adapters/identity"
	"github.com/agendafacil/booking-platform/internal/adapters/kvstore"
	"github.com/agendafacil/booking-platform/internal/api/handlers"
	"github.com/agendafacil/booking-platform/internal/api/routes"
	"github.com/agendafacil/booking-platform/internal/application/services"
	"github.com/agendafacil/booking-platform/internal/domain/providers"
	"github.com/agendafacil/booking-platform/internal/infrastructure/clients/postgres"
	"github.com/agendafacil/booking-platform/internal/infrastructure/clients/redis"
	"github.com/agendafacil/booking-platform/internal/infrastructure/observability"
	"github.com/agendafacil/booking-platform/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger("booking-platform", cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the key-value store backend
	var (
		store    providers.KVStore
		eventBus providers.EventBus
	)

	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()

		pgStore := kvstore.NewPostgresStore(pgClient)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure kv_store schema")
		}
		store = pgStore
		log.Info().Msg("PostgreSQL store initialized")

	case config.StoreBackendRedis:
		redisClient, err := redis.NewClient(&cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Redis client")
		}
		defer redisClient.Close()

		store = kvstore.NewRedisStore(redisClient)
		eventBus = events.NewRedisEventBus(redisClient)
		log.Info().Msg("Redis store initialized")

	case config.StoreBackendMemory:
		store = kvstore.NewMemoryStore()
		log.Warn().Msg("in-memory store initialized; data is lost on restart")

	default:
		log.Fatal().Str("backend", cfg.Store.Backend).Msg("unknown store backend")
	}

	// When Redis is not the primary store it can still carry the event
	// bus; events are best-effort either way.
	if eventBus == nil && cfg.Store.Backend != config.StoreBackendRedis {
		if redisClient, err := redis.NewClient(&cfg.Redis); err == nil {
			eventBus = events.NewRedisEventBus(redisClient)
			defer redisClient.Close()
			log.Info().Msg("Redis event bus initialized")
		} else {
			log.Warn().Err(err).Msg("event bus disabled; Redis unavailable")
		}
	}

	// Initialize the identity gateway
	var identityProvider providers.IdentityProvider
	switch cfg.Identity.Mode {
	case config.IdentityModeGoTrue:
		identityProvider = identity.NewGoTrueProvider(cfg.Identity.AuthURL, cfg.Identity.ServiceKey)
		log.Info().Str("auth_url", cfg.Identity.AuthURL).Msg("GoTrue identity gateway initialized")
	case config.IdentityModeJWT:
		identityProvider = identity.NewJWTProvider(cfg.Identity.JWTSecret)
		log.Info().Msg("local JWT identity gateway initialized")
	default:
		log.Fatal().Str("mode", cfg.Identity.Mode).Msg("unknown identity mode")
	}

	// Initialize repositories
	userAdapter := database.NewUserAdapter(store)
	institutionAdapter := database.NewInstitutionAdapter(store)
	serviceAdapter := database.NewServiceAdapter(store)
	appointmentAdapter := database.NewAppointmentAdapter(store)
	reviewAdapter := database.NewReviewAdapter(store)
	notificationAdapter := database.NewNotificationAdapter(store)

	// Initialize application services
	appointmentService := services.NewAppointmentService(appointmentAdapter, notificationAdapter, eventBus)
	reviewService := services.NewReviewService(reviewAdapter, serviceAdapter, eventBus)
	favoritesService := services.NewFavoritesService(userAdapter, serviceAdapter)
	notificationService := services.NewNotificationService(notificationAdapter)
	analyticsService := services.NewAnalyticsService(serviceAdapter, appointmentAdapter, reviewAdapter, userAdapter)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(identityProvider, userAdapter)
	institutionHandler := handlers.NewInstitutionHandler(institutionAdapter, userAdapter)
	serviceHandler := handlers.NewServiceHandler(serviceAdapter, userAdapter)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	favoritesHandler := handlers.NewFavoritesHandler(favoritesService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	var streamHandler *handlers.StreamHandler
	if eventBus != nil {
		streamHandler = handlers.NewStreamHandler(eventBus)
	}

	router := routes.NewRouter(
		identityProvider,
		authHandler,
		institutionHandler,
		serviceHandler,
		appointmentHandler,
		reviewHandler,
		favoritesHandler,
		notificationHandler,
		analyticsHandler,
		streamHandler,
	)

	handler := router.SetupRoutes()

	// WriteTimeout stays disabled so SSE connections on /events/{channel}
	// are not cut off mid-stream.
	server := &http.Server{
		Addr:        cfg.Server.Addr(),
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Error().Err(err).Msg("error closing event bus")
		}
	}

	log.Info().Msg("server stopped")
}
