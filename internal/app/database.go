// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/kitforge/kitforge-service/config"
	"github.com/kitforge/kitforge-service/internal/circuitbreaker"
	"github.com/kitforge/kitforge-service/internal/repository"
	"github.com/kitforge/kitforge-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	CardsRepo           repository.KitCardsRepositoryInterface
	UserRepo            repository.UserRepositoryInterface
	LoggingService      service.LoggingService
	CardsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker  *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	cardsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-kit-cards",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	cardsRepo := repository.NewKitCardsRepository(db)
	cardsRepoWithCB := repository.NewKitCardsRepositoryWithCircuitBreaker(cardsRepo, cardsCB)

	userRepo := repository.NewUserRepository(db.Database)

	return &DatabaseComponents{
		CardsRepo:           cardsRepoWithCB,
		UserRepo:            userRepo,
		LoggingService:      loggingService,
		CardsCircuitBreaker: cardsCB,
		LogsCircuitBreaker:  logsCB,
	}
}
