// Package app provides router configuration.
package app

import (
	"github.com/kitforge/kitforge-service/config"
	"github.com/kitforge/kitforge-service/internal/http"
	"github.com/kitforge/kitforge-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	estimator service.Estimator,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	handler := http.NewHandler(estimator)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.CardsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_kit_cards", dbComponents.CardsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	// Authentication and kit cards need user storage; both stay disabled
	// when the service runs without MongoDB.
	var authService service.AuthService
	var cardService service.KitCardService
	if dbComponents != nil && dbComponents.UserRepo != nil {
		authService = service.NewAuthService(dbComponents.UserRepo, service.AuthConfig{
			JWTSecret:     cfg.Auth.JWTSecretKey,
			TokenDuration: cfg.Auth.AccessTokenTTL,
		})

		cardService = service.NewKitCardService(
			dbComponents.CardsRepo,
			dbComponents.UserRepo,
			estimator,
			service.WithFreeTierLimit(cfg.Estimator.FreeTierCardLimit),
		)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		AuthService:       authService,
		KitCardService:    cardService,
		Estimator:         estimator,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
