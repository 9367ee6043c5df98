//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kitforge/kitforge-service/config"
	"github.com/kitforge/kitforge-service/internal/circuitbreaker"
	"github.com/kitforge/kitforge-service/internal/mocks"
	"github.com/kitforge/kitforge-service/internal/service"
)

func TestInitializeRouter(t *testing.T) {
	estimator := service.NewEstimatorService()

	tests := []struct {
		name         string
		dbComponents *DatabaseComponents
		cfg          config.Config
		validate     func(*testing.T, *RouterComponents)
	}{
		{
			name:         "without database components",
			dbComponents: nil,
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  100,
					RateWindow: time.Minute,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Handler)
				assert.NotNil(t, components.HealthHandler)
				assert.Nil(t, components.Config.AuthService)
				assert.Nil(t, components.Config.KitCardService)
				assert.Nil(t, components.Config.LoggingService)
			},
		},
		{
			name: "with database components",
			dbComponents: &DatabaseComponents{
				CardsRepo:           new(mocks.MockKitCardsRepositoryInterface),
				UserRepo:            new(mocks.MockUserRepositoryInterface),
				LoggingService:      new(mocks.MockLoggingService),
				CardsCircuitBreaker: circuitbreaker.New(circuitbreaker.DefaultConfig()),
				LogsCircuitBreaker:  circuitbreaker.New(circuitbreaker.DefaultConfig()),
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  100,
					RateWindow: time.Minute,
				},
				Auth: config.AuthConfig{
					JWTSecretKey:   "test-secret",
					AccessTokenTTL: 15 * time.Minute,
				},
				Estimator: config.EstimatorConfig{
					FreeTierCardLimit: 5,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Handler)
				assert.NotNil(t, components.HealthHandler)
				assert.NotNil(t, components.Config.AuthService)
				assert.NotNil(t, components.Config.KitCardService)
				assert.NotNil(t, components.Config.LoggingService)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeRouter(estimator, tt.dbComponents, tt.cfg)

			assert.NotNil(t, components)
			assert.Equal(t, tt.cfg.Server.RateLimit, components.Config.RateLimit)
			assert.True(t, components.Config.EnableIdempotency)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}
