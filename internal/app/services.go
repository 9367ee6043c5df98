// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/kitforge/kitforge-service/config"
	"github.com/kitforge/kitforge-service/internal/service"
	"github.com/kitforge/kitforge-service/internal/service/cache"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Estimator service.Estimator
}

// InitializeServices initializes the estimation pipeline with the configured
// print speed and cache backend.
func InitializeServices(cfg config.Config) *ServiceComponents {
	var opts []service.Option

	if cfg.Estimator.DefaultPrintSpeed > 0 {
		opts = append(opts, service.WithDefaultPrintSpeed(cfg.Estimator.DefaultPrintSpeed))
	}

	switch cfg.Cache.Backend {
	case "redis":
		redisCache := cache.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB, cfg.Cache.TTL)
		opts = append(opts, service.WithCacheInterface(redisCache))
		log.Info().Str("addr", cfg.Cache.RedisAddr).Msg("Using Redis estimate cache")
	case "none":
		// Caching disabled
	default:
		if cfg.Cache.Size > 0 {
			opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
		}
	}

	estimator := service.NewEstimatorService(opts...)

	return &ServiceComponents{
		Estimator: estimator,
	}
}
