package cache

import (
	"context"
	"log/slog"

	"greenlake/config"
	"greenlake/internal/domain/constants"
	"greenlake/internal/domain/lifecycle"
	"greenlake/internal/domain/service"
	"greenlake/internal/errors"

	"go.uber.org/fx"
)

// Params holds dependencies for the cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New creates the cache selected by cache.provider
func New(params Params) (service.Cache, error) {
	cfg := params.Config.Cache
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.CacheProviderMemory {
		params.Logger.Info("Using in-memory catalog cache")

		return newMemoryCache(), nil
	}

	if cfg.Provider != constants.CacheProviderRedis {
		return nil, errors.Errorf("unknown cache provider: %s", cfg.Provider)
	}
	if cfg.Redis.Addr == "" {
		return nil, errors.New("redis address is required for redis cache")
	}

	rc := newRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	params.Logger.Info("Using Redis catalog cache", slog.String("addr", cfg.Redis.Addr))

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return rc.Ping(ctx)
		},
		OnStop: func(_ context.Context) error {
			return rc.Close()
		},
	})

	return rc, nil
}
