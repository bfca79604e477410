package cache

import (
	"io"
	"log/slog"
	"testing"

	"greenlake/config"
	"greenlake/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.Config) Params {
	return Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNew_SelectsProvider(t *testing.T) {
	c, err := New(newParams(t, &config.Config{}))
	require.NoError(t, err)
	assert.IsType(t, &memoryCache{}, c)

	redisCfg := &config.Config{Cache: &config.CacheConfig{Provider: constants.CacheProviderRedis}}
	redisCfg.Cache.Redis.Addr = "localhost:6379"
	c, err = New(newParams(t, redisCfg))
	require.NoError(t, err)
	assert.IsType(t, &redisCache{}, c)

	_, err = New(newParams(t, &config.Config{Cache: &config.CacheConfig{Provider: constants.CacheProviderRedis}}))
	assert.Error(t, err)

	_, err = New(newParams(t, &config.Config{Cache: &config.CacheConfig{Provider: "memcached"}}))
	assert.Error(t, err)
}
