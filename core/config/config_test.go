package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopress/gopress/core/config"
)

func TestLoadFromEnvironment(t *testing.T) {
	type appConfig struct {
		Name    string        `env:"TEST_APP_NAME" envDefault:"gopress"`
		Timeout time.Duration `env:"TEST_APP_TIMEOUT" envDefault:"5s"`
	}

	t.Setenv("TEST_APP_NAME", "custom")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "custom", cfg.Name)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadCachesPerType(t *testing.T) {
	type cachedConfig struct {
		Value string `env:"TEST_CACHED_VALUE" envDefault:"initial"`
	}

	t.Setenv("TEST_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	// A changed environment does not invalidate the cache.
	t.Setenv("TEST_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestLoadRejectsNonStructPointer(t *testing.T) {
	t.Parallel()

	assert.Error(t, config.Load(nil))
	assert.Error(t, config.Load(42))

	var s string
	assert.Error(t, config.Load(&s))
}

func TestMustLoadPanicsOnFailure(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		config.MustLoad(nil)
	})
}
