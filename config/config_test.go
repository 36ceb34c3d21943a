package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Embedded(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := InitConfig()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Server.HTTPPort)
	assert.Equal(t, 60*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "tailcircle", cfg.JWT.Issuer)
	assert.Equal(t, 20, cfg.Feed.DefaultLimit)
	assert.Equal(t, 100, cfg.Feed.MaxLimit)
	assert.Equal(t, 25, cfg.Entitlements.FreeDailySwipes)
	assert.Equal(t, "localhost", cfg.Repositories.Postgres.Host)
}

func TestInitConfig_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TAILCIRCLE_JWT_SECRETKEY", "from-env")
	t.Setenv("TAILCIRCLE_ENTITLEMENTS_FREEDAILYSWIPES", "10")

	cfg, err := InitConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.SecretKey)
	assert.Equal(t, 10, cfg.Entitlements.FreeDailySwipes)
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.Feed.DefaultLimit = 500
	cfg.Feed.MaxLimit = 50
	cfg.applyDefaults()
	assert.Equal(t, 50, cfg.Feed.DefaultLimit)
	assert.Equal(t, 25, cfg.Entitlements.FreeDailySwipes)
	assert.Equal(t, "8000", cfg.Server.HTTPPort)
}
