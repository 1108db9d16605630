package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, time.Hour, cfg.Auth.ResetTTL)
	assert.NotEmpty(t, cfg.Catalog.GameIDs, "default catalog pool")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BASE_URL", "https://play.example.com")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("SESSION_TTL", "48h")
	t.Setenv("RESET_TOKEN_TTL", "30m")
	t.Setenv("REQUIRE_VERIFICATION", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "https://play.example.com", cfg.Server.BaseURL)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 48*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 30*time.Minute, cfg.Auth.ResetTTL)
	assert.True(t, cfg.Auth.RequireVerification)
}
