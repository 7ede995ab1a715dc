package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, time.Hour, cfg.Session.PurgeInterval)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, StatusPolicyPermissive, cfg.StatusPolicy)
	assert.True(t, cfg.DBSimpleProtocol)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow())
	assert.Equal(t, Login{MaxAttempts: 5, AttemptWindow: 15 * time.Minute, BlockDuration: 15 * time.Minute}, cfg.Login)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("STATUS_POLICY", "one_way")
	t.Setenv("FRONTEND_URL", "https://portal.example.com/")
	t.Setenv("GIN_MODE", "release")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, StatusPolicyOneWay, cfg.StatusPolicy)
	assert.Equal(t, "https://portal.example.com", cfg.FrontendURL)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "SESSION_SECRET")
}

func TestValidate_UnknownPolicy(t *testing.T) {
	cfg := &Config{Session: Session{Secret: "s", TTL: time.Hour}, StatusPolicy: "strict"}

	assert.ErrorContains(t, cfg.Validate(), "STATUS_POLICY")
}
