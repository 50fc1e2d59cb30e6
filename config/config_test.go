package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("JWT_ACCESS_TTL", "")
	t.Setenv("TRUSTED_PROXIES", "")

	cfg := Load()
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 30*time.Minute, cfg.AccessTTL)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.CORSOrigins())
	assert.Empty(t, cfg.TrustedProxyList())
}

func TestValidateRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	err := Load().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "s3cret")
	require.NoError(t, Load().Validate())
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "mysql")
	err := Load().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_ACCESS_TTL", "soon")
	assert.Equal(t, 30*time.Minute, Load().AccessTTL)
}

func TestTrustedProxyList(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.0/8, ,192.0.2.7 ")
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.7"}, Load().TrustedProxyList())
}
