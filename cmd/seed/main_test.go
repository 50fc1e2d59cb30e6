package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-task-manager/config"
	"github.com/oksasatya/go-task-manager/pkg/helpers"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "seed.db"),
		JWTSecret:  "test-secret",
		AccessTTL:  30 * time.Minute,
		BcryptCost: bcrypt.MinCost,
	}
}

func TestRunRefusesMissingSecret(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.JWTSecret = ""

	var out bytes.Buffer
	err := run(context.Background(), cfg, helpers.NewDiscardLogger(), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Empty(t, out.String())
}

func TestRunSeedsOnce(t *testing.T) {
	ctx := context.Background()
	cfg := sqliteConfig(t)

	var out bytes.Buffer
	require.NoError(t, run(ctx, cfg, helpers.NewDiscardLogger(), &out))
	assert.Contains(t, out.String(), "seeded user: id=1 email="+demoEmail)
	assert.Contains(t, out.String(), `title="Review pull requests"`)

	out.Reset()
	require.NoError(t, run(ctx, cfg, helpers.NewDiscardLogger(), &out))
	assert.Contains(t, out.String(), "already exists")
}
