package container

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-task-manager/config"
	"github.com/oksasatya/go-task-manager/internal/application"
	"github.com/oksasatya/go-task-manager/internal/infrastructure/migrations"
	"github.com/oksasatya/go-task-manager/internal/infrastructure/sqlite"
	"github.com/oksasatya/go-task-manager/pkg/helpers"
)

func TestNewWiresServicesOnOneStore(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(db, "sqlite", nil))

	cfg := &config.Config{GCSBucket: "avatars", BcryptCost: bcrypt.MinCost}
	jm, err := helpers.NewJWTManager("test-secret", time.Minute)
	require.NoError(t, err)

	c := New(cfg, helpers.NewDiscardLogger(), sqlite.NewRepositories(db), jm, nil, nil)
	assert.Nil(t, c.Redis)

	u, err := c.Auth.Register(ctx, "a@x.com", "pw123")
	require.NoError(t, err)
	_, err = c.Notes.CreateNote(ctx, u.ID, application.CreateNoteInput{Title: "first"})
	require.NoError(t, err)
	notes, err := c.Notes.ListNotes(ctx, u.ID, nil)
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	// a bucket name alone does not enable uploads without a client
	_, err = c.Profile.UploadAvatar(ctx, u.ID, bytes.NewReader([]byte("x")), "a.png", "image/png")
	assert.ErrorIs(t, err, application.ErrStorageUnavailable)
}
