package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-task-manager/internal/application"
	"github.com/oksasatya/go-task-manager/internal/domain/entity"
	"github.com/oksasatya/go-task-manager/internal/domain/repository"
	"github.com/oksasatya/go-task-manager/internal/infrastructure/migrations"
	"github.com/oksasatya/go-task-manager/internal/infrastructure/sqlite"
	"github.com/oksasatya/go-task-manager/pkg/helpers"
)

type services struct {
	repos     repository.Repositories
	auth      *application.AuthService
	profile   *application.ProfileService
	notes     *application.NoteService
	notebooks *application.NotebookService
}

func newServices(t *testing.T) *services {
	t.Helper()
	return newServicesWithTTL(t, 30*time.Minute)
}

func newServicesWithTTL(t *testing.T, ttl time.Duration) *services {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(db, "sqlite", nil))
	repos := sqlite.NewRepositories(db)

	jm, err := helpers.NewJWTManager("test-secret", ttl)
	require.NoError(t, err)
	logger := helpers.NewDiscardLogger()

	return &services{
		repos:     repos,
		auth:      application.NewAuthService(repos.Users, jm, logger, bcrypt.MinCost),
		profile:   application.NewProfileService(repos.Users, nil, logger),
		notes:     application.NewNoteService(repos.Notes, repos.Notebooks, logger),
		notebooks: application.NewNotebookService(repos.Notebooks, repos.Notes, logger),
	}
}

func (s *services) register(t *testing.T, email string) *entity.User {
	t.Helper()
	u, err := s.auth.Register(context.Background(), email, "pw-"+email)
	require.NoError(t, err)
	return u
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
