package container

import (
	"cloud.google.com/go/storage"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-task-manager/config"
	"github.com/oksasatya/go-task-manager/internal/application"
	"github.com/oksasatya/go-task-manager/internal/domain/repository"
	"github.com/oksasatya/go-task-manager/internal/infrastructure/objectstore"
	"github.com/oksasatya/go-task-manager/pkg/helpers"
)

// Container holds the components constructed at startup so router modules
// can be wired from one place. A nil Redis client disables rate limiting.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Redis  *redis.Client

	Auth      *application.AuthService
	Profile   *application.ProfileService
	Notes     *application.NoteService
	Notebooks *application.NotebookService
}

// New builds the application services on top of the given repositories.
func New(cfg *config.Config, logger *logrus.Logger, repos repository.Repositories, jwt *helpers.JWTManager, rdb *redis.Client, gcs *storage.Client) *Container {
	var avatars application.AvatarStorage
	if gcs != nil && cfg.GCSBucket != "" {
		avatars = objectstore.NewGCSAvatarStore(gcs, cfg.GCSBucket)
	}
	return &Container{
		Config: cfg,
		Logger: logger,
		Redis:  rdb,

		Auth:      application.NewAuthService(repos.Users, jwt, logger, cfg.BcryptCost),
		Profile:   application.NewProfileService(repos.Users, avatars, logger),
		Notes:     application.NewNoteService(repos.Notes, repos.Notebooks, logger),
		Notebooks: application.NewNotebookService(repos.Notebooks, repos.Notes, logger),
	}
}
