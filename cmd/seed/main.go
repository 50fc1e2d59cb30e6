package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-task-manager/config"
	"github.com/oksasatya/go-task-manager/internal/application"
	dbstorage "github.com/oksasatya/go-task-manager/internal/infrastructure/storage"
	"github.com/oksasatya/go-task-manager/pkg/helpers"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "password123"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	if err := run(context.Background(), cfg, logger, os.Stdout); err != nil {
		log.Fatalf("seed: %v", err)
	}
}

// run seeds a demo user with one notebook and a few notes. It is a no-op
// when the demo user already exists.
func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	backend, err := dbstorage.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer backend.Close()

	jwtManager, err := helpers.NewJWTManager(cfg.JWTSecret, cfg.AccessTTL)
	if err != nil {
		return fmt.Errorf("init JWT manager: %w", err)
	}

	auth := application.NewAuthService(backend.Repos.Users, jwtManager, logger, cfg.BcryptCost)
	notebooks := application.NewNotebookService(backend.Repos.Notebooks, backend.Repos.Notes, logger)
	notes := application.NewNoteService(backend.Repos.Notes, backend.Repos.Notebooks, logger)

	user, err := auth.Register(ctx, demoEmail, demoPassword)
	switch {
	case errors.Is(err, application.ErrDuplicateEmail):
		fmt.Fprintf(out, "user %s already exists, nothing to seed\n", demoEmail)
		return nil
	case err != nil:
		return fmt.Errorf("seed user: %w", err)
	}
	fmt.Fprintf(out, "seeded user: id=%d email=%s password=%s\n", user.ID, demoEmail, demoPassword)

	work, err := notebooks.CreateNotebook(ctx, user.ID, "Work")
	if err != nil {
		return fmt.Errorf("seed notebook: %w", err)
	}

	priority := 2
	seeded := []application.CreateNoteInput{
		{Title: "Buy milk", Category: "Errands"},
		{Title: "Write weekly report", Priority: &priority, NotebookID: &work.ID},
		{Title: "Review pull requests", Status: "ONGOING", NotebookID: &work.ID},
	}
	for _, in := range seeded {
		n, err := notes.CreateNote(ctx, user.ID, in)
		if err != nil {
			return fmt.Errorf("seed note %q: %w", in.Title, err)
		}
		fmt.Fprintf(out, "seeded note: id=%d title=%q\n", n.ID, n.Title)
	}
	return nil
}
