package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-task-manager/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no row matches, including rows owned by someone else.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	// Delete removes the user together with every notebook and note they own.
	Delete(ctx context.Context, id int64) error
}

// Repositories bundles the stores one backend provides.
type Repositories struct {
	Users     UserRepository
	Notebooks NotebookRepository
	Notes     NoteRepository
}
