package repository

import (
	"context"

	"github.com/oksasatya/go-task-manager/internal/domain/entity"
)

// NotebookRepository stores notebooks. Every lookup is filtered by owner.
type NotebookRepository interface {
	Create(ctx context.Context, nb *entity.Notebook) error
	GetByID(ctx context.Context, ownerID, id int64) (*entity.Notebook, error)
	// ListByOwner returns notebooks ordered by title ascending.
	ListByOwner(ctx context.Context, ownerID int64) ([]entity.Notebook, error)
	// Delete removes the notebook and the notes filed in it.
	Delete(ctx context.Context, ownerID, id int64) error
}
