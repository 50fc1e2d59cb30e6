package repository

import (
	"context"

	"github.com/oksasatya/go-task-manager/internal/domain/entity"
)

// NoteMutator edits a note in place inside the repository's transaction.
// Returning an error aborts the update.
type NoteMutator func(n *entity.Note) error

// NoteRepository stores notes. Every lookup is filtered by owner.
type NoteRepository interface {
	Create(ctx context.Context, n *entity.Note) error
	GetByID(ctx context.Context, ownerID, id int64) (*entity.Note, error)
	// List returns the owner's notes in notebookID, or the unfiled ones when
	// notebookID is nil, ordered by priority then id, both descending.
	List(ctx context.Context, ownerID int64, notebookID *int64) ([]entity.Note, error)
	// Update loads the note, applies fn and persists the result in one transaction.
	Update(ctx context.Context, ownerID, id int64, fn NoteMutator) (*entity.Note, error)
	Delete(ctx context.Context, ownerID, id int64) error
}
