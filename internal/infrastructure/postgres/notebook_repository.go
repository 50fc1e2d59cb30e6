package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-task-manager/internal/domain/entity"
	"github.com/oksasatya/go-task-manager/internal/domain/repository"
)

type NotebookRepository struct {
	pool *pgxpool.Pool
}

func NewNotebookRepository(pool *pgxpool.Pool) *NotebookRepository {
	return &NotebookRepository{pool: pool}
}

func (r *NotebookRepository) Create(ctx context.Context, nb *entity.Notebook) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO notebooks (title, owner_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, nb.Title, nb.OwnerID)

	return translate(row.Scan(&nb.ID, &nb.CreatedAt))
}

func (r *NotebookRepository) GetByID(ctx context.Context, ownerID, id int64) (*entity.Notebook, error) {
	nb := &entity.Notebook{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, owner_id, created_at
		FROM notebooks
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID).Scan(&nb.ID, &nb.Title, &nb.OwnerID, &nb.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return nb, nil
}

func (r *NotebookRepository) ListByOwner(ctx context.Context, ownerID int64) ([]entity.Notebook, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, owner_id, created_at
		FROM notebooks
		WHERE owner_id = $1
		ORDER BY title ASC, id ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Notebook, error) {
		var nb entity.Notebook
		err := row.Scan(&nb.ID, &nb.Title, &nb.OwnerID, &nb.CreatedAt)
		return nb, err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.Notebook{}
	}
	return out, nil
}

// Delete relies on ON DELETE CASCADE for the notebook's notes.
func (r *NotebookRepository) Delete(ctx context.Context, ownerID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notebooks WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return translate(err)
	}
	return affected(tag)
}

var _ repository.NotebookRepository = (*NotebookRepository)(nil)
