package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-task-manager/internal/domain/entity"
	"github.com/oksasatya/go-task-manager/internal/domain/repository"
)

const selectNote = `
	SELECT id, title, content, category, status, priority, due_date, owner_id, notebook_id, created_at, updated_at
	FROM notes`

type NoteRepository struct {
	pool *pgxpool.Pool
}

func NewNoteRepository(pool *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{pool: pool}
}

func (r *NoteRepository) Create(ctx context.Context, n *entity.Note) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO notes (title, content, category, status, priority, due_date, owner_id, notebook_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, n.Title, nullable(n.Content), n.Category, n.Status, n.Priority, n.DueDate, n.OwnerID, n.NotebookID)

	return translate(row.Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt))
}

func (r *NoteRepository) GetByID(ctx context.Context, ownerID, id int64) (*entity.Note, error) {
	return scanNote(r.pool.QueryRow(ctx, selectNote+` WHERE id = $1 AND owner_id = $2`, id, ownerID))
}

func (r *NoteRepository) List(ctx context.Context, ownerID int64, notebookID *int64) ([]entity.Note, error) {
	// IS NOT DISTINCT FROM matches NULL = NULL for the unfiled listing.
	rows, err := r.pool.Query(ctx, selectNote+`
		WHERE owner_id = $1 AND notebook_id IS NOT DISTINCT FROM $2
		ORDER BY priority DESC, id DESC
	`, ownerID, notebookID)
	if err != nil {
		return nil, err
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Note, error) {
		n, err := scanNote(row)
		if err != nil {
			return entity.Note{}, err
		}
		return *n, nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.Note{}
	}
	return out, nil
}

func (r *NoteRepository) Update(ctx context.Context, ownerID, id int64, fn repository.NoteMutator) (*entity.Note, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	n, err := scanNote(tx.QueryRow(ctx, selectNote+` WHERE id = $1 AND owner_id = $2 FOR UPDATE`, id, ownerID))
	if err != nil {
		return nil, err
	}
	if err := fn(n); err != nil {
		return nil, err
	}
	err = tx.QueryRow(ctx, `
		UPDATE notes
		SET title = $1, content = $2, category = $3, status = $4, priority = $5,
		    due_date = $6, notebook_id = $7, updated_at = now()
		WHERE id = $8 AND owner_id = $9
		RETURNING updated_at
	`, n.Title, nullable(n.Content), n.Category, n.Status, n.Priority, n.DueDate, n.NotebookID, id, ownerID).Scan(&n.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return n, nil
}

func (r *NoteRepository) Delete(ctx context.Context, ownerID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return translate(err)
	}
	return affected(tag)
}

func scanNote(row pgx.Row) (*entity.Note, error) {
	n := &entity.Note{}
	var content *string
	if err := row.Scan(&n.ID, &n.Title, &content, &n.Category, &n.Status, &n.Priority, &n.DueDate,
		&n.OwnerID, &n.NotebookID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	n.Content = deref(content)
	return n, nil
}

var _ repository.NoteRepository = (*NoteRepository)(nil)
