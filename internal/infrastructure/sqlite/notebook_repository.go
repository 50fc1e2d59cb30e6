package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/oksasatya/go-task-manager/internal/domain/entity"
	"github.com/oksasatya/go-task-manager/internal/domain/repository"
)

type NotebookRepository struct {
	db *sql.DB
}

func NewNotebookRepository(db *sql.DB) *NotebookRepository {
	return &NotebookRepository{db: db}
}

func (r *NotebookRepository) Create(ctx context.Context, nb *entity.Notebook) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `INSERT INTO notebooks (title, owner_id, created_at) VALUES (?, ?, ?)`, nb.Title, nb.OwnerID, now)
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	nb.ID, nb.CreatedAt = id, now
	return nil
}

func (r *NotebookRepository) GetByID(ctx context.Context, ownerID, id int64) (*entity.Notebook, error) {
	nb := &entity.Notebook{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, owner_id, created_at FROM notebooks WHERE id = ? AND owner_id = ?
	`, id, ownerID).Scan(&nb.ID, &nb.Title, &nb.OwnerID, &nb.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return nb, nil
}

func (r *NotebookRepository) ListByOwner(ctx context.Context, ownerID int64) ([]entity.Notebook, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, owner_id, created_at FROM notebooks WHERE owner_id = ? ORDER BY title ASC, id ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []entity.Notebook{}
	for rows.Next() {
		var nb entity.Notebook
		if err := rows.Scan(&nb.ID, &nb.Title, &nb.OwnerID, &nb.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, nb)
	}
	return out, rows.Err()
}

func (r *NotebookRepository) Delete(ctx context.Context, ownerID, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notebooks WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return translate(err)
	}
	return affected(res)
}

var _ repository.NotebookRepository = (*NotebookRepository)(nil)
