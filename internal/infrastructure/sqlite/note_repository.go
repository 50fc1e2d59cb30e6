package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/oksasatya/go-task-manager/internal/domain/entity"
	"github.com/oksasatya/go-task-manager/internal/domain/repository"
)

const selectNote = `
	SELECT id, title, content, category, status, priority, due_date, owner_id, notebook_id, created_at, updated_at
	FROM notes`

type NoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, n *entity.Note) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO notes (title, content, category, status, priority, due_date, owner_id, notebook_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, n.Title, nullString(n.Content), n.Category, n.Status, n.Priority, nullTime(n.DueDate), n.OwnerID, nullInt64(n.NotebookID), now, now)
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	n.ID, n.CreatedAt, n.UpdatedAt = id, now, now
	return nil
}

func (r *NoteRepository) GetByID(ctx context.Context, ownerID, id int64) (*entity.Note, error) {
	return scanNote(r.db.QueryRowContext(ctx, selectNote+` WHERE id = ? AND owner_id = ?`, id, ownerID))
}

func (r *NoteRepository) List(ctx context.Context, ownerID int64, notebookID *int64) ([]entity.Note, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if notebookID == nil {
		rows, err = r.db.QueryContext(ctx, selectNote+`
			WHERE owner_id = ? AND notebook_id IS NULL
			ORDER BY priority DESC, id DESC`, ownerID)
	} else {
		rows, err = r.db.QueryContext(ctx, selectNote+`
			WHERE owner_id = ? AND notebook_id = ?
			ORDER BY priority DESC, id DESC`, ownerID, *notebookID)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []entity.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}

func (r *NoteRepository) Update(ctx context.Context, ownerID, id int64, fn repository.NoteMutator) (*entity.Note, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	n, err := scanNote(tx.QueryRowContext(ctx, selectNote+` WHERE id = ? AND owner_id = ?`, id, ownerID))
	if err != nil {
		return nil, err
	}
	if err := fn(n); err != nil {
		return nil, err
	}
	n.UpdatedAt = time.Now().UTC()
	_, err = tx.ExecContext(ctx, `
		UPDATE notes
		SET title = ?, content = ?, category = ?, status = ?, priority = ?, due_date = ?, notebook_id = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?
	`, n.Title, nullString(n.Content), n.Category, n.Status, n.Priority, nullTime(n.DueDate), nullInt64(n.NotebookID), n.UpdatedAt, id, ownerID)
	if err != nil {
		return nil, translate(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return n, nil
}

func (r *NoteRepository) Delete(ctx context.Context, ownerID, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return translate(err)
	}
	return affected(res)
}

func scanNote(row scanner) (*entity.Note, error) {
	n := &entity.Note{}
	var (
		content    sql.NullString
		due        sql.NullTime
		notebookID sql.NullInt64
	)
	err := row.Scan(&n.ID, &n.Title, &content, &n.Category, &n.Status, &n.Priority, &due,
		&n.OwnerID, &notebookID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	n.Content = content.String
	if due.Valid {
		t := due.Time
		n.DueDate = &t
	}
	if notebookID.Valid {
		v := notebookID.Int64
		n.NotebookID = &v
	}
	return n, nil
}

var _ repository.NoteRepository = (*NoteRepository)(nil)
