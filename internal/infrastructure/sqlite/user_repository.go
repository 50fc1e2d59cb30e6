package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/oksasatya/go-task-manager/internal/domain/entity"
	"github.com/oksasatya/go-task-manager/internal/domain/repository"
)

const selectUser = `SELECT id, email, password_hash, username, profile_picture, created_at, updated_at FROM users`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (email, password_hash, username, profile_picture, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.Email, u.PasswordHash, nullString(u.Username), nullString(u.ProfilePicture), now, now)
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID, u.CreatedAt, u.UpdatedAt = id, now, now
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE id = ?`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE email = ?`, email))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE username = ?`, username))
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET email = ?, password_hash = ?, username = ?, profile_picture = ?, updated_at = ?
		WHERE id = ?
	`, u.Email, u.PasswordHash, nullString(u.Username), nullString(u.ProfilePicture), u.UpdatedAt, u.ID)
	if err != nil {
		return translate(err)
	}
	return affected(res)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return translate(err)
	}
	return affected(res)
}

func scanUser(row scanner) (*entity.User, error) {
	u := &entity.User{}
	var username, picture sql.NullString
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &username, &picture, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	u.Username, u.ProfilePicture = username.String, picture.String
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
