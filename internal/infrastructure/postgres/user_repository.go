package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-task-manager/internal/domain/entity"
	"github.com/oksasatya/go-task-manager/internal/domain/repository"
)

const selectUser = `
	SELECT id, email, password_hash, username, profile_picture, created_at, updated_at
	FROM users`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, username, profile_picture)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, u.Email, u.PasswordHash, nullable(u.Username), nullable(u.ProfilePicture))

	return translate(row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt))
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, selectUser+` WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, selectUser+` WHERE email = $1`, email))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, selectUser+` WHERE username = $1`, username))
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET email = $1, password_hash = $2, username = $3, profile_picture = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`, u.Email, u.PasswordHash, nullable(u.Username), nullable(u.ProfilePicture), u.ID)

	return translate(row.Scan(&u.UpdatedAt))
}

// Delete relies on ON DELETE CASCADE for notebooks and notes.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	return affected(tag)
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var username, picture *string
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &username, &picture,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	u.Username, u.ProfilePicture = deref(username), deref(picture)
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
