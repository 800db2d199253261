package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/djajbladi/poultry-backend/internal/domain"
)

const userColumns = `id, full_name, email, password_hash, phone_number, role,
	is_active, city, created_at, updated_at, last_login_at`

// GetUserByEmail returns nil without error when no such user exists.
func (r *Repos) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repos) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email)
	return exists, err
}

func (r *Repos) InsertUser(ctx context.Context, u *domain.User) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO users (full_name, email, password_hash, phone_number, role, is_active, city)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		u.FullName, u.Email, u.PasswordHash, u.PhoneNumber, u.Role, u.IsActive, u.City,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *Repos) UpdateUser(ctx context.Context, u *domain.User) error {
	return r.db.QueryRowxContext(ctx, `
		UPDATE users
		SET full_name = $2, phone_number = $3, city = $4, password_hash = $5, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		u.ID, u.FullName, u.PhoneNumber, u.City, u.PasswordHash,
	).Scan(&u.UpdatedAt)
}

func (r *Repos) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at)
	return err
}

func (r *Repos) ListUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	return out, err
}
