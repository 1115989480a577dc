package storage

import (
	"context"
	"fmt"

	"fintrack/internal/core"
)

// CreateUser inserts a new user row. The caller is responsible for
// hashing the password.
func (r *SQLiteRepository) CreateUser(ctx context.Context, email, passwordHash, name string) (core.User, error) {
	var u core.User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash, name)
		VALUES (?, ?, ?)
		RETURNING id, email, password_hash, name, created_at`,
		email, passwordHash, name,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt)
	if err != nil {
		return core.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// GetUserByEmail returns the user with the given email. The wrapped
// error is sql.ErrNoRows when no such user exists.
func (r *SQLiteRepository) GetUserByEmail(ctx context.Context, email string) (core.User, error) {
	var u core.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, name, created_at
		FROM users WHERE email = ?`,
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt)
	if err != nil {
		return core.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// GetUserByID returns the user with the given id.
func (r *SQLiteRepository) GetUserByID(ctx context.Context, id int64) (core.User, error) {
	var u core.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, name, created_at
		FROM users WHERE id = ?`,
		id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt)
	if err != nil {
		return core.User{}, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}
