package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/iki1000alti/tema/internal/domain"
)

// UserRepo implements domain.UserRepository backed by PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo creates a UserRepo from the shared DB connection.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a new user row. The UNIQUE index on username is the
// authoritative duplicate check: two concurrent registrations for the same
// name resolve here, one succeeding and one getting ErrUsernameTaken.
func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	const q = `INSERT INTO users (id, username, password_hash) VALUES ($1, $2, $3)`
	_, err := r.db.Pool.Exec(ctx, q, user.ID, user.Username, user.PasswordHash)
	if isUniqueViolation(err) {
		return domain.ErrUsernameTaken
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetByUsername loads a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `SELECT id, username, password_hash, created_at FROM users WHERE username = $1`
	var user domain.User
	err := r.db.Pool.QueryRow(ctx, q, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}
