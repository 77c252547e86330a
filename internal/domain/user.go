package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is a registered account. PasswordHash is a bcrypt hash; the
// plaintext password never leaves the application layer. Accounts are
// immutable after creation — there are no update or delete operations.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

type UserRepository interface {
	// Create inserts a new user. Returns ErrUsernameTaken if the username
	// is already registered, enforced by the storage layer so that
	// concurrent duplicate registrations cannot both succeed.
	Create(ctx context.Context, user *User) error
	// GetByUsername loads a user by username. Returns ErrUserNotFound
	// when no such user exists.
	GetByUsername(ctx context.Context, username string) (*User, error)
}
