package domain

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// AccountService handles registration and login.
type AccountService interface {
	// Register validates, hashes the password, and creates the account.
	Register(ctx context.Context, username, password string) (uuid.UUID, error)
	// Login authenticates and returns a signed session token. A missing
	// user and a wrong password both surface as ErrBadCredentials so the
	// response does not reveal which usernames exist.
	Login(ctx context.Context, username, password string) (string, error)
}

// SettingsService exposes the theme document.
type SettingsService interface {
	GetTheme(ctx context.Context) (json.RawMessage, error)
	ReplaceTheme(ctx context.Context, data json.RawMessage) error
}
