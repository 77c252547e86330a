// Package app contains the application layer — the only component that
// references multiple domain components. It orchestrates all use cases.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/iki1000alti/tema/internal/crypto"
	"github.com/iki1000alti/tema/internal/domain"
	"github.com/iki1000alti/tema/internal/token"
)

// Service implements domain.AccountService and domain.SettingsService.
type Service struct {
	users    domain.UserRepository
	settings domain.SettingRepository
	hasher   *crypto.PasswordHasher
	tokens   *token.Issuer
}

// NewService creates the application layer service.
func NewService(users domain.UserRepository, settings domain.SettingRepository, hasher *crypto.PasswordHasher, tokens *token.Issuer) *Service {
	return &Service{users: users, settings: settings, hasher: hasher, tokens: tokens}
}

// Register hashes the password and creates the account. The plaintext is
// never logged or stored.
func (s *Service) Register(ctx context.Context, username, password string) (uuid.UUID, error) {
	if username == "" || password == "" {
		return uuid.Nil, domain.ErrMissingCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return uuid.Nil, err
	}

	user := &domain.User{ID: uuid.New(), Username: username, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return uuid.Nil, err
	}

	slog.Info("User registered", "user_id", user.ID, "username", username)
	return user.ID, nil
}

// Login authenticates and issues a session token. An unknown username and a
// wrong password both come back as ErrBadCredentials; the distinction only
// reaches debug logs.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrMissingCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			slog.Debug("Login failed", "username", username, "reason", "unknown user")
			return "", domain.ErrBadCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		slog.Debug("Login failed", "username", username, "reason", "wrong password")
		return "", domain.ErrBadCredentials
	}

	signed, err := s.tokens.Issue(token.Claims{UserID: user.ID, Username: user.Username})
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	slog.Info("User logged in", "user_id", user.ID, "username", username)
	return signed, nil
}

// GetTheme returns the stored theme document verbatim.
func (s *Service) GetTheme(ctx context.Context) (json.RawMessage, error) {
	setting, err := s.settings.Get(ctx, domain.SettingTheme)
	if err != nil {
		return nil, err
	}
	return setting.Data, nil
}

// ReplaceTheme replaces the theme document wholesale. Concurrent replacers
// race last-writer-wins; see SettingRepository.
func (s *Service) ReplaceTheme(ctx context.Context, data json.RawMessage) error {
	return s.settings.Replace(ctx, domain.SettingTheme, data)
}
