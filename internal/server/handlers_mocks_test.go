package server

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/iki1000alti/tema/internal/config"
	"github.com/iki1000alti/tema/internal/token"
)

// --- Mock implementations ---

type mockAccountService struct {
	registerFn func(ctx context.Context, username, password string) (uuid.UUID, error)
	loginFn    func(ctx context.Context, username, password string) (string, error)
}

func (m *mockAccountService) Register(ctx context.Context, username, password string) (uuid.UUID, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, username, password)
	}
	return uuid.Nil, errors.New("not implemented")
}

func (m *mockAccountService) Login(ctx context.Context, username, password string) (string, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, username, password)
	}
	return "", errors.New("not implemented")
}

type mockSettingsService struct {
	getThemeFn     func(ctx context.Context) (json.RawMessage, error)
	replaceThemeFn func(ctx context.Context, data json.RawMessage) error
}

func (m *mockSettingsService) GetTheme(ctx context.Context) (json.RawMessage, error) {
	if m.getThemeFn != nil {
		return m.getThemeFn(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockSettingsService) ReplaceTheme(ctx context.Context, data json.RawMessage) error {
	if m.replaceThemeFn != nil {
		return m.replaceThemeFn(ctx, data)
	}
	return errors.New("not implemented")
}

type mockHealthChecker struct{ err error }

func (m *mockHealthChecker) HealthCheck(context.Context) error { return m.err }

// --- Test server construction ---

var testClock = clockwork.NewRealClock()

func newTestIssuer() *token.Issuer {
	return token.NewIssuer([]byte("test-secret"), 24*time.Hour, testClock)
}

func newTestServer(t *testing.T, accounts *mockAccountService, settings *mockSettingsService) *Server {
	t.Helper()
	cfg := &config.Config{AppEnv: "test", Port: "0"}
	return NewServer(cfg, accounts, settings, newTestIssuer(), &mockHealthChecker{})
}
