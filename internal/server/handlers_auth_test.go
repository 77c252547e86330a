package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iki1000alti/tema/internal/domain"
)

func postJSON(t *testing.T, srv *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

// --- handleRegister ---

func TestHandleRegister_Success(t *testing.T) {
	var gotUsername, gotPassword string
	accounts := &mockAccountService{
		registerFn: func(_ context.Context, username, password string) (uuid.UUID, error) {
			gotUsername, gotPassword = username, password
			return uuid.New(), nil
		},
	}
	srv := newTestServer(t, accounts, &mockSettingsService{})

	rec := postJSON(t, srv, "/register", `{"username":"alice","password":"s3cret"}`)

	assert.Equal(t, 200, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, "alice", gotUsername)
	assert.Equal(t, "s3cret", gotPassword)
}

func TestHandleRegister_MissingField(t *testing.T) {
	accounts := &mockAccountService{
		registerFn: func(context.Context, string, string) (uuid.UUID, error) {
			return uuid.Nil, domain.ErrMissingCredentials
		},
	}
	srv := newTestServer(t, accounts, &mockSettingsService{})

	rec := postJSON(t, srv, "/register", `{"username":"alice"}`)
	assert.Equal(t, 400, rec.Code)
}

func TestHandleRegister_Duplicate(t *testing.T) {
	accounts := &mockAccountService{
		registerFn: func(context.Context, string, string) (uuid.UUID, error) {
			return uuid.Nil, domain.ErrUsernameTaken
		},
	}
	srv := newTestServer(t, accounts, &mockSettingsService{})

	rec := postJSON(t, srv, "/register", `{"username":"alice","password":"s3cret"}`)

	assert.Equal(t, 409, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "username already taken", resp["error"])
}

func TestHandleRegister_StoreError(t *testing.T) {
	accounts := &mockAccountService{
		registerFn: func(context.Context, string, string) (uuid.UUID, error) {
			return uuid.Nil, errors.New("connection refused")
		},
	}
	srv := newTestServer(t, accounts, &mockSettingsService{})

	rec := postJSON(t, srv, "/register", `{"username":"alice","password":"s3cret"}`)
	assert.Equal(t, 500, rec.Code)
}

func TestHandleRegister_BadBody(t *testing.T) {
	srv := newTestServer(t, &mockAccountService{}, &mockSettingsService{})

	rec := postJSON(t, srv, "/register", `{not json`)
	assert.Equal(t, 400, rec.Code)
}

// --- handleLogin ---

func TestHandleLogin_Success(t *testing.T) {
	accounts := &mockAccountService{
		loginFn: func(_ context.Context, username, password string) (string, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, "s3cret", password)
			return "signed-token", nil
		},
	}
	srv := newTestServer(t, accounts, &mockSettingsService{})

	rec := postJSON(t, srv, "/login", `{"username":"alice","password":"s3cret"}`)

	assert.Equal(t, 200, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp["token"])
}

func TestHandleLogin_BadCredentials(t *testing.T) {
	accounts := &mockAccountService{
		loginFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrBadCredentials
		},
	}
	srv := newTestServer(t, accounts, &mockSettingsService{})

	rec := postJSON(t, srv, "/login", `{"username":"alice","password":"wrong"}`)

	assert.Equal(t, 401, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid username or password", resp["error"])
}

func TestHandleLogin_MissingField(t *testing.T) {
	accounts := &mockAccountService{
		loginFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrMissingCredentials
		},
	}
	srv := newTestServer(t, accounts, &mockSettingsService{})

	rec := postJSON(t, srv, "/login", `{"password":"s3cret"}`)
	assert.Equal(t, 400, rec.Code)
}

func TestHandleLogin_StoreError(t *testing.T) {
	accounts := &mockAccountService{
		loginFn: func(context.Context, string, string) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	srv := newTestServer(t, accounts, &mockSettingsService{})

	rec := postJSON(t, srv, "/login", `{"username":"alice","password":"s3cret"}`)
	assert.Equal(t, 500, rec.Code)
}
