package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/iki1000alti/tema/internal/domain"
)

// SettingRepo implements domain.SettingRepository backed by PostgreSQL.
// Documents are stored as TEXT holding the JSON bytes verbatim, so a
// Replace followed by a Get round-trips byte for byte.
type SettingRepo struct{ db *DB }

// NewSettingRepo creates a SettingRepo from the shared DB connection.
func NewSettingRepo(db *DB) *SettingRepo { return &SettingRepo{db: db} }

// Get loads a setting by name. Stored bytes that are not valid JSON are
// reported as ErrSettingCorrupt instead of being passed along.
func (r *SettingRepo) Get(ctx context.Context, name string) (*domain.Setting, error) {
	const q = `SELECT name, data, updated_at FROM settings WHERE name = $1`
	var (
		setting domain.Setting
		data    string
	)
	err := r.db.Pool.QueryRow(ctx, q, name).Scan(&setting.Name, &data, &setting.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load setting: %w", err)
	}

	if !json.Valid([]byte(data)) {
		return nil, domain.ErrSettingCorrupt
	}
	setting.Data = json.RawMessage(data)
	return &setting, nil
}

// Replace upserts the document with a full replacement of its data.
// Two concurrent get-then-replace sequences race last-writer-wins; there is
// no version token. Accepted for the single theme document.
func (r *SettingRepo) Replace(ctx context.Context, name string, data json.RawMessage) error {
	const q = `
INSERT INTO settings (name, data, updated_at) VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
	_, err := r.db.Pool.Exec(ctx, q, name, string(data))
	if err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	return nil
}
