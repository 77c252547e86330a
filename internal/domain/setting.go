package domain

import (
	"context"
	"encoding/json"
	"time"
)

// SettingTheme is the fixed name of the theme document.
const SettingTheme = "theme"

// Setting is a named JSON document. Data holds the stored bytes verbatim —
// the store never interprets or reshapes them, so a Replace followed by a
// Get round-trips byte for byte.
type Setting struct {
	Name      string
	Data      json.RawMessage
	UpdatedAt time.Time
}

type SettingRepository interface {
	// Get loads a setting by name. Returns ErrSettingNotFound when the
	// document does not exist and ErrSettingCorrupt when the stored bytes
	// are not valid JSON.
	Get(ctx context.Context, name string) (*Setting, error)
	// Replace upserts the document with a full replacement of its data.
	// Concurrent replacers race last-writer-wins; acceptable for the
	// single theme document.
	Replace(ctx context.Context, name string, data json.RawMessage) error
}
