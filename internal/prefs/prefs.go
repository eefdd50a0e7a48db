package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ziadkadry99/folio/internal/db"
)

// Theme is the stored dark-mode preference.
type Theme string

const (
	DarkEnabled  Theme = "enabled"
	DarkDisabled Theme = "disabled"
)

// darkModeKey is the preference key, shared with the browser cookie name.
const darkModeKey = "darkMode"

// ParseTheme accepts "enabled" or "disabled".
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case DarkEnabled, DarkDisabled:
		return Theme(s), nil
	}
	return "", fmt.Errorf("invalid darkMode value %q: must be enabled or disabled", s)
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == DarkEnabled {
		return DarkDisabled
	}
	return DarkEnabled
}

// Store persists one dark-mode preference per visitor.
type Store interface {
	Get(ctx context.Context, visitorID string) (Theme, error)
	Set(ctx context.Context, visitorID string, theme Theme) error
}

// SQLStore keeps preferences in SQLite.
type SQLStore struct {
	db *db.DB
}

// NewSQLStore creates a SQLStore backed by the given database.
func NewSQLStore(database *db.DB) *SQLStore {
	return &SQLStore{db: database}
}

// Get returns the visitor's theme, or DarkDisabled if none is stored.
func (s *SQLStore) Get(ctx context.Context, visitorID string) (Theme, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM preferences WHERE visitor_id = ? AND key = ?",
		visitorID, darkModeKey,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return DarkDisabled, nil
	}
	if err != nil {
		return DarkDisabled, fmt.Errorf("reading preference: %w", err)
	}
	theme, err := ParseTheme(value)
	if err != nil {
		return DarkDisabled, nil
	}
	return theme, nil
}

// Set stores the visitor's theme. The last write wins.
func (s *SQLStore) Set(ctx context.Context, visitorID string, theme Theme) error {
	if _, err := ParseTheme(string(theme)); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (visitor_id, key, value, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(visitor_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		visitorID, darkModeKey, string(theme),
	)
	if err != nil {
		return fmt.Errorf("saving preference: %w", err)
	}
	return nil
}
