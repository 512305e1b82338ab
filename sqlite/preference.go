package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/handbook"
)

// Compile-time interface verification.
var _ handbook.PreferenceService = (*PreferenceService)(nil)

// PreferenceService implements handbook.PreferenceService using SQLite.
type PreferenceService struct {
	db *DB
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(db *DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// FindPreference retrieves the value stored under key.
func (s *PreferenceService) FindPreference(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM preferences WHERE key = ?
	`, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", handbook.Errorf(handbook.ENOTFOUND, "preference %q not found", key)
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetPreference stores value under key, replacing any previous value.
func (s *PreferenceService) SetPreference(ctx context.Context, key, value string) error {
	if key == "" {
		return handbook.Errorf(handbook.EINVALID, "preference key required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339))

	return err
}

// DeletePreference removes key.
func (s *PreferenceService) DeletePreference(ctx context.Context, key string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM preferences WHERE key = ?", key)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return handbook.Errorf(handbook.ENOTFOUND, "preference %q not found", key)
	}

	return nil
}
