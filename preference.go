package handbook

import (
	"context"
	"encoding/json"
	"fmt"
)

// Fixed preference keys.
const (
	ThemeKey    = "handbook-theme"
	ProgressKey = "handbook-progress"
)

// PreferenceService represents a flat key/value store for reader
// preferences.
type PreferenceService interface {
	// FindPreference retrieves the value stored under key.
	// Returns ENOTFOUND if nothing is stored under key.
	FindPreference(ctx context.Context, key string) (string, error)

	// SetPreference stores value under key, replacing any previous value.
	SetPreference(ctx context.Context, key, value string) error

	// DeletePreference removes key.
	// Returns ENOTFOUND if nothing is stored under key.
	DeletePreference(ctx context.Context, key string) error
}

// LoadTheme returns the stored theme. A missing or unknown value yields
// DefaultTheme.
func LoadTheme(ctx context.Context, prefs PreferenceService) (Theme, error) {
	value, err := prefs.FindPreference(ctx, ThemeKey)
	if ErrorCode(err) == ENOTFOUND {
		return DefaultTheme, nil
	} else if err != nil {
		return "", err
	}

	theme := Theme(value)
	if theme.Validate() != nil {
		return DefaultTheme, nil
	}
	return theme, nil
}

// SaveTheme stores theme.
func SaveTheme(ctx context.Context, prefs PreferenceService, theme Theme) error {
	if err := theme.Validate(); err != nil {
		return err
	}
	return prefs.SetPreference(ctx, ThemeKey, string(theme))
}

// LoadProgress returns the stored reading progress. A missing value yields
// empty progress.
func LoadProgress(ctx context.Context, prefs PreferenceService) (*Progress, error) {
	value, err := prefs.FindPreference(ctx, ProgressKey)
	if ErrorCode(err) == ENOTFOUND {
		return &Progress{}, nil
	} else if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(value), &ids); err != nil {
		return nil, Errorf(EINVALID, "malformed reading progress: %v", err)
	}
	return NewProgress(ids), nil
}

// SaveProgress stores the reading progress as a JSON list of IDs.
func SaveProgress(ctx context.Context, prefs PreferenceService, p *Progress) error {
	ids := p.IDs()
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode reading progress: %w", err)
	}
	return prefs.SetPreference(ctx, ProgressKey, string(b))
}
