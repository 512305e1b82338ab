package mock

import (
	"context"

	"github.com/fwojciec/handbook"
)

var _ handbook.PreferenceService = (*MemoryPreferences)(nil)

// MemoryPreferences is an in-memory handbook.PreferenceService for tests
// that need stored values to round-trip.
type MemoryPreferences struct {
	Values map[string]string
}

// NewMemoryPreferences returns an empty MemoryPreferences.
func NewMemoryPreferences() *MemoryPreferences {
	return &MemoryPreferences{Values: make(map[string]string)}
}

func (m *MemoryPreferences) FindPreference(_ context.Context, key string) (string, error) {
	v, ok := m.Values[key]
	if !ok {
		return "", handbook.Errorf(handbook.ENOTFOUND, "preference %q not found", key)
	}
	return v, nil
}

func (m *MemoryPreferences) SetPreference(_ context.Context, key, value string) error {
	m.Values[key] = value
	return nil
}

func (m *MemoryPreferences) DeletePreference(_ context.Context, key string) error {
	if _, ok := m.Values[key]; !ok {
		return handbook.Errorf(handbook.ENOTFOUND, "preference %q not found", key)
	}
	delete(m.Values, key)
	return nil
}
