package mock

import (
	"context"

	"github.com/fwojciec/handbook"
)

var _ handbook.PreferenceService = (*PreferenceService)(nil)

// PreferenceService is a mock implementation of handbook.PreferenceService.
type PreferenceService struct {
	FindPreferenceFn   func(ctx context.Context, key string) (string, error)
	SetPreferenceFn    func(ctx context.Context, key, value string) error
	DeletePreferenceFn func(ctx context.Context, key string) error
}

func (s *PreferenceService) FindPreference(ctx context.Context, key string) (string, error) {
	return s.FindPreferenceFn(ctx, key)
}

func (s *PreferenceService) SetPreference(ctx context.Context, key, value string) error {
	return s.SetPreferenceFn(ctx, key, value)
}

func (s *PreferenceService) DeletePreference(ctx context.Context, key string) error {
	return s.DeletePreferenceFn(ctx, key)
}
