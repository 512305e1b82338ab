package handbook_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/handbook"
	"github.com/fwojciec/handbook/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTheme(t *testing.T) {
	t.Parallel()

	t.Run("returns stored theme", func(t *testing.T) {
		t.Parallel()

		prefs := mock.NewMemoryPreferences()
		prefs.Values[handbook.ThemeKey] = "dark"

		theme, err := handbook.LoadTheme(context.Background(), prefs)

		require.NoError(t, err)
		assert.Equal(t, handbook.ThemeDark, theme)
	})

	t.Run("defaults when nothing is stored", func(t *testing.T) {
		t.Parallel()

		theme, err := handbook.LoadTheme(context.Background(), mock.NewMemoryPreferences())

		require.NoError(t, err)
		assert.Equal(t, handbook.DefaultTheme, theme)
	})

	t.Run("defaults for unknown stored value", func(t *testing.T) {
		t.Parallel()

		prefs := mock.NewMemoryPreferences()
		prefs.Values[handbook.ThemeKey] = "sepia"

		theme, err := handbook.LoadTheme(context.Background(), prefs)

		require.NoError(t, err)
		assert.Equal(t, handbook.DefaultTheme, theme)
	})

	t.Run("returns storage errors", func(t *testing.T) {
		t.Parallel()

		prefs := &mock.PreferenceService{
			FindPreferenceFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("database is locked")
			},
		}

		_, err := handbook.LoadTheme(context.Background(), prefs)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "database is locked")
	})
}

func TestSaveTheme(t *testing.T) {
	t.Parallel()

	t.Run("stores theme under fixed key", func(t *testing.T) {
		t.Parallel()

		var gotKey, gotValue string
		prefs := &mock.PreferenceService{
			SetPreferenceFn: func(_ context.Context, key, value string) error {
				gotKey, gotValue = key, value
				return nil
			},
		}

		err := handbook.SaveTheme(context.Background(), prefs, handbook.ThemeDark)

		require.NoError(t, err)
		assert.Equal(t, handbook.ThemeKey, gotKey)
		assert.Equal(t, "dark", gotValue)
	})

	t.Run("rejects unknown theme", func(t *testing.T) {
		t.Parallel()

		err := handbook.SaveTheme(context.Background(), mock.NewMemoryPreferences(), "sepia")

		assert.Equal(t, handbook.EINVALID, handbook.ErrorCode(err))
	})
}

func TestProgressRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("stores progress as JSON list", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		prefs := mock.NewMemoryPreferences()

		err := handbook.SaveProgress(ctx, prefs, handbook.NewProgress([]string{"intro", "box"}))
		require.NoError(t, err)
		assert.Equal(t, `["intro","box"]`, prefs.Values[handbook.ProgressKey])

		p, err := handbook.LoadProgress(ctx, prefs)
		require.NoError(t, err)
		assert.Equal(t, []string{"intro", "box"}, p.IDs())
	})

	t.Run("stores empty progress as empty list", func(t *testing.T) {
		t.Parallel()

		prefs := mock.NewMemoryPreferences()

		err := handbook.SaveProgress(context.Background(), prefs, &handbook.Progress{})

		require.NoError(t, err)
		assert.Equal(t, `[]`, prefs.Values[handbook.ProgressKey])
	})

	t.Run("loads empty progress when nothing is stored", func(t *testing.T) {
		t.Parallel()

		p, err := handbook.LoadProgress(context.Background(), mock.NewMemoryPreferences())

		require.NoError(t, err)
		assert.Equal(t, 0, p.Len())
	})

	t.Run("rejects malformed stored value", func(t *testing.T) {
		t.Parallel()

		prefs := mock.NewMemoryPreferences()
		prefs.Values[handbook.ProgressKey] = "not json"

		_, err := handbook.LoadProgress(context.Background(), prefs)

		assert.Equal(t, handbook.EINVALID, handbook.ErrorCode(err))
	})
}
