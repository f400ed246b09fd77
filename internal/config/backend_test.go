package config

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uvr-go/uvr-shell/internal/logging"
	"github.com/uvr-go/uvr-shell/internal/model"
)

func saveGeometry(t *testing.T, store *Store, g model.Geometry) {
	t.Helper()
	require.NoError(t, store.WithGroup(GroupMainWindow, func() error {
		return store.Set(KeyGeometry, g)
	}))
	require.NoError(t, store.Set(KeyLanguage, "filipino"))
	require.NoError(t, NewSettings(store).SetInputPaths([]string{"/b.wav", "/a.flac"}))
	require.NoError(t, store.Sync())
}

func assertReloaded(t *testing.T, store *Store, g model.Geometry) {
	t.Helper()
	var loaded model.Geometry
	_ = store.WithGroup(GroupMainWindow, func() error {
		loaded = Value(store, KeyGeometry, model.Geometry{})
		return nil
	})
	assert.Equal(t, g, loaded)
	assert.Equal(t, "filipino", NewSettings(store).GetLanguage(""))
	assert.Equal(t, []string{"/b.wav", "/a.flac"}, NewSettings(store).GetInputPaths())
}

func TestYAMLBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultYAMLFile)
	g := model.Geometry{X: 12.5, Y: 40, Width: 800, Height: 600}

	backend, err := OpenYAMLBackend(path)
	require.NoError(t, err)
	store := NewStore(backend, logging.Discard())
	saveGeometry(t, store, g)
	require.NoError(t, store.Close())

	_, err = os.Stat(path)
	require.NoError(t, err, "settings file should exist after Sync")

	reopened, err := OpenYAMLBackend(path)
	require.NoError(t, err)
	store = NewStore(reopened, logging.Discard())
	defer store.Close()
	assertReloaded(t, store, g)
}

func TestYAMLBackendUnsyncedValuesAreLost(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultYAMLFile)

	backend, err := OpenYAMLBackend(path)
	require.NoError(t, err)
	store := NewStore(backend, logging.Discard())
	require.NoError(t, store.Set(KeyLanguage, "german"))
	require.NoError(t, store.Close())

	reopened, err := OpenYAMLBackend(path)
	require.NoError(t, err)
	assert.Equal(t, "fallback", Value(NewStore(reopened, logging.Discard()), KeyLanguage, "fallback"))
}

func TestYAMLBackendRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultYAMLFile)
	require.NoError(t, os.WriteFile(path, []byte("language: [unterminated"), 0600))

	_, err := OpenYAMLBackend(path)
	require.Error(t, err)
}

func TestSQLiteBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultSQLiteFile)
	g := model.Geometry{X: 0, Y: 0, Width: 1024, Height: 768}

	backend, err := OpenSQLiteBackend(path)
	require.NoError(t, err)
	store := NewStore(backend, logging.Discard())
	saveGeometry(t, store, g)
	require.NoError(t, store.Close())

	reopened, err := OpenSQLiteBackend(path)
	require.NoError(t, err)
	store = NewStore(reopened, logging.Discard())
	defer store.Close()
	assertReloaded(t, store, g)
}

func TestSQLiteBackendOverwrite(t *testing.T) {
	backend, err := OpenSQLiteBackend(filepath.Join(t.TempDir(), DefaultSQLiteFile))
	require.NoError(t, err)
	defer backend.Close()

	require.NoError(t, backend.Commit(map[string]string{KeyLanguage: `"german"`}))
	require.NoError(t, backend.Commit(map[string]string{KeyLanguage: `"japanese"`}))

	value, ok, err := backend.Lookup(KeyLanguage)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"japanese"`, value)

	_, ok, err = backend.Lookup("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPreferencesBackend(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	store := NewStore(NewPreferencesBackend(app.Preferences()), logging.Discard())
	g := model.Geometry{X: 5, Y: 6, Width: 640, Height: 480}
	saveGeometry(t, store, g)

	// a second store over the same preferences sees the committed values
	assertReloaded(t, NewStore(NewPreferencesBackend(app.Preferences()), logging.Discard()), g)
}

func TestOpenBackend(t *testing.T) {
	dir := t.TempDir()

	backend, err := OpenBackend(&Config{SettingsBackend: BackendYAML, SettingsPath: filepath.Join(dir, "s.yaml")}, nil)
	require.NoError(t, err)
	assert.IsType(t, &YAMLBackend{}, backend)

	backend, err = OpenBackend(&Config{SettingsBackend: BackendSQLite, SettingsPath: filepath.Join(dir, "s.db")}, nil)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteBackend{}, backend)
	require.NoError(t, backend.Close())

	_, err = OpenBackend(&Config{SettingsBackend: BackendPreferences}, nil)
	require.Error(t, err)

	_, err = OpenBackend(&Config{SettingsBackend: "registry"}, nil)
	require.ErrorIs(t, err, ErrUnknownBackend)
}
