package shell

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uvr-go/uvr-shell/internal/config"
	uvri18n "github.com/uvr-go/uvr-shell/internal/i18n"
	"github.com/uvr-go/uvr-shell/internal/model"
	"github.com/uvr-go/uvr-shell/internal/resources"
)

func TestNewRequiresCollaborators(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestInitializeShowsPrimaryWindowOnly(t *testing.T) {
	f := newFixture(t, tempSettings(t), testResources())

	bound := 0
	err := f.app.Initialize(f.factories(), func(c *Context) error {
		bound++
		assert.Equal(t, 2, c.Registry().Len(), "every window exists before binding")
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, bound)
	assert.Equal(t, 1, f.main.shown)
	assert.Zero(t, f.settings.shown)
	assert.Equal(t, "1.5", os.Getenv("FYNE_SCALE"))
	assert.Equal(t, uvri18n.English, f.app.Translator().Current())
	assert.Equal(t, "Settings", f.settings.title)

	display := model.NewSize(1920, 1080)
	assert.Equal(t, model.CenteredGeometry(display, f.main.size), f.main.geometry)
	assert.Equal(t, model.CenteredGeometry(display, f.settings.size), f.settings.geometry)

	assert.ErrorIs(t, f.app.Initialize(f.factories(), nil), ErrAlreadyInitialized)
}

func TestInitializeRestoresPersistedLanguage(t *testing.T) {
	path := tempSettings(t)
	store := openStore(t, path)
	require.NoError(t, config.NewSettings(store).SetLanguage(uvri18n.German.ID))
	require.NoError(t, store.Sync())
	require.NoError(t, store.Close())

	f := newFixture(t, path, testResources())
	require.NoError(t, f.app.Initialize(f.factories(), nil))

	assert.Equal(t, uvri18n.German, f.app.Translator().Current())
	assert.Equal(t, "Einstellungen", f.main.title)
	assert.Equal(t, "Einstellungen", f.settings.title)
}

func TestInitializeFailsOnMissingDefaultAsset(t *testing.T) {
	fsys := testResources()
	delete(fsys, resources.SettingsIcon)
	f := newFixture(t, tempSettings(t), fsys)

	err := f.app.Initialize(f.factories(), nil)
	assert.ErrorIs(t, err, resources.ErrMissingResource)
	assert.Zero(t, f.main.shown)
}

func TestInitializeStopsOnFactoryError(t *testing.T) {
	f := newFixture(t, tempSettings(t), testResources())
	errBoom := errors.New("boom")

	err := f.app.Initialize([]WindowFactory{
		func(*Context) (Window, error) { return nil, errBoom },
	}, nil)
	assert.ErrorIs(t, err, errBoom)
}

func TestInitializeRejectsDuplicateWindows(t *testing.T) {
	f := newFixture(t, tempSettings(t), testResources())
	factory := func(*Context) (Window, error) { return f.main, nil }

	err := f.app.Initialize([]WindowFactory{factory, factory}, nil)
	assert.ErrorIs(t, err, ErrDuplicateWindow)
}

func TestLanguageSelectionRetranslatesAndPersists(t *testing.T) {
	path := tempSettings(t)
	f := newFixture(t, path, testResources())
	require.NoError(t, f.app.Initialize(f.factories(), nil))
	before := f.settings.retranslated

	require.NoError(t, f.app.Emit(EventLanguageSelected, LanguageSelected{Language: uvri18n.German}))
	assert.Equal(t, "Einstellungen", f.main.title)
	assert.Equal(t, "Einstellungen", f.settings.title)
	assert.Equal(t, before+1, f.settings.retranslated)

	reopened := config.NewSettings(openStore(t, path))
	assert.Equal(t, uvri18n.German.ID, reopened.GetLanguage(""), "language synced on switch")

	require.NoError(t, f.app.SetLanguage(uvri18n.English))
	assert.Equal(t, "Settings", f.main.title)
}

func TestMissingPackFallsBackToDefault(t *testing.T) {
	f := newFixture(t, tempSettings(t), testResources())
	require.NoError(t, f.app.Initialize(f.factories(), nil))
	require.NoError(t, f.app.SetLanguage(uvri18n.German))

	require.NoError(t, f.app.SetLanguage(uvri18n.Filipino))
	assert.Equal(t, uvri18n.English, f.app.Translator().Current())
	assert.Equal(t, "Settings", f.main.title)
	assert.Equal(t, "Settings", f.settings.title)
}

func TestShutdownPersistsEveryWindow(t *testing.T) {
	path := tempSettings(t)
	f := newFixture(t, path, testResources())
	require.NoError(t, f.app.Initialize(f.factories(), nil))

	f.main.geometry = model.Geometry{X: 1, Y: 2, Width: 700, Height: 500}
	f.settings.geometry = model.Geometry{X: 3, Y: 4, Width: 820, Height: 610}

	require.NoError(t, f.app.Shutdown())
	require.NoError(t, f.app.Shutdown(), "second shutdown is a no-op")

	store := openStore(t, path)
	display := model.NewSize(1920, 1080)
	assert.Equal(t, f.main.geometry, LoadGeometry(store, display, &fakeWindow{group: config.GroupMainWindow, size: f.main.size}))
	assert.Equal(t, f.settings.geometry, LoadGeometry(store, display, &fakeWindow{group: config.GroupSettingsWindow, size: f.settings.size}))

	err := f.app.Pool().Submit(f.app.ctx, func() {})
	assert.Error(t, err, "pool released")
}

func TestSaveWindowCommitsImmediately(t *testing.T) {
	path := tempSettings(t)
	f := newFixture(t, path, testResources())
	require.NoError(t, f.app.Initialize(f.factories(), nil))

	f.settings.geometry = model.Geometry{X: 5, Y: 6, Width: 810, Height: 620}
	require.NoError(t, f.app.SaveWindow(f.settings))

	store := openStore(t, path)
	got := LoadGeometry(store, model.NewSize(1920, 1080), &fakeWindow{group: config.GroupSettingsWindow, size: f.settings.size})
	assert.Equal(t, f.settings.geometry, got)
}

func TestShutdownAfterFailedInitializeKeepsGeometry(t *testing.T) {
	path := tempSettings(t)
	f := newFixture(t, path, testResources())
	errBoom := errors.New("boom")

	err := f.app.Initialize([]WindowFactory{
		func(*Context) (Window, error) { return f.main, nil },
		func(*Context) (Window, error) { return nil, errBoom },
	}, nil)
	require.ErrorIs(t, err, errBoom)
	require.NoError(t, f.app.Shutdown())

	store := openStore(t, path)
	var g model.Geometry
	require.NoError(t, store.WithGroup(config.GroupMainWindow, func() error {
		assert.False(t, store.Get(config.KeyGeometry, &g), "no geometry written for a half-built window")
		return nil
	}))
}

func TestFallbackKeepsSelectedLanguage(t *testing.T) {
	path := tempSettings(t)
	store := openStore(t, path)
	require.NoError(t, config.NewSettings(store).SetLanguage(uvri18n.Filipino.ID))
	require.NoError(t, store.Sync())
	require.NoError(t, store.Close())

	f := newFixture(t, path, testResources())
	require.NoError(t, f.app.Initialize(f.factories(), nil))
	assert.Equal(t, uvri18n.English, f.app.Translator().Current())
	require.NoError(t, f.app.Shutdown())

	reopened := config.NewSettings(openStore(t, path))
	assert.Equal(t, uvri18n.Filipino.ID, reopened.GetLanguage(""), "fallback does not overwrite the saved choice")
}

func TestSelectingMissingPackPersistsChoice(t *testing.T) {
	path := tempSettings(t)
	f := newFixture(t, path, testResources())
	require.NoError(t, f.app.Initialize(f.factories(), nil))

	require.NoError(t, f.app.SetLanguage(uvri18n.Filipino))
	assert.Equal(t, uvri18n.English, f.app.Translator().Current())

	reopened := config.NewSettings(openStore(t, path))
	assert.Equal(t, uvri18n.Filipino.ID, reopened.GetLanguage(""))
}
