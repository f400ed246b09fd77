package shell

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"

	"github.com/uvr-go/uvr-shell/internal/config"
	uvri18n "github.com/uvr-go/uvr-shell/internal/i18n"
	"github.com/uvr-go/uvr-shell/internal/logging"
	"github.com/uvr-go/uvr-shell/internal/model"
	"github.com/uvr-go/uvr-shell/internal/resources"
	"github.com/uvr-go/uvr-shell/internal/workerpool"
)

var msgTitle = &i18n.Message{ID: "title", Other: "Settings"}

// fakeWindow records what the shell does to it.
type fakeWindow struct {
	name     string
	group    string
	size     model.Size
	geometry model.Geometry
	tr       *uvri18n.Translator

	title        string
	shown        int
	hidden       int
	retranslated int
}

func (w *fakeWindow) Name() string                 { return w.name }
func (w *fakeWindow) SettingsGroup() string        { return w.group }
func (w *fakeWindow) DefaultSize() model.Size      { return w.size }
func (w *fakeWindow) Geometry() model.Geometry     { return w.geometry }
func (w *fakeWindow) SetGeometry(g model.Geometry) { w.geometry = g }
func (w *fakeWindow) Show()                        { w.shown++ }
func (w *fakeWindow) Hide()                        { w.hidden++ }

func (w *fakeWindow) Retranslate() {
	w.retranslated++
	w.title = w.tr.T(msgTitle)
}

func testResources() fstest.MapFS {
	fsys := fstest.MapFS{
		resources.SettingsIcon:       {Data: []byte("png")},
		resources.FolderIcon:         {Data: []byte("png")},
		"localization/german.toml":   {Data: []byte(`title = "Einstellungen"`)},
		"localization/japanese.toml": {Data: []byte(`title = "設定"`)},
	}
	for _, l := range uvri18n.Languages() {
		fsys[resources.FlagPath(l.ID)] = &fstest.MapFile{Data: []byte("png")}
	}
	return fsys
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("FYNE_SCALE", "")
	return &config.Config{
		AppID:           "com.uvr.test",
		SettingsBackend: config.BackendYAML,
		Scale:           "1.5",
		DisplayWidth:    1920,
		DisplayHeight:   1080,
		Workers:         2,
		DefaultLanguage: config.DefaultLanguage,
	}
}

func openStore(t *testing.T, path string) *config.Store {
	t.Helper()
	backend, err := config.OpenYAMLBackend(path)
	require.NoError(t, err)
	return config.NewStore(backend, logging.Discard())
}

type fixture struct {
	app      *Context
	path     string
	main     *fakeWindow
	settings *fakeWindow
}

func newFixture(t *testing.T, path string, fsys fstest.MapFS) *fixture {
	t.Helper()
	logger := logging.Discard()
	res := resources.New(fsys)

	pool, err := workerpool.New(2, logger)
	require.NoError(t, err)

	tr := uvri18n.NewTranslator(res.Localization(), []*i18n.Message{msgTitle}, logger)
	app, err := New(Options{
		Config:     testConfig(t),
		Logger:     logger,
		Settings:   config.NewSettings(openStore(t, path)),
		Translator: tr,
		Resources:  res,
		Pool:       pool,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Shutdown() })

	return &fixture{
		app:      app,
		path:     path,
		main:     &fakeWindow{name: "main", group: config.GroupMainWindow, size: model.NewSize(640, 480), tr: tr},
		settings: &fakeWindow{name: "settings", group: config.GroupSettingsWindow, size: model.NewSize(800, 600), tr: tr},
	}
}

func (f *fixture) factories() []WindowFactory {
	return []WindowFactory{
		func(*Context) (Window, error) { return f.main, nil },
		func(*Context) (Window, error) { return f.settings, nil },
	}
}

func tempSettings(t *testing.T) string {
	return filepath.Join(t.TempDir(), "settings.yaml")
}
