package ui

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"github.com/uvr-go/uvr-shell/internal/config"
	"github.com/uvr-go/uvr-shell/internal/i18n"
	"github.com/uvr-go/uvr-shell/internal/logging"
	"github.com/uvr-go/uvr-shell/internal/resources"
	"github.com/uvr-go/uvr-shell/internal/shell"
)

const germanPack = `
main_title = "Ultimate Vocal Remover (Deutsch)"
settings_title = "Einstellungen"
settings = "Einstellungen"
drop_hint = "Musikdateien hierher ziehen"
page_separation = "Trennung"
clear_command = "Befehl löschen"

[music_files]
one = "Musikdateien gesamt: {{.Count}}"
other = "Musikdateien gesamt: {{.Count}}"
`

func writePNG(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 30, 20))
	for y := range 20 {
		for x := range 30 {
			img.Set(x, y, c)
		}
	}

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// testResourceDir lays out a complete resource directory.
func testResourceDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, resources.SettingsIcon), color.White)
	writePNG(t, filepath.Join(dir, resources.FolderIcon), color.White)
	for _, lang := range i18n.Languages() {
		writePNG(t, filepath.Join(dir, resources.FlagPath(lang.ID)), color.RGBA{R: 200, A: 255})
	}

	loc := filepath.Join(dir, resources.LocalizationDir)
	require.NoError(t, os.MkdirAll(loc, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(loc, "german.toml"), []byte(germanPack), 0o644))
	return dir
}

func testConfig(t *testing.T, resourceDir, settingsPath string) *config.Config {
	t.Helper()
	t.Setenv("FYNE_SCALE", "")
	return &config.Config{
		AppID:           "com.uvr.test",
		ResourceDir:     resourceDir,
		SettingsBackend: config.BackendYAML,
		SettingsPath:    settingsPath,
		LogLevel:        "debug",
		Scale:           "1",
		DisplayWidth:    1920,
		DisplayHeight:   1080,
		Workers:         2,
		DefaultLanguage: config.DefaultLanguage,
	}
}

type testApp struct {
	ctx      *shell.Context
	main     *MainWindow
	settings *SettingsWindow
}

func startApp(t *testing.T, cfg *config.Config) *testApp {
	t.Helper()
	a := test.NewTempApp(t)

	c, err := Start(a, cfg, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Shutdown() })

	main, err := lookup[*MainWindow](c, MainWindowName)
	require.NoError(t, err)
	settings, err := lookup[*SettingsWindow](c, SettingsWindowName)
	require.NoError(t, err)
	return &testApp{ctx: c, main: main, settings: settings}
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return startApp(t, testConfig(t, testResourceDir(t), filepath.Join(t.TempDir(), "settings.yaml")))
}

func fileURIs(paths ...string) []fyne.URI {
	uris := make([]fyne.URI, 0, len(paths))
	for _, p := range paths {
		uris = append(uris, storage.NewFileURI(p))
	}
	return uris
}
