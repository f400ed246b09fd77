package config

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
)

// Settings backend names accepted by UVR_SETTINGS_BACKEND
const (
	BackendPreferences = "preferences"
	BackendYAML        = "yaml"
	BackendSQLite      = "sqlite"
)

// ErrUnknownBackend is returned by OpenBackend for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown settings backend")

// Backend persists committed settings. Keys are fully qualified
// ("mainwindow.geometry"); values are JSON documents.
type Backend interface {
	Lookup(key string) (value string, ok bool, err error)
	Commit(values map[string]string) error
	Close() error
}

// OpenBackend opens the backend selected in cfg. The Fyne app is only used by
// the preferences backend.
func OpenBackend(cfg *Config, app fyne.App) (Backend, error) {
	switch cfg.SettingsBackend {
	case BackendPreferences:
		if app == nil {
			return nil, fmt.Errorf("preferences backend requires a running app")
		}
		return NewPreferencesBackend(app.Preferences()), nil
	case BackendYAML:
		return OpenYAMLBackend(cfg.SettingsPath)
	case BackendSQLite:
		return OpenSQLiteBackend(cfg.SettingsPath)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.SettingsBackend)
	}
}
