package config

import (
	"github.com/uvr-go/uvr-shell/internal/platform"
)

// Settings groups
const (
	GroupMainWindow     = "mainwindow"
	GroupSettingsWindow = "settingswindow"
	GroupSeparation     = "seperation"
)

// Settings keys (relative to their group)
const (
	KeyLanguage   = "language"
	KeyGeometry   = "geometry"
	KeyInputPaths = "input_paths"
	KeyExportPath = "export_path"
	KeyPage       = "page"
)

// Default values
const (
	DefaultLanguage = "english"
	DefaultPage     = 0
	MaxPage         = 3
)

// Settings exposes typed accessors for the application settings on top of
// the shared Store.
type Settings struct {
	store *Store
}

// NewSettings creates a new settings manager
func NewSettings(store *Store) *Settings {
	return &Settings{store: store}
}

// Store returns the underlying settings store
func (s *Settings) Store() *Store {
	return s.store
}

// GetLanguage returns the persisted language identifier, or fallback when
// none was saved
func (s *Settings) GetLanguage(fallback string) string {
	if fallback == "" {
		fallback = DefaultLanguage
	}
	lang := Value(s.store, KeyLanguage, "")
	if lang == "" {
		return fallback
	}
	return lang
}

// SetLanguage stages the language identifier
func (s *Settings) SetLanguage(lang string) error {
	if lang == "" {
		lang = DefaultLanguage
	}
	return s.store.Set(KeyLanguage, lang)
}

// GetInputPaths returns the dropped input files in the order received
func (s *Settings) GetInputPaths() []string {
	var paths []string
	_ = s.store.WithGroup(GroupSeparation, func() error {
		paths = Value(s.store, KeyInputPaths, []string{})
		return nil
	})
	return paths
}

// SetInputPaths stages the dropped input files
func (s *Settings) SetInputPaths(paths []string) error {
	if paths == nil {
		paths = []string{}
	}
	return s.store.WithGroup(GroupSeparation, func() error {
		return s.store.Set(KeyInputPaths, paths)
	})
}

// GetExportPath returns the export directory, defaulting to the user's
// Downloads directory
func (s *Settings) GetExportPath() string {
	var dir string
	_ = s.store.WithGroup(GroupSeparation, func() error {
		dir = Value(s.store, KeyExportPath, "")
		return nil
	})
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			return ""
		}
		return defaultDir
	}
	return dir
}

// SetExportPath stages the export directory
func (s *Settings) SetExportPath(dir string) error {
	return s.store.WithGroup(GroupSeparation, func() error {
		return s.store.Set(KeyExportPath, dir)
	})
}

// GetSettingsPage returns the last opened settings page
func (s *Settings) GetSettingsPage() int {
	page := DefaultPage
	_ = s.store.WithGroup(GroupSettingsWindow, func() error {
		page = Value(s.store, KeyPage, DefaultPage)
		return nil
	})
	return clampPage(page)
}

// SetSettingsPage stages the last opened settings page
func (s *Settings) SetSettingsPage(page int) error {
	return s.store.WithGroup(GroupSettingsWindow, func() error {
		return s.store.Set(KeyPage, clampPage(page))
	})
}

func clampPage(page int) int {
	if page < 0 {
		return 0
	}
	if page > MaxPage {
		return MaxPage
	}
	return page
}

// Sync commits staged settings
func (s *Settings) Sync() error {
	return s.store.Sync()
}
