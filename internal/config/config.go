package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/uvr-go/uvr-shell/internal/model"
	"github.com/uvr-go/uvr-shell/internal/platform"
)

// Default process configuration values
const (
	DefaultResourceDir   = "resources"
	DefaultLocalization  = "localization"
	DefaultYAMLFile      = "settings.yaml"
	DefaultSQLiteFile    = "settings.db"
	DefaultDisplayWidth  = 1920
	DefaultDisplayHeight = 1080
)

// Config is the process configuration, read from the environment (and an
// optional .env file) once at startup.
type Config struct {
	AppID           string  `env:"UVR_APP_ID" envDefault:"com.uvr.ultimate-vocal-remover"`
	ResourceDir     string  `env:"UVR_RESOURCE_DIR"`
	SettingsBackend string  `env:"UVR_SETTINGS_BACKEND" envDefault:"preferences"`
	SettingsPath    string  `env:"UVR_SETTINGS_PATH"`
	LogLevel        string  `env:"UVR_LOG_LEVEL" envDefault:"info"`
	Scale           string  `env:"UVR_SCALE" envDefault:"1"`
	DisplayWidth    float32 `env:"UVR_DISPLAY_WIDTH" envDefault:"1920"`
	DisplayHeight   float32 `env:"UVR_DISPLAY_HEIGHT" envDefault:"1080"`
	Workers         int     `env:"UVR_WORKERS" envDefault:"4"`
	DefaultLanguage string  `env:"UVR_DEFAULT_LANGUAGE" envDefault:"english"`
}

// Load reads the configuration from the environment and fills in the
// path defaults that depend on the host.
func Load() (*Config, error) {
	// .env is optional; variables may come from the real environment
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() error {
	if c.ResourceDir == "" {
		base, err := platform.BasePath()
		if err != nil {
			return fmt.Errorf("config: failed to resolve base path: %w", err)
		}
		c.ResourceDir = filepath.Join(base, DefaultResourceDir)
	}

	if c.SettingsPath == "" {
		var name string
		switch c.SettingsBackend {
		case BackendYAML:
			name = DefaultYAMLFile
		case BackendSQLite:
			name = DefaultSQLiteFile
		}
		if name != "" {
			path, err := platform.UserConfigPath(name)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			c.SettingsPath = path
		}
	}
	return nil
}

func (c *Config) validate() error {
	switch c.SettingsBackend {
	case BackendPreferences, BackendYAML, BackendSQLite:
	default:
		return fmt.Errorf("config: %w: %q", ErrUnknownBackend, c.SettingsBackend)
	}

	if c.AppID == "" {
		return errors.New("config: UVR_APP_ID must not be empty")
	}
	if c.DisplayWidth <= 0 || c.DisplayHeight <= 0 {
		return fmt.Errorf("config: display size must be positive, got %gx%g", c.DisplayWidth, c.DisplayHeight)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: UVR_WORKERS must be at least 1, got %d", c.Workers)
	}
	if scale, err := strconv.ParseFloat(c.Scale, 32); err != nil || scale <= 0 {
		return fmt.Errorf("config: UVR_SCALE must be a positive number, got %q", c.Scale)
	}
	return nil
}

// Display returns the primary display size used for default window placement.
func (c *Config) Display() model.Size {
	return model.NewSize(c.DisplayWidth, c.DisplayHeight)
}

// LocalizationDir returns the directory holding language packs.
func (c *Config) LocalizationDir() string {
	return filepath.Join(c.ResourceDir, DefaultLocalization)
}

// ApplyScaling exports the display scaling flags read by the UI toolkit. It
// must run before the first window is created.
func (c *Config) ApplyScaling() error {
	return os.Setenv("FYNE_SCALE", c.Scale)
}
