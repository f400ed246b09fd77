package ui

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/uvr-go/uvr-shell/internal/config"
	"github.com/uvr-go/uvr-shell/internal/i18n"
	"github.com/uvr-go/uvr-shell/internal/resources"
	"github.com/uvr-go/uvr-shell/internal/shell"
	"github.com/uvr-go/uvr-shell/internal/workerpool"
)

// Run starts the application and blocks until it quits.
func Run(cfg *config.Config, logger *slog.Logger) error {
	// Scaling flags are read when the driver starts
	if err := cfg.ApplyScaling(); err != nil {
		return fmt.Errorf("failed to apply display scaling: %w", err)
	}

	a := app.NewWithID(cfg.AppID)
	a.Settings().SetTheme(NewTheme())

	c, err := Start(a, cfg, logger)
	if err != nil {
		return err
	}
	a.Lifecycle().SetOnStopped(func() {
		_ = c.Shutdown()
	})

	a.Run()
	return c.Shutdown()
}

// Start builds the application context on a and initializes every window.
func Start(a fyne.App, cfg *config.Config, logger *slog.Logger) (*shell.Context, error) {
	backend, err := config.OpenBackend(cfg, a)
	if err != nil {
		return nil, err
	}
	store := config.NewStore(backend, logger)

	pool, err := workerpool.New(cfg.Workers, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	res := resources.New(os.DirFS(cfg.ResourceDir))
	c, err := shell.New(shell.Options{
		Config:     cfg,
		Logger:     logger,
		Settings:   config.NewSettings(store),
		Translator: i18n.NewTranslator(res.Localization(), Messages(), logger),
		Resources:  res,
		Pool:       pool,
	})
	if err != nil {
		pool.Release()
		_ = store.Close()
		return nil, err
	}

	logger.Info("starting", "resources", cfg.ResourceDir, "settings", cfg.SettingsBackend)
	if err := c.Initialize(Windows(a), Bind); err != nil {
		_ = c.Shutdown()
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return c, nil
}
