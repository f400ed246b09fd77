package shell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/uvr-go/uvr-shell/internal/config"
	"github.com/uvr-go/uvr-shell/internal/i18n"
	"github.com/uvr-go/uvr-shell/internal/resources"
	"github.com/uvr-go/uvr-shell/internal/workerpool"
)

// ErrAlreadyInitialized is returned when Initialize runs a second time.
var ErrAlreadyInitialized = errors.New("application context already initialized")

// WindowFactory builds one top-level window against the context.
type WindowFactory func(c *Context) (Window, error)

// BindFunc wires cross-window event handlers once every window exists.
type BindFunc func(c *Context) error

// Options holds the collaborators of a Context.
type Options struct {
	Config     *config.Config
	Logger     *slog.Logger
	Settings   *config.Settings
	Translator *i18n.Translator
	Resources  *resources.Paths
	Pool       *workerpool.Pool
}

// Context is the single application object shared by every window.
type Context struct {
	cfg        *config.Config
	logger     *slog.Logger
	settings   *config.Settings
	store      *config.Store
	translator *i18n.Translator
	resources  *resources.Paths
	pool       *workerpool.Pool
	registry   *Registry
	bus        *Bus

	ctx    context.Context
	cancel context.CancelFunc

	mu           sync.Mutex
	initialized  bool
	ready        bool
	shutdownOnce sync.Once
	shutdownErr  error
}

// New creates the context. No window exists until Initialize.
func New(opts Options) (*Context, error) {
	switch {
	case opts.Config == nil:
		return nil, errors.New("shell: config is required")
	case opts.Settings == nil:
		return nil, errors.New("shell: settings are required")
	case opts.Translator == nil:
		return nil, errors.New("shell: translator is required")
	case opts.Resources == nil:
		return nil, errors.New("shell: resources are required")
	case opts.Pool == nil:
		return nil, errors.New("shell: worker pool is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Context{
		cfg:        opts.Config,
		logger:     logger,
		settings:   opts.Settings,
		store:      opts.Settings.Store(),
		translator: opts.Translator,
		resources:  opts.Resources,
		pool:       opts.Pool,
		registry:   NewRegistry(),
		bus:        NewBus(logger),
		ctx:        ctx,
		cancel:     cancel,
	}, nil
}

// Accessors for the collaborators
func (c *Context) Config() *config.Config       { return c.cfg }
func (c *Context) Logger() *slog.Logger         { return c.logger }
func (c *Context) Settings() *config.Settings   { return c.settings }
func (c *Context) Store() *config.Store         { return c.store }
func (c *Context) Translator() *i18n.Translator { return c.translator }
func (c *Context) Resources() *resources.Paths  { return c.resources }
func (c *Context) Pool() *workerpool.Pool       { return c.pool }
func (c *Context) Registry() *Registry          { return c.registry }
func (c *Context) Bus() *Bus                    { return c.bus }
func (c *Context) Background() context.Context  { return c.ctx }

// Initialize brings the application up: scaling flags, resource check,
// persisted language, windows with their saved geometry, the deferred
// bindings and finally the primary window.
func (c *Context) Initialize(factories []WindowFactory, bind BindFunc) error {
	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		return ErrAlreadyInitialized
	}
	c.initialized = true
	c.mu.Unlock()

	if err := c.cfg.ApplyScaling(); err != nil {
		return fmt.Errorf("failed to apply display scaling: %w", err)
	}

	ids := make([]string, 0, len(i18n.Languages()))
	for _, l := range i18n.Languages() {
		ids = append(ids, l.ID)
	}
	if err := c.resources.Verify(ids...); err != nil {
		return fmt.Errorf("failed to verify resources: %w", err)
	}

	c.translator.OnChange(c.languageChanged)
	On(c.bus, EventLanguageSelected, func(_ context.Context, evt LanguageSelected) error {
		return c.SetLanguage(evt.Language)
	})

	if err := c.translator.Load(c.persistedLanguage()); err != nil {
		c.logger.Warn("language pack rejected", "error", err)
	}

	display := c.cfg.Display()
	for _, factory := range factories {
		w, err := factory(c)
		if err != nil {
			return fmt.Errorf("failed to create window: %w", err)
		}
		if err := c.registry.Register(w); err != nil {
			return err
		}
		g := LoadGeometry(c.store, display, w)
		w.Retranslate()
		c.logger.Debug("window created", "window", w.Name(), "geometry", g.String())
	}

	if bind != nil {
		if err := bind(c); err != nil {
			return fmt.Errorf("failed to bind windows: %w", err)
		}
	}

	names := c.registry.Names()
	if len(names) == 0 {
		return errors.New("no window to show")
	}
	primary, _ := c.registry.Get(names[0])
	primary.Show()

	c.mu.Lock()
	c.ready = true
	c.mu.Unlock()
	c.logger.Info("application initialized", "windows", len(names), "language", c.translator.Current().ID)
	return nil
}

func (c *Context) persistedLanguage() i18n.Language {
	id := c.settings.GetLanguage(c.cfg.DefaultLanguage)
	lang, ok := i18n.Lookup(id)
	if !ok {
		c.logger.Warn("unknown language in settings, using default", "language", id)
		return i18n.Default
	}
	return lang
}

// languageChanged runs after every translator load.
func (c *Context) languageChanged(lang i18n.Language) {
	c.registry.Retranslate()
	c.logger.Debug("windows retranslated", "language", lang.ID)
}

// SetLanguage switches the UI language. Every window is retranslated and the
// choice persisted before it returns. The requested language is stored even
// when its pack is missing.
func (c *Context) SetLanguage(lang i18n.Language) error {
	loadErr := c.translator.Load(lang)

	if err := c.settings.SetLanguage(lang.ID); err != nil {
		return errors.Join(loadErr, fmt.Errorf("failed to store language: %w", err))
	}
	if err := c.store.Sync(); err != nil {
		return errors.Join(loadErr, fmt.Errorf("failed to persist language: %w", err))
	}
	return loadErr
}

// Emit publishes an event on the bus under the context lifetime.
func (c *Context) Emit(name EventName, payload any) error {
	return c.bus.Emit(c.ctx, name, payload)
}

// SaveWindow persists the geometry of w immediately.
func (c *Context) SaveWindow(w Window) error {
	if err := SaveGeometry(c.store, w); err != nil {
		c.logger.Error("failed to save window geometry", "window", w.Name(), "error", err)
		return err
	}
	return nil
}

// Shutdown persists every window geometry, commits and closes the settings
// and stops the worker pool. Only the first call has an effect. Geometries
// are left untouched when Initialize did not complete.
func (c *Context) Shutdown() error {
	c.shutdownOnce.Do(func() {
		c.mu.Lock()
		ready := c.ready
		c.mu.Unlock()

		var errs []error
		if ready {
			c.registry.Each(func(w Window) {
				if err := StageGeometry(c.store, w); err != nil {
					errs = append(errs, fmt.Errorf("window %s: %w", w.Name(), err))
				}
			})
		} else {
			c.logger.Warn("initialization incomplete, window geometry not saved")
		}
		if err := c.store.Sync(); err != nil {
			errs = append(errs, err)
		}
		if err := c.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close settings: %w", err))
		}
		c.pool.Release()
		c.cancel()

		c.shutdownErr = errors.Join(errs...)
		if c.shutdownErr != nil {
			c.logger.Error("shutdown finished with errors", "error", c.shutdownErr)
			return
		}
		c.logger.Info("application shut down")
	})
	return c.shutdownErr
}
