package shell

import (
	"errors"
	"fmt"
	"sync"

	"github.com/uvr-go/uvr-shell/internal/config"
	"github.com/uvr-go/uvr-shell/internal/model"
)

// ErrDuplicateWindow is returned when a window name is registered twice.
var ErrDuplicateWindow = errors.New("window already registered")

// Window is the role every top-level window plays in the shell.
type Window interface {
	// Name is the registry key ("main", "settings").
	Name() string
	// SettingsGroup is the settings namespace holding the window's state.
	SettingsGroup() string
	// DefaultSize is used for the centred default geometry.
	DefaultSize() model.Size
	Geometry() model.Geometry
	SetGeometry(model.Geometry)
	Show()
	Hide()
	// Retranslate re-applies every static text. It must be idempotent.
	Retranslate()
}

// Registry maps window names to windows, keeping registration order.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	windows map[string]Window
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{windows: make(map[string]Window)}
}

// Register adds w under its name.
func (r *Registry) Register(w Window) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := w.Name()
	if _, exists := r.windows[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateWindow, name)
	}
	r.windows[name] = w
	r.order = append(r.order, name)
	return nil
}

// Get returns the window registered under name.
func (r *Registry) Get(name string) (Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.windows[name]
	return w, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Len returns the number of registered windows.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Each calls fn for every window in registration order.
func (r *Registry) Each(fn func(Window)) {
	r.mu.RLock()
	windows := make([]Window, 0, len(r.order))
	for _, name := range r.order {
		windows = append(windows, r.windows[name])
	}
	r.mu.RUnlock()

	for _, w := range windows {
		fn(w)
	}
}

// Retranslate broadcasts a translation refresh to every window.
func (r *Registry) Retranslate() {
	r.Each(func(w Window) { w.Retranslate() })
}

// LoadGeometry reads the window geometry from its settings group, falling
// back to the window's default size centred on display, and applies it.
func LoadGeometry(store *config.Store, display model.Size, w Window) model.Geometry {
	def := model.CenteredGeometry(display, w.DefaultSize())

	g := def
	_ = store.WithGroup(w.SettingsGroup(), func() error {
		g = config.Value(store, config.KeyGeometry, def)
		return nil
	})
	if !g.Valid() {
		g = def
	}

	w.SetGeometry(g)
	return g
}

// StageGeometry writes the current window geometry without committing it.
func StageGeometry(store *config.Store, w Window) error {
	return store.WithGroup(w.SettingsGroup(), func() error {
		return store.Set(config.KeyGeometry, w.Geometry())
	})
}

// SaveGeometry writes the current window geometry and commits it.
func SaveGeometry(store *config.Store, w Window) error {
	if err := StageGeometry(store, w); err != nil {
		return err
	}
	return store.Sync()
}
