package shell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/uvr-go/uvr-shell/internal/i18n"
)

// EventName identifies a UI event.
type EventName string

// UI events
const (
	EventFilesDropped     EventName = "files.dropped"
	EventCommandWritten   EventName = "command.written"
	EventCommandCleared   EventName = "command.cleared"
	EventShowSettings     EventName = "settings.show"
	EventExportConfirmed  EventName = "export.confirmed"
	EventLanguageSelected EventName = "language.selected"
)

// FilesDropped carries the local paths of a file drop, in drop order.
type FilesDropped struct {
	Paths []string
}

// CommandWritten carries a line appended to the command log.
type CommandWritten struct {
	Text string
}

// CommandCleared is emitted when the command log is cleared.
type CommandCleared struct{}

// ShowSettings asks for the settings window to be shown and focused.
type ShowSettings struct{}

// ExportConfirmed carries the export directory the user picked.
type ExportConfirmed struct {
	Dir string
}

// LanguageSelected carries the language the user picked.
type LanguageSelected struct {
	Language i18n.Language
}

var (
	// ErrNoHandler is returned by Emit when nothing handles the event.
	ErrNoHandler = errors.New("no handler registered for event")
	// ErrPayloadType is returned when a handler receives an unexpected payload.
	ErrPayloadType = errors.New("unexpected event payload type")
)

// Event is one emission on the bus.
type Event struct {
	ID      string
	Name    EventName
	Payload any
}

// Handler processes an event.
type Handler func(ctx context.Context, evt Event) error

// Bus is the explicit event registration table. Handlers run synchronously
// on the emitting goroutine, in registration order.
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventName][]Handler
	logger   *slog.Logger
}

// NewBus creates an empty bus.
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		handlers: make(map[EventName][]Handler),
		logger:   logger.With("component", "bus"),
	}
}

// Register appends h to the handlers of name.
func (b *Bus) Register(name EventName, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// On registers a handler receiving the typed payload T.
func On[T any](b *Bus, name EventName, fn func(ctx context.Context, payload T) error) {
	b.Register(name, func(ctx context.Context, evt Event) error {
		payload, ok := evt.Payload.(T)
		if !ok {
			return fmt.Errorf("%w: %s got %T", ErrPayloadType, evt.Name, evt.Payload)
		}
		return fn(ctx, payload)
	})
}

// Handles reports whether name has at least one handler.
func (b *Bus) Handles(name EventName) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[name]) > 0
}

// Emit dispatches payload to every handler of name. All handlers run even if
// one fails; their errors are joined.
func (b *Bus) Emit(ctx context.Context, name EventName, payload any) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[name]...)
	b.mu.RUnlock()

	evt := Event{ID: uuid.NewString(), Name: name, Payload: payload}
	log := b.logger.With("event", name, "id", evt.ID)

	if len(handlers) == 0 {
		log.Warn("event dropped, no handler")
		return fmt.Errorf("%w: %s", ErrNoHandler, name)
	}

	log.Debug("dispatching event", "handlers", len(handlers))
	var errs []error
	for _, h := range handlers {
		if err := h(ctx, evt); err != nil {
			log.Error("event handler failed", "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
