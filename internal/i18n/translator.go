package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// PackExt is the language pack file extension.
const PackExt = ".toml"

// ErrInvalidPack is returned when a language pack exists but cannot be parsed.
var ErrInvalidPack = errors.New("invalid language pack")

// Translator resolves UI strings for the active language.
type Translator struct {
	mu        sync.RWMutex
	packs     fs.FS
	defaults  []*i18n.Message
	current   Language
	localizer *i18n.Localizer
	listeners []func(Language)
	logger    *slog.Logger
}

// NewTranslator creates a translator in the default state. packs is the
// localization directory; defaults are the built-in English messages.
func NewTranslator(packs fs.FS, defaults []*i18n.Message, logger *slog.Logger) *Translator {
	t := &Translator{
		packs:    packs,
		defaults: defaults,
		current:  Default,
		logger:   logger.With("component", "translator"),
	}
	t.localizer = i18n.NewLocalizer(t.newBundle(), Default.Tag.String())
	return t
}

func (t *Translator) newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(Default.Tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	if err := bundle.AddMessages(Default.Tag, t.defaults...); err != nil {
		t.logger.Error("invalid default messages", "error", err)
	}
	return bundle
}

// OnChange registers fn to run after every Load, in registration order.
func (t *Translator) OnChange(fn func(Language)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, fn)
}

// Current returns the active language.
func (t *Translator) Current() Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

// PackPath returns the pack file name for lang.
func PackPath(lang Language) string {
	return lang.ID + PackExt
}

// HasPack reports whether a pack file exists for lang.
func (t *Translator) HasPack(lang Language) bool {
	_, err := fs.Stat(t.packs, PackPath(lang))
	return err == nil
}

// Load makes lang the active language and notifies listeners. A missing pack
// for a non-default language silently falls back to the default language; a
// pack that exists but cannot be parsed falls back too and returns an error
// wrapping ErrInvalidPack.
func (t *Translator) Load(lang Language) error {
	if lang.IsDefault() {
		t.install(Default, i18n.NewLocalizer(t.newBundle(), Default.Tag.String()))
		return nil
	}

	data, err := fs.ReadFile(t.packs, PackPath(lang))
	if err != nil {
		// The fallback also hides a pack accidentally left out of a build,
		// hence the warning.
		t.logger.Warn("language pack unavailable, using default language",
			"language", lang.ID, "pack", PackPath(lang), "error", err)
		return t.Load(Default)
	}

	bundle := t.newBundle()
	if _, err := bundle.ParseMessageFileBytes(data, lang.Tag.String()+PackExt); err != nil {
		t.logger.Warn("language pack invalid, using default language", "language", lang.ID, "error", err)
		if loadErr := t.Load(Default); loadErr != nil {
			return loadErr
		}
		return fmt.Errorf("%w %s: %w", ErrInvalidPack, PackPath(lang), err)
	}

	t.install(lang, i18n.NewLocalizer(bundle, lang.Tag.String(), Default.Tag.String()))
	return nil
}

func (t *Translator) install(lang Language, localizer *i18n.Localizer) {
	t.mu.Lock()
	t.current = lang
	t.localizer = localizer
	listeners := make([]func(Language), len(t.listeners))
	copy(listeners, t.listeners)
	t.mu.Unlock()

	t.logger.Info("language loaded", "language", lang.ID)
	for _, fn := range listeners {
		fn(lang)
	}
}

// T returns the translation of msg.
func (t *Translator) T(msg *i18n.Message) string {
	return t.localize(&i18n.LocalizeConfig{DefaultMessage: msg})
}

// Tf returns the translation of msg rendered with data.
func (t *Translator) Tf(msg *i18n.Message, data map[string]any) string {
	return t.localize(&i18n.LocalizeConfig{DefaultMessage: msg, TemplateData: data})
}

// Plural returns the plural form of msg for count. Count is also available to
// the template as {{.Count}}.
func (t *Translator) Plural(msg *i18n.Message, count int, data map[string]any) string {
	td := map[string]any{"Count": count}
	maps.Copy(td, data)
	return t.localize(&i18n.LocalizeConfig{DefaultMessage: msg, PluralCount: count, TemplateData: td})
}

func (t *Translator) localize(cfg *i18n.LocalizeConfig) string {
	t.mu.RLock()
	localizer := t.localizer
	t.mu.RUnlock()

	text, err := localizer.Localize(cfg)
	if err != nil {
		t.logger.Debug("translation failed", "id", cfg.DefaultMessage.ID, "error", err)
		if text == "" {
			return cfg.DefaultMessage.Other
		}
	}
	return text
}
