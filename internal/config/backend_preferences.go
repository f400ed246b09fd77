package config

import "fyne.io/fyne/v2"

// PreferencesBackend stores settings in the Fyne app preferences. Fyne writes
// its preferences file itself; Commit only hands the values over.
type PreferencesBackend struct {
	prefs fyne.Preferences
}

// NewPreferencesBackend wraps the given preferences.
func NewPreferencesBackend(prefs fyne.Preferences) *PreferencesBackend {
	return &PreferencesBackend{prefs: prefs}
}

// Lookup returns the stored JSON document. An empty string is never valid
// JSON, so it marks an absent key.
func (b *PreferencesBackend) Lookup(key string) (string, bool, error) {
	value := b.prefs.String(key)
	if value == "" {
		return "", false, nil
	}
	return value, true, nil
}

func (b *PreferencesBackend) Commit(values map[string]string) error {
	for key, value := range values {
		b.prefs.SetString(key, value)
	}
	return nil
}

func (b *PreferencesBackend) Close() error {
	return nil
}
