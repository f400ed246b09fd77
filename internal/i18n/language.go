// Package i18n manages the active UI language. A Translator is either in the
// default state (English, no pack loaded) or has exactly one language pack
// loaded from <localization dir>/<language id>.toml. Switching languages
// replaces the pack wholesale and notifies every listener synchronously.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language identifies a supported UI language. ID is the lowercase language
// name, which is also the pack file name.
type Language struct {
	ID   string
	Tag  language.Tag
	Name string
}

func (l Language) String() string {
	return l.ID
}

// Supported languages
var (
	English  = Language{ID: "english", Tag: language.English, Name: "English"}
	German   = Language{ID: "german", Tag: language.German, Name: "Deutsch"}
	Japanese = Language{ID: "japanese", Tag: language.Japanese, Name: "日本語"}
	Filipino = Language{ID: "filipino", Tag: language.Filipino, Name: "Filipino"}
)

// Default is the language rendered when no pack is loaded.
var Default = English

var languages = []Language{English, German, Japanese, Filipino}

// Languages returns the supported languages in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// Lookup finds a supported language by ID, case-insensitively.
func Lookup(id string) (Language, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, l := range languages {
		if l.ID == id {
			return l, true
		}
	}
	return Language{}, false
}

// IsDefault reports whether l is the default language.
func (l Language) IsDefault() bool {
	return l.ID == Default.ID
}
