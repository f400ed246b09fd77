package ui

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// Built-in English messages. Language packs override them by ID.
var (
	MsgMainTitle     = &i18n.Message{ID: "main_title", Other: "Ultimate Vocal Remover"}
	MsgSettingsTitle = &i18n.Message{ID: "settings_title", Other: "Settings"}
	MsgSettings      = &i18n.Message{ID: "settings", Other: "Settings"}
	MsgDropHint      = &i18n.Message{ID: "drop_hint", Other: "Drag & drop music files here"}
	MsgMusicFiles    = &i18n.Message{
		ID:    "music_files",
		One:   "Total Music File/s: {{.Count}}",
		Other: "Total Music File/s: {{.Count}}",
	}
	MsgCommandLine = &i18n.Message{ID: "command_line", Other: "Command Line"}

	MsgPageSeparation    = &i18n.Message{ID: "page_separation", Other: "Separation Settings"}
	MsgPageShortcuts     = &i18n.Message{ID: "page_shortcuts", Other: "Shortcuts"}
	MsgPageCustomization = &i18n.Message{ID: "page_customization", Other: "Customization"}
	MsgPagePreferences   = &i18n.Message{ID: "page_preferences", Other: "Preferences"}

	MsgExportDirectory = &i18n.Message{ID: "export_directory", Other: "Export Directory"}
	MsgOpenDirectory   = &i18n.Message{ID: "open_directory", Other: "Open"}
	MsgExportLogged    = &i18n.Message{ID: "export_logged", Other: "Export directory set to {{.Dir}}"}
	MsgLanguage        = &i18n.Message{ID: "language", Other: "Language"}
	MsgClearCommand    = &i18n.Message{ID: "clear_command", Other: "Clear Command"}
	MsgNoShortcuts     = &i18n.Message{ID: "no_shortcuts", Other: "No shortcuts configured"}
	MsgThemeHint       = &i18n.Message{ID: "theme_hint", Other: "The interface follows the system light or dark theme"}
)

// Messages returns every built-in message.
func Messages() []*i18n.Message {
	return []*i18n.Message{
		MsgMainTitle,
		MsgSettingsTitle,
		MsgSettings,
		MsgDropHint,
		MsgMusicFiles,
		MsgCommandLine,
		MsgPageSeparation,
		MsgPageShortcuts,
		MsgPageCustomization,
		MsgPagePreferences,
		MsgExportDirectory,
		MsgOpenDirectory,
		MsgExportLogged,
		MsgLanguage,
		MsgClearCommand,
		MsgNoShortcuts,
		MsgThemeHint,
	}
}
