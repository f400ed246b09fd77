package ui

import "fyne.io/fyne/v2"

// Window names in the registry
const (
	MainWindowName     = "main"
	SettingsWindowName = "settings"
)

// Default window sizes, centred on the display on first start
var (
	MainWindowSize     = fyne.NewSize(640, 480)
	SettingsWindowSize = fyne.NewSize(820, 560)
)

// Icon sizes
var (
	SettingsIconSize = fyne.NewSize(25, 25)
	FolderIconSize   = fyne.NewSize(18, 18)
	FlagButtonSize   = fyne.NewSize(60, 40)
)

// Settings menu pages, in menu order
const (
	PageSeparation = iota
	PageShortcuts
	PageCustomization
	PagePreferences
)

// Minimum frame width of each settings page, indexed by page
var pageMinWidths = [...]float32{
	PageSeparation:    560,
	PageShortcuts:     420,
	PageCustomization: 460,
	PagePreferences:   480,
}

// Command log
const (
	CommandLogMinHeight float32 = 160
)
