package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme is the application theme: the default Fyne theme with the vocal
// remover accent colours and tighter spacing.
type Theme struct{}

var _ fyne.Theme = (*Theme)(nil)

// NewTheme creates the application theme.
func NewTheme() fyne.Theme {
	return &Theme{}
}

// Color returns theme colors
func (t *Theme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x9b, G: 0x4d, B: 0xd6, A: 0xff}
	case theme.ColorNameFocus:
		return color.NRGBA{R: 0x9b, G: 0x4d, B: 0xd6, A: 0x7f}
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x9b, G: 0x4d, B: 0xd6, A: 0x40}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x1b, G: 0x1a, B: 0x20, A: 0xff}
		}
		return color.NRGBA{R: 0xf6, G: 0xf4, B: 0xf9, A: 0xff}
	case theme.ColorNameInputBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x26, G: 0x24, B: 0x2e, A: 0xff}
		}
		return color.NRGBA{R: 0xea, G: 0xe6, B: 0xf0, A: 0xff}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}

// dropAreaColor is the fill of the main window drop target.
func dropAreaColor() color.Color {
	app := fyne.CurrentApp()
	if app == nil {
		return theme.DefaultTheme().Color(theme.ColorNameInputBackground, theme.VariantDark)
	}
	return app.Settings().Theme().Color(theme.ColorNameInputBackground, app.Settings().ThemeVariant())
}
