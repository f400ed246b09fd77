package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/uvr-go/uvr-shell/internal/model"
)

// fyneWindow adapts a fyne.Window to the shell window role.
//
// Fyne exposes neither the window position nor the screen size, so the
// position part of the geometry is bookkeeping: a restored window gets its
// saved size and is centred on screen, and the recorded position follows the
// size around the saved centre.
type fyneWindow struct {
	win      fyne.Window
	name     string
	group    string
	size     model.Size
	geometry model.Geometry
	visible  bool
	logger   *slog.Logger
}

func newFyneWindow(win fyne.Window, name, group string, size fyne.Size, logger *slog.Logger) fyneWindow {
	return fyneWindow{
		win:    win,
		name:   name,
		group:  group,
		size:   model.NewSize(size.Width, size.Height),
		logger: logger.With("window", name),
	}
}

func (w *fyneWindow) Name() string            { return w.name }
func (w *fyneWindow) SettingsGroup() string   { return w.group }
func (w *fyneWindow) DefaultSize() model.Size { return w.size }
func (w *fyneWindow) Window() fyne.Window     { return w.win }

// Geometry returns the recorded geometry updated with the current canvas size.
func (w *fyneWindow) Geometry() model.Geometry {
	current := w.win.Canvas().Size()
	if current.Width <= 0 || current.Height <= 0 {
		return w.geometry
	}

	cx, cy := w.geometry.Center()
	g := model.Geometry{Width: current.Width, Height: current.Height}
	return g.MoveCenter(cx, cy)
}

// SetGeometry resizes the window and centres it on screen.
func (w *fyneWindow) SetGeometry(g model.Geometry) {
	w.geometry = g
	w.win.Resize(fyne.NewSize(g.Width, g.Height))
	w.win.CenterOnScreen()
	w.logger.Debug("geometry applied", "geometry", g.String())
}

func (w *fyneWindow) Show() {
	w.visible = true
	w.win.Show()
}

func (w *fyneWindow) Hide() {
	w.visible = false
	w.win.Hide()
}

// Visible reports whether the window was last shown rather than hidden.
func (w *fyneWindow) Visible() bool {
	return w.visible
}
