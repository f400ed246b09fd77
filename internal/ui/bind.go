package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/uvr-go/uvr-shell/internal/shell"
)

// Windows returns the window factories in creation order. The first window
// is the primary one.
func Windows(a fyne.App) []shell.WindowFactory {
	return []shell.WindowFactory{
		func(c *shell.Context) (shell.Window, error) { return NewMainWindow(a, c) },
		func(c *shell.Context) (shell.Window, error) { return NewSettingsWindow(a, c) },
	}
}

// Bind wires the cross-window events. It runs once every window exists.
func Bind(c *shell.Context) error {
	mainWin, err := lookup[*MainWindow](c, MainWindowName)
	if err != nil {
		return err
	}
	settingsWin, err := lookup[*SettingsWindow](c, SettingsWindowName)
	if err != nil {
		return err
	}

	bus := c.Bus()
	shell.On(bus, shell.EventFilesDropped, func(_ context.Context, evt shell.FilesDropped) error {
		return mainWin.SetInputFiles(evt.Paths)
	})
	shell.On(bus, shell.EventCommandWritten, func(context.Context, shell.CommandWritten) error {
		settingsWin.SetClearVisible(true)
		return nil
	})
	shell.On(bus, shell.EventCommandCleared, func(context.Context, shell.CommandCleared) error {
		mainWin.ClearCommand()
		settingsWin.SetClearVisible(false)
		return nil
	})
	shell.On(bus, shell.EventShowSettings, func(context.Context, shell.ShowSettings) error {
		settingsWin.Present()
		return nil
	})
	shell.On(bus, shell.EventExportConfirmed, func(_ context.Context, evt shell.ExportConfirmed) error {
		if err := settingsWin.SetExportDir(evt.Dir); err != nil {
			return err
		}
		mainWin.WriteCommand(c.Translator().Tf(MsgExportLogged, map[string]any{"Dir": evt.Dir}))
		return nil
	})

	c.Logger().Debug("windows bound")
	return nil
}

func lookup[T shell.Window](c *shell.Context, name string) (T, error) {
	var zero T
	w, ok := c.Registry().Get(name)
	if !ok {
		return zero, fmt.Errorf("window %q is not registered", name)
	}
	typed, ok := w.(T)
	if !ok {
		return zero, fmt.Errorf("window %q has unexpected type %T", name, w)
	}
	return typed, nil
}
