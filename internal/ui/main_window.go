package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/uvr-go/uvr-shell/internal/config"
	"github.com/uvr-go/uvr-shell/internal/resources"
	"github.com/uvr-go/uvr-shell/internal/shell"
)

// fileScheme is the only URI scheme accepted from a drop.
const fileScheme = "file"

// MainWindow accepts music files by drag and drop and shows the command log.
type MainWindow struct {
	fyneWindow
	app *shell.Context

	filesLabel   *widget.Label
	settingsBtn  *widget.Button
	settingsIcon *canvas.Image
	logTitle     *widget.Label
	logText      *widget.Label
	logScroll    *container.Scroll

	lines      []string
	inputFiles int
}

// NewMainWindow builds the main window. It is not shown until the context
// shows the primary window.
func NewMainWindow(a fyne.App, c *shell.Context) (*MainWindow, error) {
	icon, err := loadResource(c.Resources(), resources.SettingsIcon)
	if err != nil {
		return nil, err
	}

	win := a.NewWindow(c.Translator().T(MsgMainTitle))
	m := &MainWindow{
		fyneWindow: newFyneWindow(win, MainWindowName, config.GroupMainWindow, MainWindowSize, c.Logger()),
		app:        c,
		inputFiles: len(c.Settings().GetInputPaths()),
	}
	m.setupUI(icon)

	win.SetMaster()
	win.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		m.onDropped(uris)
	})
	win.SetCloseIntercept(m.onClose)
	return m, nil
}

func (m *MainWindow) setupUI(icon fyne.Resource) {
	m.filesLabel = widget.NewLabel("")
	m.filesLabel.Alignment = fyne.TextAlignCenter
	m.filesLabel.TextStyle = fyne.TextStyle{Bold: true}

	m.settingsBtn = widget.NewButton("", m.onShowSettings)
	m.settingsBtn.Importance = widget.LowImportance
	m.settingsIcon = sizedIcon(icon, SettingsIconSize)

	// Drop target area
	dropArea := container.NewStack(
		canvas.NewRectangle(dropAreaColor()),
		container.NewCenter(m.filesLabel),
	)

	m.logTitle = widget.NewLabel("")
	m.logTitle.TextStyle = fyne.TextStyle{Bold: true}
	m.logText = widget.NewLabel("")
	m.logText.Wrapping = fyne.TextWrapWord
	m.logScroll = container.NewVScroll(m.logText)
	m.logScroll.SetMinSize(fyne.NewSize(0, CommandLogMinHeight))

	top := container.NewBorder(nil, nil, nil, container.NewHBox(m.settingsIcon, m.settingsBtn), widget.NewSeparator())
	bottom := container.NewBorder(m.logTitle, nil, nil, nil, m.logScroll)
	m.win.SetContent(container.NewBorder(top, bottom, nil, nil, dropArea))
}

// Retranslate re-applies every static text.
func (m *MainWindow) Retranslate() {
	tr := m.app.Translator()
	m.win.SetTitle(tr.T(MsgMainTitle))
	m.settingsBtn.SetText(tr.T(MsgSettings))
	m.logTitle.SetText(tr.T(MsgCommandLine))
	m.refreshFilesLabel()
}

func (m *MainWindow) refreshFilesLabel() {
	tr := m.app.Translator()
	if m.inputFiles == 0 {
		m.filesLabel.SetText(tr.T(MsgDropHint))
		return
	}
	m.filesLabel.SetText(tr.Plural(MsgMusicFiles, m.inputFiles, nil))
}

// onDropped keeps the local file paths of a drop, in drop order. A drop
// without any local file is ignored.
func (m *MainWindow) onDropped(uris []fyne.URI) {
	paths := make([]string, 0, len(uris))
	for _, u := range uris {
		if u == nil || u.Scheme() != fileScheme {
			continue
		}
		paths = append(paths, u.Path())
	}
	if len(paths) == 0 {
		m.logger.Debug("ignoring drop without local files", "uris", len(uris))
		return
	}

	if err := m.app.Emit(shell.EventFilesDropped, shell.FilesDropped{Paths: paths}); err != nil {
		m.logger.Error("failed to handle dropped files", "error", err)
	}
}

// SetInputFiles stores the input files and updates the file count.
func (m *MainWindow) SetInputFiles(paths []string) error {
	settings := m.app.Settings()
	if err := settings.SetInputPaths(paths); err != nil {
		return err
	}
	if err := settings.Sync(); err != nil {
		return err
	}

	m.inputFiles = len(paths)
	m.refreshFilesLabel()
	m.logger.Info("input files set", "count", len(paths))
	return nil
}

// InputFiles returns the number of files from the last drop.
func (m *MainWindow) InputFiles() int {
	return m.inputFiles
}

// WriteCommand appends a line to the command log.
func (m *MainWindow) WriteCommand(text string) {
	m.lines = append(m.lines, text)
	m.logText.SetText(strings.Join(m.lines, "\n"))
	m.logScroll.ScrollToBottom()

	if err := m.app.Emit(shell.EventCommandWritten, shell.CommandWritten{Text: text}); err != nil {
		m.logger.Warn("command line write not propagated", "error", err)
	}
}

// ClearCommand empties the command log.
func (m *MainWindow) ClearCommand() {
	m.lines = nil
	m.logText.SetText("")
}

// CommandText returns the command log content.
func (m *MainWindow) CommandText() string {
	return strings.Join(m.lines, "\n")
}

func (m *MainWindow) onShowSettings() {
	if err := m.app.Emit(shell.EventShowSettings, shell.ShowSettings{}); err != nil {
		m.logger.Error("failed to show settings", "error", err)
	}
}

// onClose persists every window and quits.
func (m *MainWindow) onClose() {
	if err := m.app.Shutdown(); err != nil {
		m.logger.Error("shutdown incomplete", "error", err)
	}
	m.win.Close()
}
