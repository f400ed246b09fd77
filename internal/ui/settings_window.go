package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/uvr-go/uvr-shell/internal/config"
	"github.com/uvr-go/uvr-shell/internal/i18n"
	"github.com/uvr-go/uvr-shell/internal/platform"
	"github.com/uvr-go/uvr-shell/internal/resources"
	"github.com/uvr-go/uvr-shell/internal/shell"
)

// pageTitles are the menu entries, indexed by page.
var pageTitles = [...]*goi18n.Message{
	PageSeparation:    MsgPageSeparation,
	PageShortcuts:     MsgPageShortcuts,
	PageCustomization: MsgPageCustomization,
	PagePreferences:   MsgPagePreferences,
}

// SettingsWindow holds the settings pages, the language flags, the export
// directory and the command log clear button.
type SettingsWindow struct {
	fyneWindow
	app *shell.Context

	menu      *widget.RadioGroup
	pages     []*fyne.Container
	headings  []*widget.Label
	pageFrame *canvas.Rectangle
	page      int

	languages       []i18n.Language
	languageButtons map[string]*widget.Button
	languageLabel   *widget.Label

	exportTitle *widget.Label
	exportPath  *widget.Label
	exportBtn   *widget.Button
	folderIcon  *canvas.Image
	openBtn     *widget.Button
	exportDir   string

	shortcutsHint *widget.Label
	themeHint     *widget.Label
	clearBtn      *widget.Button
}

// NewSettingsWindow builds the settings window hidden. The last opened page
// is restored.
func NewSettingsWindow(a fyne.App, c *shell.Context) (*SettingsWindow, error) {
	folder, err := loadResource(c.Resources(), resources.FolderIcon)
	if err != nil {
		return nil, err
	}

	languages := i18n.Languages()
	flags, err := renderFlags(c.Background(), c.Pool(), c.Resources(), languages, FlagButtonSize)
	if err != nil {
		return nil, err
	}

	win := a.NewWindow(c.Translator().T(MsgSettingsTitle))
	s := &SettingsWindow{
		fyneWindow:      newFyneWindow(win, SettingsWindowName, config.GroupSettingsWindow, SettingsWindowSize, c.Logger()),
		app:             c,
		languages:       languages,
		languageButtons: make(map[string]*widget.Button, len(languages)),
		exportDir:       c.Settings().GetExportPath(),
	}
	s.setupUI(folder, flags)
	s.LoadPage(c.Settings().GetSettingsPage())

	win.SetCloseIntercept(s.onClose)
	return s, nil
}

func (s *SettingsWindow) setupUI(folder fyne.Resource, flags map[string]fyne.Resource) {
	s.menu = widget.NewRadioGroup(nil, s.onMenuChanged)
	s.menu.Required = true

	for range pageTitles {
		heading := widget.NewLabel("")
		heading.TextStyle = fyne.TextStyle{Bold: true}
		s.headings = append(s.headings, heading)
	}

	// Separation settings
	s.exportTitle = widget.NewLabel("")
	s.exportPath = widget.NewLabel(s.exportDir)
	s.exportPath.Truncation = fyne.TextTruncateEllipsis
	s.exportBtn = widget.NewButton("", s.onBrowseExport)
	s.folderIcon = sizedIcon(folder, FolderIconSize)
	s.openBtn = widget.NewButton("", s.onOpenExport)
	browse := container.NewStack(s.exportBtn, container.NewCenter(s.folderIcon))
	exportRow := container.NewBorder(nil, nil, browse, s.openBtn, s.exportPath)

	// Shortcuts and customization
	s.shortcutsHint = widget.NewLabel("")
	s.themeHint = widget.NewLabel("")
	s.themeHint.Wrapping = fyne.TextWrapWord

	// Preferences
	s.languageLabel = widget.NewLabel("")
	flagRow := container.NewHBox()
	for _, lang := range s.languages {
		btn := widget.NewButtonWithIcon("", flags[lang.ID], func() {
			s.onLanguageClicked(lang)
		})
		s.languageButtons[lang.ID] = btn
		flagRow.Add(btn)
	}
	s.clearBtn = widget.NewButton("", s.onClearCommand)
	s.clearBtn.Hide()

	s.pages = []*fyne.Container{
		container.NewVBox(s.headings[PageSeparation], s.exportTitle, exportRow),
		container.NewVBox(s.headings[PageShortcuts], s.shortcutsHint),
		container.NewVBox(s.headings[PageCustomization], s.themeHint),
		container.NewVBox(s.headings[PagePreferences], s.languageLabel, flagRow, s.clearBtn),
	}

	s.pageFrame = canvas.NewRectangle(color.Transparent)
	stack := container.NewStack(s.pageFrame)
	for _, p := range s.pages {
		p.Hide()
		stack.Add(p)
	}

	content := container.NewBorder(nil, nil, container.NewVBox(s.menu), nil, container.NewPadded(stack))
	s.win.SetContent(content)
}

// LoadPage shows the page at index and applies its minimum frame width.
func (s *SettingsWindow) LoadPage(index int) {
	if index < 0 || index >= len(s.pages) {
		s.logger.Warn("ignoring unknown settings page", "page", index)
		return
	}

	for i, p := range s.pages {
		if i == index {
			p.Show()
		} else {
			p.Hide()
		}
	}
	s.page = index
	s.pageFrame.SetMinSize(fyne.NewSize(pageMinWidths[index], 0))
	s.pageFrame.Refresh()
	s.selectMenu()

	if err := s.app.Settings().SetSettingsPage(index); err != nil {
		s.logger.Error("failed to store settings page", "error", err)
	}
}

// Page returns the index of the visible page.
func (s *SettingsWindow) Page() int {
	return s.page
}

// PageMinWidth returns the minimum frame width of the visible page.
func (s *SettingsWindow) PageMinWidth() float32 {
	return s.pageFrame.MinSize().Width
}

func (s *SettingsWindow) selectMenu() {
	if s.page < len(s.menu.Options) {
		s.menu.Selected = s.menu.Options[s.page]
		s.menu.Refresh()
	}
}

func (s *SettingsWindow) onMenuChanged(selected string) {
	for i, option := range s.menu.Options {
		if option == selected && i != s.page {
			s.LoadPage(i)
			return
		}
	}
}

// Retranslate re-applies every static text and marks the active language.
func (s *SettingsWindow) Retranslate() {
	tr := s.app.Translator()
	s.win.SetTitle(tr.T(MsgSettingsTitle))

	options := make([]string, len(pageTitles))
	for i, msg := range pageTitles {
		options[i] = tr.T(msg)
		s.headings[i].SetText(options[i])
	}
	s.menu.Options = options
	s.selectMenu()

	s.exportTitle.SetText(tr.T(MsgExportDirectory))
	s.openBtn.SetText(tr.T(MsgOpenDirectory))
	s.shortcutsHint.SetText(tr.T(MsgNoShortcuts))
	s.themeHint.SetText(tr.T(MsgThemeHint))
	s.languageLabel.SetText(tr.T(MsgLanguage))
	s.clearBtn.SetText(tr.T(MsgClearCommand))

	s.markLanguage(tr.Current())
}

// markLanguage highlights the button of the active language only.
func (s *SettingsWindow) markLanguage(active i18n.Language) {
	for id, btn := range s.languageButtons {
		if id == active.ID {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

// SelectedLanguage returns the ID of the highlighted language button.
func (s *SettingsWindow) SelectedLanguage() string {
	for id, btn := range s.languageButtons {
		if btn.Importance == widget.HighImportance {
			return id
		}
	}
	return ""
}

func (s *SettingsWindow) onLanguageClicked(lang i18n.Language) {
	if err := s.app.Emit(shell.EventLanguageSelected, shell.LanguageSelected{Language: lang}); err != nil {
		s.logger.Error("failed to switch language", "language", lang.ID, "error", err)
	}
}

// Present shows the settings window and brings it to the front.
func (s *SettingsWindow) Present() {
	s.Show()
	s.win.RequestFocus()
}

// SetClearVisible shows or hides the command log clear button.
func (s *SettingsWindow) SetClearVisible(visible bool) {
	if visible {
		s.clearBtn.Show()
	} else {
		s.clearBtn.Hide()
	}
}

// ClearVisible reports whether the clear button is shown.
func (s *SettingsWindow) ClearVisible() bool {
	return s.clearBtn.Visible()
}

func (s *SettingsWindow) onClearCommand() {
	if err := s.app.Emit(shell.EventCommandCleared, shell.CommandCleared{}); err != nil {
		s.logger.Error("failed to clear command line", "error", err)
	}
}

func (s *SettingsWindow) onBrowseExport() {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			s.logger.Error("folder dialog failed", "error", err)
			return
		}
		if uri == nil {
			return
		}
		s.confirmExport(uri.Path())
	}, s.win)

	if s.exportDir != "" {
		if start, err := storage.ListerForURI(storage.NewFileURI(s.exportDir)); err == nil {
			d.SetLocation(start)
		}
	}
	d.Show()
}

func (s *SettingsWindow) confirmExport(dir string) {
	if err := s.app.Emit(shell.EventExportConfirmed, shell.ExportConfirmed{Dir: dir}); err != nil {
		s.logger.Error("failed to set export directory", "dir", dir, "error", err)
	}
}

// SetExportDir stores the export directory.
func (s *SettingsWindow) SetExportDir(dir string) error {
	settings := s.app.Settings()
	if err := settings.SetExportPath(dir); err != nil {
		return err
	}
	if err := settings.Sync(); err != nil {
		return err
	}
	s.exportDir = dir
	s.exportPath.SetText(dir)
	return nil
}

// ExportDir returns the current export directory.
func (s *SettingsWindow) ExportDir() string {
	return s.exportDir
}

func (s *SettingsWindow) onOpenExport() {
	if err := platform.CreateDirectoryIfNotExists(s.exportDir); err != nil {
		s.logger.Error("failed to create export directory", "dir", s.exportDir, "error", err)
		return
	}
	if err := platform.OpenDirectory(s.exportDir); err != nil {
		s.logger.Error("failed to open export directory", "dir", s.exportDir, "error", err)
	}
}

// onClose saves the geometry and hides the window so it can be reshown.
func (s *SettingsWindow) onClose() {
	if err := s.app.SaveWindow(s); err != nil {
		s.logger.Error("failed to save settings window", "error", err)
	}
	s.Hide()
}
