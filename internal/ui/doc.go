// Package ui contains the Fyne desktop windows of the vocal remover: the main
// window taking music files by drag and drop, and the settings window with
// page navigation, language flags and the export directory. Windows talk to
// each other only through events on the shell bus, wired by Bind.
package ui
