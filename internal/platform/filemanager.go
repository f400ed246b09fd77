package platform

import (
	"fmt"

	"fyne.io/fyne/v2/storage"
	"github.com/godbus/dbus/v5"
)

// freedesktop file manager interface
const (
	fileManagerDest        = "org.freedesktop.FileManager1"
	fileManagerPath        = "/org/freedesktop/FileManager1"
	fileManagerShowFolders = fileManagerDest + ".ShowFolders"
)

// showFolderDBus asks the session's file manager to show dir.
func showFolderDBus(dir string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("session bus unavailable: %w", err)
	}

	uri := storage.NewFileURI(dir).String()
	obj := conn.Object(fileManagerDest, dbus.ObjectPath(fileManagerPath))
	if call := obj.Call(fileManagerShowFolders, 0, []string{uri}, ""); call.Err != nil {
		return fmt.Errorf("file manager call failed: %w", call.Err)
	}
	return nil
}
