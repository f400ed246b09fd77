// Package resources resolves the fixed logical paths of the bundled UI
// assets (icons, flag images, language packs) against a resource root.
package resources

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// Logical resource paths, relative to the resource root
const (
	ImagesDir       = "images"
	FlagsDir        = "images/flags"
	LocalizationDir = "localization"

	SettingsIcon = "images/settings.png"
	FolderIcon   = "images/folder.png"

	FlagExt = ".png"
)

// ErrMissingResource is returned when a required asset is absent.
var ErrMissingResource = errors.New("missing resource")

// Paths gives access to the resource root.
type Paths struct {
	fsys fs.FS
}

// New returns Paths rooted at fsys.
func New(fsys fs.FS) *Paths {
	return &Paths{fsys: fsys}
}

// FlagPath returns the flag image path for a language ID.
func FlagPath(languageID string) string {
	return path.Join(FlagsDir, languageID+FlagExt)
}

// Read returns the content of the resource at name.
func (p *Paths) Read(name string) ([]byte, error) {
	data, err := fs.ReadFile(p.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingResource, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read resource %s: %w", name, err)
	}
	return data, nil
}

// Localization returns the language pack directory. A missing directory is
// not an error: every non-default language then falls back to the default.
func (p *Paths) Localization() fs.FS {
	sub, err := fs.Sub(p.fsys, LocalizationDir)
	if err != nil {
		return emptyFS{}
	}
	return sub
}

// Verify checks that every asset the UI cannot render without is present:
// the fixed icons and one flag per language ID.
func (p *Paths) Verify(languageIDs ...string) error {
	required := []string{SettingsIcon, FolderIcon}
	for _, id := range languageIDs {
		required = append(required, FlagPath(id))
	}

	var errs []error
	for _, name := range required {
		info, err := fs.Stat(p.fsys, name)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingResource, name))
		case info.IsDir():
			errs = append(errs, fmt.Errorf("%w: %s is a directory", ErrMissingResource, name))
		}
	}
	return errors.Join(errs...)
}

type emptyFS struct{}

func (emptyFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
