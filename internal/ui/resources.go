package ui

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/uvr-go/uvr-shell/internal/i18n"
	"github.com/uvr-go/uvr-shell/internal/imaging"
	"github.com/uvr-go/uvr-shell/internal/resources"
	"github.com/uvr-go/uvr-shell/internal/workerpool"
)

// loadResource reads a bundled asset as a Fyne resource.
func loadResource(res *resources.Paths, name string) (fyne.Resource, error) {
	data, err := res.Read(name)
	if err != nil {
		return nil, err
	}
	return fyne.NewStaticResource(path.Base(name), data), nil
}

// sizedIcon shows res at a fixed size, keeping its aspect ratio.
func sizedIcon(res fyne.Resource, size fyne.Size) *canvas.Image {
	img := canvas.NewImageFromResource(res)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(size)
	return img
}

// renderFlag turns a flag image into a rounded thumbnail of the given size.
func renderFlag(res *resources.Paths, lang i18n.Language, size fyne.Size) (fyne.Resource, error) {
	data, err := res.Read(resources.FlagPath(lang.ID))
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("flag %s: %w", lang.ID, err)
	}

	rounded := imaging.RoundedThumbnail(img, int(size.Width), int(size.Height), imaging.FlagInset, imaging.FlagRadius)
	out, err := imaging.EncodePNG(rounded)
	if err != nil {
		return nil, fmt.Errorf("flag %s: %w", lang.ID, err)
	}
	return fyne.NewStaticResource("flag_"+lang.ID+".png", out), nil
}

// renderFlags renders every language flag on the worker pool and waits for
// all of them.
func renderFlags(ctx context.Context, pool *workerpool.Pool, res *resources.Paths, langs []i18n.Language, size fyne.Size) (map[string]fyne.Resource, error) {
	var mu sync.Mutex
	flags := make(map[string]fyne.Resource, len(langs))

	tasks := make([]func() error, 0, len(langs))
	for _, lang := range langs {
		tasks = append(tasks, func() error {
			icon, err := renderFlag(res, lang, size)
			if err != nil {
				return err
			}
			mu.Lock()
			flags[lang.ID] = icon
			mu.Unlock()
			return nil
		})
	}

	if err := pool.Run(ctx, tasks...); err != nil {
		return nil, err
	}
	return flags, nil
}
