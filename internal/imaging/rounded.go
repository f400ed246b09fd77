// Package imaging holds the pure image transforms used for icon thumbnails.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
)

// Flag thumbnail clipping parameters
const (
	FlagInset  = 2.75
	FlagRadius = 8.0
)

// supersample is the per-axis sample count used to antialias mask edges.
const supersample = 4

// Decode reads a PNG or JPEG image.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// EncodePNG returns img encoded as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Scale resizes src to width x height with Catmull-Rom resampling.
func Scale(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// RoundedThumbnail scales src to width x height and clips it to a rounded
// rectangle inset by inset pixels on every side. Pixels outside the clip are
// fully transparent.
func RoundedThumbnail(src image.Image, width, height int, inset, radius float64) *image.RGBA {
	scaled := Scale(src, width, height)
	mask := RoundedMask(width, height, inset, radius)

	out := image.NewRGBA(scaled.Bounds())
	draw.DrawMask(out, out.Bounds(), scaled, image.Point{}, mask, image.Point{}, draw.Src)
	return out
}

// RoundedMask returns an antialiased alpha mask of a rounded rectangle.
func RoundedMask(width, height int, inset, radius float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))

	x0, y0 := inset, inset
	x1, y1 := float64(width)-inset, float64(height)-inset
	if x1 <= x0 || y1 <= y0 {
		return mask
	}
	radius = math.Max(0, math.Min(radius, math.Min(x1-x0, y1-y0)/2))

	const samples = supersample * supersample
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			hits := 0
			for sy := 0; sy < supersample; sy++ {
				for sx := 0; sx < supersample; sx++ {
					x := float64(px) + (float64(sx)+0.5)/supersample
					y := float64(py) + (float64(sy)+0.5)/supersample
					if insideRoundedRect(x, y, x0, y0, x1, y1, radius) {
						hits++
					}
				}
			}
			mask.SetAlpha(px, py, color.Alpha{A: uint8(hits * 255 / samples)})
		}
	}
	return mask
}

func insideRoundedRect(x, y, x0, y0, x1, y1, r float64) bool {
	if x < x0 || x > x1 || y < y0 || y > y1 {
		return false
	}
	cx := math.Min(math.Max(x, x0+r), x1-r)
	cy := math.Min(math.Max(y, y0+r), y1-r)
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}
