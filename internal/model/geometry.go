package model

import "fmt"

// Size is a width/height pair in device independent pixels.
type Size struct {
	Width  float32 `json:"width" yaml:"width"`
	Height float32 `json:"height" yaml:"height"`
}

// NewSize returns a Size with the given dimensions.
func NewSize(width, height float32) Size {
	return Size{Width: width, Height: height}
}

// IsZero reports whether either dimension is not positive.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Geometry is a window's on-screen position and size.
type Geometry struct {
	X      float32 `json:"x" yaml:"x"`
	Y      float32 `json:"y" yaml:"y"`
	Width  float32 `json:"width" yaml:"width"`
	Height float32 `json:"height" yaml:"height"`
}

// Size returns the size part of the geometry.
func (g Geometry) Size() Size {
	return Size{Width: g.Width, Height: g.Height}
}

// Center returns the centre point of the geometry.
func (g Geometry) Center() (float32, float32) {
	return g.X + g.Width/2, g.Y + g.Height/2
}

// Valid reports whether the geometry can be applied to a window.
func (g Geometry) Valid() bool {
	return g.Width > 0 && g.Height > 0
}

// MoveCenter returns a copy of g moved so that its centre is at (cx, cy).
func (g Geometry) MoveCenter(cx, cy float32) Geometry {
	g.X = cx - g.Width/2
	g.Y = cy - g.Height/2
	return g
}

func (g Geometry) String() string {
	return fmt.Sprintf("%gx%g+%g+%g", g.Width, g.Height, g.X, g.Y)
}

// CenteredGeometry places a window of the given size in the middle of the
// display. The window keeps its size even when larger than the display.
func CenteredGeometry(display, window Size) Geometry {
	g := Geometry{Width: window.Width, Height: window.Height}
	return g.MoveCenter(display.Width/2, display.Height/2)
}
