package model

import "testing"

func TestCenteredGeometry(t *testing.T) {
	tests := []struct {
		name     string
		display  Size
		window   Size
		expected Geometry
	}{
		{"full hd", NewSize(1920, 1080), NewSize(800, 600), Geometry{X: 560, Y: 240, Width: 800, Height: 600}},
		{"same size", NewSize(1024, 768), NewSize(1024, 768), Geometry{X: 0, Y: 0, Width: 1024, Height: 768}},
		{"larger than display", NewSize(800, 600), NewSize(1000, 700), Geometry{X: -100, Y: -50, Width: 1000, Height: 700}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := CenteredGeometry(test.display, test.window)
			if result != test.expected {
				t.Errorf("CenteredGeometry(%v, %v) = %v, expected %v", test.display, test.window, result, test.expected)
			}

			cx, cy := result.Center()
			if cx != test.display.Width/2 || cy != test.display.Height/2 {
				t.Errorf("Center() = (%g, %g), expected display centre (%g, %g)",
					cx, cy, test.display.Width/2, test.display.Height/2)
			}
		})
	}
}

func TestGeometryValid(t *testing.T) {
	if (Geometry{}).Valid() {
		t.Error("Zero geometry should not be valid")
	}
	if !(Geometry{Width: 10, Height: 10}).Valid() {
		t.Error("Positive geometry should be valid")
	}
	if (Geometry{Width: 10, Height: -1}).Valid() {
		t.Error("Negative height should not be valid")
	}
}

func TestSizeIsZero(t *testing.T) {
	if !NewSize(0, 10).IsZero() {
		t.Error("Size with zero width should be zero")
	}
	if NewSize(1, 1).IsZero() {
		t.Error("1x1 size should not be zero")
	}
}

func TestGeometryString(t *testing.T) {
	g := Geometry{X: 10, Y: 20, Width: 300, Height: 200}
	if g.String() != "300x200+10+20" {
		t.Errorf("Expected '300x200+10+20', got '%s'", g.String())
	}
}
