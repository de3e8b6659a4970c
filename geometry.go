package scenedoc

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Color is a non-premultiplied 8-bit RGBA color. In JSON a color is a
// "#RRGGBB" string, or "#RRGGBBAA" when not fully opaque, so every value
// round-trips exactly.
type Color struct {
	R, G, B, A uint8
}

// ColorWhite is the default text color.
var ColorWhite = Color{0xFF, 0xFF, 0xFF, 0xFF}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 0xFF}
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (the leading '#' is optional).
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("scenedoc: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("scenedoc: invalid hex color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xFF
	}
	return Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// Hex formats the color as "#RRGGBB", appending the alpha byte only when the
// color is not fully opaque.
func (c Color) Hex() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}

// MarshalJSON encodes the color as a hex string.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

// UnmarshalJSON decodes a hex string.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// BoundingBox is an axis-aligned rectangle and the universal resize input for
// components. The coordinate system has its origin at the top-left, with Y
// increasing downward. Width and Height are never negative once a box reaches
// a component.
type BoundingBox struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the box.
// Points on the edge are considered inside.
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width &&
		y >= b.Y && y <= b.Y+b.Height
}

// Intersects reports whether b and other overlap.
// Adjacent boxes (sharing only an edge) are considered intersecting.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.X <= other.X+other.Width &&
		b.X+b.Width >= other.X &&
		b.Y <= other.Y+other.Height &&
		b.Y+b.Height >= other.Y
}

// Empty reports whether the box has no area.
func (b BoundingBox) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Union returns the smallest box containing both b and other.
// An empty box is absorbed by the other operand.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	if b.Empty() {
		return other
	}
	if other.Empty() {
		return b
	}
	x0 := math.Min(b.X, other.X)
	y0 := math.Min(b.Y, other.Y)
	x1 := math.Max(b.X+b.Width, other.X+other.Width)
	y1 := math.Max(b.Y+b.Height, other.Y+other.Height)
	return BoundingBox{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Normalize returns an equivalent box with non-negative extents. Dragging a
// selection handle past the opposite edge yields negative extents; the editor
// normalizes before calling Modify.
func (b BoundingBox) Normalize() BoundingBox {
	if b.Width < 0 {
		b.X += b.Width
		b.Width = -b.Width
	}
	if b.Height < 0 {
		b.Y += b.Height
		b.Height = -b.Height
	}
	return b
}

// mustValid panics if the box has a negative or NaN extent.
func (b BoundingBox) mustValid() {
	if !(b.Width >= 0) || !(b.Height >= 0) {
		panic(fmt.Sprintf("scenedoc: bounding box has negative extent (%v x %v)", b.Width, b.Height))
	}
}
