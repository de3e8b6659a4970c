package scenedoc

import (
	"math/rand"

	"github.com/goccy/go-json"
)

// RectKind is the registry tag of Rect.
const RectKind = "Rect"

// Rect is a solid colored rectangle.
type Rect struct {
	Base
	Rectangular
	Color Color `json:"color"`
}

// NewRect returns a rectangle with the given geometry and color.
func NewRect(id, name string, x, y, w, h float64, c Color) *Rect {
	return &Rect{
		Base:        Base{ID: id, Name: name},
		Rectangular: Rectangular{X: x, Y: y, Width: w, Height: h},
		Color:       c,
	}
}

// Kind implements Component.
func (r *Rect) Kind() string { return RectKind }

// Draw implements Component.
func (r *Rect) Draw(s Surface) {
	s.FillRect(r.Bounds(), r.Color)
}

// MarshalJSON implements json.Marshaler.
func (r *Rect) MarshalJSON() ([]byte, error) {
	type payload Rect
	p := payload(*r)
	p.ClickAction = orEmpty(p.ClickAction)
	return json.Marshal(struct {
		Type string `json:"type"`
		payload
	}{RectKind, p})
}

func newDefaultRect(ctx NewContext) Component {
	return NewRect(ctx.unique(RectKind), RectKind, 10, 10, 40, 80, randomColor())
}

func decodeRect(obj Object, cat *Catalog) (Component, error) {
	r := obj.Fields(RectKind)
	rect := &Rect{
		Base:        decodeBase(r, cat),
		Rectangular: decodeRectangular(r),
		Color:       r.Color("color"),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return rect, nil
}

// randomColor returns an opaque color with random 8-bit channels.
func randomColor() Color {
	v := rand.Uint32()
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}
