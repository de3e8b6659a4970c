package scenedoc

import "github.com/goccy/go-json"

// TextKind is the registry tag of Text.
const TextKind = "Text"

// Text draws a single run of text in a registered font.
type Text struct {
	Base
	Rectangular
	Text  string  `json:"text"`
	Font  string  `json:"font"`
	Size  float64 `json:"size"`
	Color Color   `json:"color"`

	fonts FontSource
}

// NewText returns a text component resolving its font through fonts.
func NewText(id, name string, x, y, w, h float64, content, font string, size float64, c Color, fonts FontSource) *Text {
	return &Text{
		Base:        Base{ID: id, Name: name},
		Rectangular: Rectangular{X: x, Y: y, Width: w, Height: h},
		Text:        content,
		Font:        font,
		Size:        size,
		Color:       c,
		fonts:       fonts,
	}
}

// Kind implements Component.
func (t *Text) Kind() string { return TextKind }

// Draw implements Component. Nothing is drawn while the font is unavailable.
func (t *Text) Draw(s Surface) {
	if t.fonts == nil {
		return
	}
	face, err := t.fonts.Face(t.Font, t.Size)
	if err != nil {
		debugf("%v", err)
		return
	}
	s.DrawText(t.Text, face, t.Bounds(), t.Color)
}

// MarshalJSON implements json.Marshaler.
func (t *Text) MarshalJSON() ([]byte, error) {
	type payload Text
	p := payload(*t)
	p.ClickAction = orEmpty(p.ClickAction)
	return json.Marshal(struct {
		Type string `json:"type"`
		payload
	}{TextKind, p})
}

func newDefaultText(cat *Catalog) Factory[Component] {
	return func(ctx NewContext) Component {
		return NewText(ctx.unique(TextKind), TextKind, 10, 10, 120, 24, "Text", DefaultFontNames[0], 16, ColorWhite, cat.Fonts)
	}
}

func decodeText(obj Object, cat *Catalog) (Component, error) {
	r := obj.Fields(TextKind)
	t := &Text{
		Base:        decodeBase(r, cat),
		Rectangular: decodeRectangular(r),
		Text:        r.String("text"),
		Font:        r.String("font"),
		Size:        r.Float("size"),
		Color:       r.OptColor("color", ColorWhite),
		fonts:       cat.Fonts,
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
