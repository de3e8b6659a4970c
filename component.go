package scenedoc

// Component is a drawable, positionable scene entity. Concrete kinds embed
// Base and usually Rectangular, and are created through the component
// registry of a Catalog.
type Component interface {
	Kinded

	// Common returns the attributes shared by every kind.
	Common() *Base

	// Bounds returns the component's axis-aligned bounding box.
	Bounds() BoundingBox

	// Draw paints the component onto s. Draw is a pure function of the
	// component's state and already loaded resources; a missing resource
	// makes it a no-op.
	Draw(s Surface)

	// Modify applies a new bounding box. Panics if box has a negative extent.
	Modify(box BoundingBox)
}

// Base holds the attributes common to all components.
type Base struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ClickAction []Action `json:"clickAction"`

	parent *Group
}

// Common returns b.
func (b *Base) Common() *Base { return b }

// Parent returns the group that owns the component, or nil for top-level
// components.
func (b *Base) Parent() *Group { return b.parent }

// Rectangular is the geometry shared by box-shaped components. Its Modify is
// the default policy: adopt the new box as is.
type Rectangular struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Bounds returns the component's box.
func (r *Rectangular) Bounds() BoundingBox {
	return BoundingBox{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Modify adopts box directly.
func (r *Rectangular) Modify(box BoundingBox) {
	box.mustValid()
	r.X, r.Y, r.Width, r.Height = box.X, box.Y, box.Width, box.Height
}

func decodeBase(r *FieldReader, cat *Catalog) Base {
	b := Base{
		ID:   r.String("id"),
		Name: r.OptString("name", ""),
	}
	b.ClickAction = decodeActions(r, cat, "clickAction")
	return b
}

func decodeRectangular(r *FieldReader) Rectangular {
	return Rectangular{
		X:      r.Float("x"),
		Y:      r.Float("y"),
		Width:  r.Extent("width"),
		Height: r.Extent("height"),
	}
}

// decodeActions decodes the optional action array in field. An absent or
// empty array yields nil.
func decodeActions(r *FieldReader, cat *Catalog, field string) []Action {
	raw := r.Raw(field, false)
	if raw == nil {
		return nil
	}
	actions, err := cat.Actions.DecodeList(raw)
	if !r.Nested(field, err) || len(actions) == 0 {
		return nil
	}
	return actions
}

// orEmpty keeps nil action slices from encoding as null.
func orEmpty(actions []Action) []Action {
	if actions == nil {
		return []Action{}
	}
	return actions
}

// Walk calls fn for c and, when c is a group, every descendant in depth-first
// order. Returning false from fn skips the component's children.
func Walk(c Component, fn func(Component) bool) {
	if !fn(c) {
		return
	}
	if g, ok := c.(*Group); ok {
		for _, child := range g.children {
			Walk(child, fn)
		}
	}
}
