package scenedoc

import (
	"github.com/goccy/go-json"
)

// GroupKind is the registry tag of Group.
const GroupKind = "Group"

// Group owns an ordered list of child components. Its bounds are the union
// of its children's bounds; destroying a group destroys its children.
type Group struct {
	Base
	children []Component
	disposed bool
}

// NewGroup returns a group owning children, in order.
func NewGroup(id, name string, children ...Component) *Group {
	g := &Group{Base: Base{ID: id, Name: name}}
	for _, c := range children {
		g.AddChild(c)
	}
	return g
}

// Kind implements Component.
func (g *Group) Kind() string { return GroupKind }

// --- Tree manipulation ---

// AddChild appends child to this group's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is this group or one of its ancestors (cycle).
func (g *Group) AddChild(child Component) {
	g.AddChildAt(child, len(g.children))
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (g *Group) AddChildAt(child Component, index int) {
	if child == nil {
		panic("scenedoc: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(g, "AddChildAt")
	}
	if cg, ok := child.(*Group); ok && isAncestor(cg, g) {
		panic("scenedoc: adding child would create a cycle")
	}
	if index < 0 || index > len(g.children) {
		panic("scenedoc: child index out of range")
	}
	if p := child.Common().parent; p != nil {
		if p == g && g.indexOf(child) < index {
			index--
		}
		p.removeChild(child)
	}
	child.Common().parent = g
	g.children = append(g.children, nil)
	copy(g.children[index+1:], g.children[index:])
	g.children[index] = child
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(g)
	}
}

// RemoveChild detaches child from this group.
// Panics if child's parent is not g.
func (g *Group) RemoveChild(child Component) {
	if child.Common().parent != g {
		panic("scenedoc: child's parent is not this group")
	}
	g.removeChild(child)
	child.Common().parent = nil
}

// RemoveChildAt removes and returns the child at the given index.
func (g *Group) RemoveChildAt(index int) Component {
	if index < 0 || index >= len(g.children) {
		panic("scenedoc: child index out of range")
	}
	child := g.children[index]
	g.removeChild(child)
	child.Common().parent = nil
	return child
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (g *Group) Children() []Component {
	return g.children
}

// NumChildren returns the number of children.
func (g *Group) NumChildren() int {
	return len(g.children)
}

// ChildAt returns the child at the given index.
func (g *Group) ChildAt(index int) Component {
	return g.children[index]
}

func (g *Group) indexOf(child Component) int {
	for i, c := range g.children {
		if c == child {
			return i
		}
	}
	return -1
}

// removeChild removes child from g.children without clearing its parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (g *Group) removeChild(child Component) {
	for i, c := range g.children {
		if c == child {
			copy(g.children[i:], g.children[i+1:])
			g.children[len(g.children)-1] = nil
			g.children = g.children[:len(g.children)-1]
			return
		}
	}
}

// --- Disposal ---

// Dispose detaches the group from its parent and recursively destroys all
// descendants. Disposing twice is a no-op.
func (g *Group) Dispose() {
	if g.disposed {
		return
	}
	if g.parent != nil {
		g.parent.RemoveChild(g)
	}
	g.dispose()
}

func (g *Group) dispose() {
	g.disposed = true
	for _, child := range g.children {
		child.Common().parent = nil
		if cg, ok := child.(*Group); ok {
			cg.dispose()
		}
	}
	g.children = nil
	g.ClickAction = nil
}

// IsDisposed returns true if this group has been disposed.
func (g *Group) IsDisposed() bool {
	return g.disposed
}

// isAncestor reports whether candidate is g or one of g's ancestors.
func isAncestor(candidate, g *Group) bool {
	for p := g; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// --- Geometry ---

// Bounds returns the union of the children's bounds; an empty group has a
// zero box.
func (g *Group) Bounds() BoundingBox {
	var b BoundingBox
	for _, c := range g.children {
		b = b.Union(c.Bounds())
	}
	return b
}

// Modify maps every child proportionally from the current bounds into box.
// An axis with zero current extent is translated but not scaled.
func (g *Group) Modify(box BoundingBox) {
	box.mustValid()
	old := g.Bounds()
	sx, sy := 1.0, 1.0
	if old.Width > 0 {
		sx = box.Width / old.Width
	}
	if old.Height > 0 {
		sy = box.Height / old.Height
	}
	for _, c := range g.children {
		cb := c.Bounds()
		c.Modify(BoundingBox{
			X:      box.X + (cb.X-old.X)*sx,
			Y:      box.Y + (cb.Y-old.Y)*sy,
			Width:  cb.Width * sx,
			Height: cb.Height * sy,
		})
	}
}

// Draw implements Component by drawing the children in order.
func (g *Group) Draw(s Surface) {
	for _, c := range g.children {
		c.Draw(s)
	}
}

// --- JSON ---

// MarshalJSON implements json.Marshaler.
func (g *Group) MarshalJSON() ([]byte, error) {
	children := g.children
	if children == nil {
		children = []Component{}
	}
	return json.Marshal(struct {
		Type        string      `json:"type"`
		ID          string      `json:"id"`
		Name        string      `json:"name"`
		ClickAction []Action    `json:"clickAction"`
		Children    []Component `json:"children"`
	}{GroupKind, g.ID, g.Name, orEmpty(g.ClickAction), children})
}

func newDefaultGroup(ctx NewContext) Component {
	return NewGroup(ctx.unique(GroupKind), GroupKind)
}

func decodeGroup(obj Object, cat *Catalog) (Component, error) {
	r := obj.Fields(GroupKind)
	g := &Group{Base: decodeBase(r, cat)}
	if raw := r.Raw("children", false); raw != nil {
		children, err := cat.Components.DecodeList(raw)
		if r.Nested("children", err) {
			for _, c := range children {
				g.AddChild(c)
			}
		}
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return g, nil
}
