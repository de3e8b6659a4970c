package scenedoc

import (
	"fmt"
	"io"
	"sort"

	"github.com/goccy/go-json"
)

// Document is the top-level object that owns the ordered component list of a
// scene. Components are drawn in list order, so later components are on top.
type Document struct {
	catalog    *Catalog
	policy     IDPolicy
	components []Component
}

// NewDocument creates an empty document whose components are created and
// decoded through cat.
func NewDocument(cat *Catalog) *Document {
	return &Document{catalog: cat, policy: SuffixIDs{}}
}

// Catalog returns the document's catalog.
func (d *Document) Catalog() *Catalog {
	return d.catalog
}

// SetIDPolicy replaces the uniqueness policy used for new components.
func (d *Document) SetIDPolicy(p IDPolicy) {
	d.policy = p
}

// Components returns the top-level components. The returned slice MUST NOT
// be mutated by the caller.
func (d *Document) Components() []Component {
	return d.components
}

// Len returns the number of top-level components.
func (d *Document) Len() int {
	return len(d.components)
}

// Walk visits every component, groups before their children.
func (d *Document) Walk(fn func(Component) bool) {
	for _, c := range d.components {
		Walk(c, fn)
	}
}

// Find returns the component with the given id anywhere in the tree, or nil.
func (d *Document) Find(id string) Component {
	var found Component
	d.Walk(func(c Component) bool {
		if found != nil {
			return false
		}
		if c.Common().ID == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// taken reports whether id is used by any component in the tree.
func (d *Document) taken(id string) bool {
	return d.Find(id) != nil
}

// EnsureUniqueness returns an id derived from candidate by the document's
// policy that does not collide with any existing component id.
func (d *Document) EnsureUniqueness(candidate string) string {
	return d.policy.Unique(candidate, d.taken)
}

// NewComponent creates a default component of kind with a unique id and
// appends it to the document.
func (d *Document) NewComponent(kind string) (Component, error) {
	c, err := d.catalog.Components.New(kind, NewContext{Unique: d.EnsureUniqueness})
	if err != nil {
		return nil, err
	}
	d.components = append(d.components, c)
	return c, nil
}

// Add appends c at the top level, detaching it from its group first. Ids in
// c's subtree that collide with the document, or with an id seen earlier in
// the subtree, are reassigned by the policy.
func (d *Document) Add(c Component) {
	if c == nil {
		panic("scenedoc: cannot add nil component")
	}
	if p := c.Common().parent; p != nil {
		p.RemoveChild(c)
	}
	d.remove(c)
	seen := make(map[string]bool)
	taken := func(id string) bool { return seen[id] || d.taken(id) }
	Walk(c, func(cc Component) bool {
		b := cc.Common()
		if taken(b.ID) {
			b.ID = d.policy.Unique(b.ID, taken)
		}
		seen[b.ID] = true
		return true
	})
	d.components = append(d.components, c)
}

// Remove deletes the component with the given id wherever it is in the
// tree. Removed groups are disposed. It reports whether a component was found.
func (d *Document) Remove(id string) bool {
	c := d.Find(id)
	if c == nil {
		return false
	}
	if p := c.Common().parent; p != nil {
		p.RemoveChild(c)
	} else {
		d.remove(c)
	}
	if g, ok := c.(*Group); ok {
		g.Dispose()
	}
	return true
}

// remove deletes c from the top-level list if present.
func (d *Document) remove(c Component) {
	for i, cc := range d.components {
		if cc == c {
			copy(d.components[i:], d.components[i+1:])
			d.components[len(d.components)-1] = nil
			d.components = d.components[:len(d.components)-1]
			return
		}
	}
}

// AddAction creates a default action of kind owned by the component with the
// given id and appends it to the component's click actions.
func (d *Document) AddAction(componentID, kind string) (Action, error) {
	c := d.Find(componentID)
	if c == nil {
		return nil, fmt.Errorf("scenedoc: no component with id %q", componentID)
	}
	a, err := d.catalog.NewAction(kind, c)
	if err != nil {
		return nil, err
	}
	b := c.Common()
	b.ClickAction = append(b.ClickAction, a)
	return a, nil
}

// DuplicateIDs returns, sorted, every id used by more than one component.
func (d *Document) DuplicateIDs() []string {
	seen := make(map[string]int)
	d.Walk(func(c Component) bool {
		seen[c.Common().ID]++
		return true
	})
	var dups []string
	for id, n := range seen {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	sort.Strings(dups)
	return dups
}

// --- Persistence ---

// Load replaces the document's content with the components decoded from a
// JSON array. On error the document is left unchanged.
func (d *Document) Load(data []byte) error {
	components, err := d.catalog.DecodeComponents(data)
	if err != nil {
		return fmt.Errorf("scenedoc: load document: %w", err)
	}
	d.components = components
	return nil
}

// ReadFrom loads the document from r. It implements io.ReaderFrom.
func (d *Document) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), fmt.Errorf("scenedoc: read document: %w", err)
	}
	return int64(len(data)), d.Load(data)
}

// MarshalJSON encodes the document as a JSON array of components.
func (d *Document) MarshalJSON() ([]byte, error) {
	components := d.components
	if components == nil {
		components = []Component{}
	}
	return json.Marshal(components)
}

// Save writes the document as indented JSON.
func (d *Document) Save(w io.Writer) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("scenedoc: save document: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("scenedoc: save document: %w", err)
	}
	return nil
}

// --- Drawing and hit testing ---

// Draw paints every component the session does not hide, in order. A hidden
// group hides its whole subtree. session may be nil.
func (d *Document) Draw(s Surface, session *Session) {
	for _, c := range d.components {
		drawVisible(c, s, session)
	}
}

func drawVisible(c Component, s Surface, session *Session) {
	if session != nil && session.IsInvisible(c.Common().ID) {
		return
	}
	if g, ok := c.(*Group); ok {
		for _, child := range g.children {
			drawVisible(child, s, session)
		}
		return
	}
	c.Draw(s)
}

// HitTest returns the topmost visible component containing the point, or
// nil. Groups are never hit themselves; their children are.
func (d *Document) HitTest(x, y float64, session *Session) Component {
	for i := len(d.components) - 1; i >= 0; i-- {
		if c := hitTest(d.components[i], x, y, session); c != nil {
			return c
		}
	}
	return nil
}

func hitTest(c Component, x, y float64, session *Session) Component {
	if session != nil && session.IsInvisible(c.Common().ID) {
		return nil
	}
	if g, ok := c.(*Group); ok {
		for i := len(g.children) - 1; i >= 0; i-- {
			if hit := hitTest(g.children[i], x, y, session); hit != nil {
				return hit
			}
		}
		return nil
	}
	if c.Bounds().Contains(x, y) {
		return c
	}
	return nil
}
