package scenedoc

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Kinded is implemented by every registrable variant. Kind returns the stable
// tag the variant is registered and persisted under.
type Kinded interface {
	Kind() string
}

// NewContext parameterizes factories.
type NewContext struct {
	// Owner is the component an action is being attached to. Nil for
	// component and condition factories.
	Owner Component

	// Unique maps a candidate id to one that does not collide within the
	// target document. Nil means ids are used as given.
	Unique func(candidate string) string
}

func (ctx NewContext) unique(candidate string) string {
	if ctx.Unique == nil {
		return candidate
	}
	return ctx.Unique(candidate)
}

func (ctx NewContext) ownerID() string {
	if ctx.Owner == nil {
		return ""
	}
	return ctx.Owner.Common().ID
}

// Factory produces a new default-populated instance.
type Factory[T any] func(ctx NewContext) T

// Decoder builds an instance from a JSON object whose discriminator already
// matched. Composite decoders resolve their children through cat.
type Decoder[T any] func(obj Object, cat *Catalog) (T, error)

// Meta is display metadata shown by the editor palette.
type Meta struct {
	Icon   string // icon identifier
	Editor string // editor widget name; empty when the kind has no editor
}

// Entry is a single registration.
type Entry[T any] struct {
	Kind   string
	New    Factory[T]
	Decode Decoder[T]
	Meta   Meta
}

// Registry maps kind tags to factories, decoders and metadata. One registry
// exists per polymorphic family (components, actions, conditions), all owned
// by a Catalog.
//
// Registry is not safe for concurrent use. Registration happens at startup;
// after Seal a duplicate registration panics.
type Registry[T Kinded] struct {
	name          string
	discriminator string
	catalog       *Catalog
	entries       map[string]*Entry[T]
	kinds         []string
	sealed        bool
}

func newRegistry[T Kinded](name, discriminator string, cat *Catalog) *Registry[T] {
	return &Registry[T]{
		name:          name,
		discriminator: discriminator,
		catalog:       cat,
		entries:       make(map[string]*Entry[T]),
	}
}

// Name returns the registry's family name ("component", "action", ...).
func (r *Registry[T]) Name() string { return r.name }

// Discriminator returns the JSON field holding the kind tag.
func (r *Registry[T]) Discriminator() string { return r.discriminator }

// Register binds kind to its factory, decoder and metadata. Before Seal a
// second registration of the same kind replaces the first.
// Panics if kind is empty, either function is nil, or the registry is sealed
// and kind is already present.
func (r *Registry[T]) Register(kind string, factory Factory[T], decoder Decoder[T], meta Meta) {
	if kind == "" {
		panic("scenedoc: cannot register empty " + r.name + " kind")
	}
	if factory == nil || decoder == nil {
		panic(fmt.Sprintf("scenedoc: %s kind %q registered without factory or decoder", r.name, kind))
	}
	if _, exists := r.entries[kind]; exists {
		if r.sealed {
			panic(fmt.Sprintf("scenedoc: duplicate registration of %s kind %q", r.name, kind))
		}
		debugf("%s kind %q re-registered", r.name, kind)
	} else {
		r.kinds = append(r.kinds, kind)
	}
	r.entries[kind] = &Entry[T]{Kind: kind, New: factory, Decode: decoder, Meta: meta}
}

// Seal ends the startup phase. New kinds may still be added; replacing an
// existing one panics.
func (r *Registry[T]) Seal() { r.sealed = true }

// Lookup returns the entry for kind.
func (r *Registry[T]) Lookup(kind string) (*Entry[T], bool) {
	e, ok := r.entries[kind]
	return e, ok
}

// Kinds returns the registered tags in registration order. The returned
// slice MUST NOT be mutated by the caller.
func (r *Registry[T]) Kinds() []string {
	return r.kinds
}

// Meta returns the display metadata for kind.
func (r *Registry[T]) Meta(kind string) (Meta, bool) {
	e, ok := r.entries[kind]
	if !ok {
		return Meta{}, false
	}
	return e.Meta, true
}

func (r *Registry[T]) unknown(kind string) error {
	return &KindError{Registry: r.name, Discriminator: r.discriminator, Kind: kind}
}

// New returns a default instance of kind.
func (r *Registry[T]) New(kind string, ctx NewContext) (T, error) {
	e, ok := r.entries[kind]
	if !ok {
		var zero T
		return zero, r.unknown(kind)
	}
	v := e.New(ctx)
	r.checkKind(kind, v)
	return v, nil
}

// Decode parses data as a JSON object and dispatches on its discriminator.
func (r *Registry[T]) Decode(data []byte) (T, error) {
	obj, err := ParseObject(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return r.DecodeObject(obj)
}

// DecodeObject dispatches an already parsed object on its discriminator.
func (r *Registry[T]) DecodeObject(obj Object) (T, error) {
	var zero T
	kind := obj.Tag(r.discriminator)
	if kind == "" {
		return zero, r.unknown("")
	}
	e, ok := r.entries[kind]
	if !ok {
		return zero, r.unknown(kind)
	}
	v, err := e.Decode(obj, r.catalog)
	if err != nil {
		return zero, err
	}
	r.checkKind(kind, v)
	return v, nil
}

// DecodeList decodes a JSON array element by element, preserving order. It
// fails as a whole: on any element error the result is nil. A null or empty
// input yields an empty, non-nil slice.
func (r *Registry[T]) DecodeList(data []byte) ([]T, error) {
	var raws []json.RawMessage
	if len(data) > 0 {
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, fmt.Errorf("scenedoc: %s list: %w: %w", r.name, ErrMalformedPayload, err)
		}
	}
	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		v, err := r.Decode(raw)
		if err != nil {
			return nil, &ElementError{Index: i, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// checkKind panics when a factory or decoder returns nil or a variant whose
// Kind does not match the tag it was registered under.
func (r *Registry[T]) checkKind(kind string, v T) {
	if any(v) == nil {
		panic(fmt.Sprintf("scenedoc: %s registered as %q returned nil", r.name, kind))
	}
	if got := v.Kind(); got != kind {
		panic(fmt.Sprintf("scenedoc: %s registered as %q produced kind %q", r.name, kind, got))
	}
}
