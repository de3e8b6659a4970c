package scenedoc

import (
	"errors"
	"strings"
	"testing"
)

// --- Completeness ---

func TestCatalogCompleteness(t *testing.T) {
	cat := NewCatalog()
	owner := NewRect("owner", "Owner", 0, 0, 1, 1, ColorWhite)
	ctx := NewContext{Owner: owner}

	for _, kind := range ComponentKinds {
		assertEntry(t, cat.Components, kind, ctx)
	}
	for _, kind := range ActionKinds {
		assertEntry(t, cat.Actions, kind, ctx)
	}
	for _, kind := range ConditionKinds {
		assertEntry(t, cat.Conditions, kind, ctx)
	}

	if got, want := len(cat.Components.Kinds()), len(ComponentKinds); got != want {
		t.Errorf("component kinds = %d, want %d", got, want)
	}
	if got, want := len(cat.Actions.Kinds()), len(ActionKinds); got != want {
		t.Errorf("action kinds = %d, want %d", got, want)
	}
	if got, want := len(cat.Conditions.Kinds()), len(ConditionKinds); got != want {
		t.Errorf("condition kinds = %d, want %d", got, want)
	}
}

func assertEntry[T Kinded](t *testing.T, r *Registry[T], kind string, ctx NewContext) {
	t.Helper()
	if _, ok := r.Lookup(kind); !ok {
		t.Errorf("%s %q not registered", r.Name(), kind)
		return
	}
	v, err := r.New(kind, ctx)
	if err != nil {
		t.Errorf("New(%q): %v", kind, err)
		return
	}
	if v.Kind() != kind {
		t.Errorf("New(%q).Kind() = %q", kind, v.Kind())
	}
}

func TestCatalogMeta(t *testing.T) {
	cat := NewCatalog()
	m, ok := cat.Actions.Meta(CommandActionKind)
	if !ok || m.Icon == "" || m.Editor == "" {
		t.Errorf("command meta = %+v, %v", m, ok)
	}
	if _, ok := cat.Actions.Meta("nope"); ok {
		t.Error("Meta of unknown kind should report false")
	}
}

func TestCatalogsAreIndependent(t *testing.T) {
	a := NewCatalog()
	b := NewCatalog()
	a.Components.Register("Circle", newDefaultRectAs("Circle"), decodeRect, Meta{})
	if _, ok := b.Components.Lookup("Circle"); ok {
		t.Error("registration leaked between catalogs")
	}
}

// --- Unknown kinds ---

func TestNewUnknownKind(t *testing.T) {
	cat := NewCatalog()
	_, err := cat.Components.New("Circle", NewContext{})
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
	var ke *KindError
	if !errors.As(err, &ke) || ke.Registry != "component" || ke.Kind != "Circle" {
		t.Errorf("KindError = %+v", ke)
	}
}

func TestDecodeUnknownKind(t *testing.T) {
	cat := NewCatalog()
	_, err := cat.Actions.Decode([]byte(`{"id":"teleport","x":1}`))
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
	if !strings.Contains(err.Error(), "teleport") {
		t.Errorf("error %q should name the tag", err)
	}
}

func TestDecodeMissingDiscriminator(t *testing.T) {
	cat := NewCatalog()
	_, err := cat.Components.Decode([]byte(`{"id":"a","x":0,"y":0,"width":1,"height":1}`))
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
	var ke *KindError
	if !errors.As(err, &ke) || ke.Kind != "" || ke.Discriminator != "type" {
		t.Errorf("KindError = %+v", ke)
	}
}

func TestDecodeMalformedPayload(t *testing.T) {
	cat := NewCatalog()
	tests := []struct {
		name  string
		data  string
		field string
	}{
		{"missing color", `{"type":"Rect","id":"r","x":0,"y":0,"width":1,"height":1}`, "color"},
		{"wrong type", `{"type":"Rect","id":"r","x":"zero","y":0,"width":1,"height":1,"color":"#000000"}`, "x"},
		{"negative width", `{"type":"Rect","id":"r","x":0,"y":0,"width":-1,"height":1,"color":"#000000"}`, "width"},
		{"missing id", `{"type":"Rect","x":0,"y":0,"width":1,"height":1,"color":"#000000"}`, "id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cat.Components.Decode([]byte(tt.data))
			if !errors.Is(err, ErrMalformedPayload) {
				t.Fatalf("err = %v, want ErrMalformedPayload", err)
			}
			var pe *PayloadError
			if !errors.As(err, &pe) || pe.Field != tt.field || pe.Kind != RectKind {
				t.Errorf("PayloadError = %+v, want field %q", pe, tt.field)
			}
		})
	}
}

func TestDecodeNotAnObject(t *testing.T) {
	cat := NewCatalog()
	for _, data := range []string{`[]`, `null`, `"Rect"`, `{`} {
		if _, err := cat.Components.Decode([]byte(data)); !errors.Is(err, ErrMalformedPayload) {
			t.Errorf("Decode(%s) err = %v, want ErrMalformedPayload", data, err)
		}
	}
}

// --- Lists ---

func TestDecodeListAtomic(t *testing.T) {
	cat := NewCatalog()
	data := []byte(`[
		{"id":"message","message":"a"},
		{"id":"bogus"},
		{"id":"message","message":"c"}
	]`)
	got, err := cat.Actions.DecodeList(data)
	if got != nil {
		t.Errorf("result = %v, want nil", got)
	}
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
	var ee *ElementError
	if !errors.As(err, &ee) || ee.Index != 1 {
		t.Errorf("ElementError = %+v, want index 1", ee)
	}
}

func TestDecodeListEmpty(t *testing.T) {
	cat := NewCatalog()
	for _, data := range []string{``, `null`, `[]`} {
		got, err := cat.Actions.DecodeList([]byte(data))
		if err != nil {
			t.Errorf("DecodeList(%q): %v", data, err)
			continue
		}
		if got == nil || len(got) != 0 {
			t.Errorf("DecodeList(%q) = %v, want empty non-nil", data, got)
		}
	}
}

func TestDecodeListRecursion(t *testing.T) {
	cat := NewCatalog()
	data := []byte(`{"id":"list","sequential":true,"children":[
		{"id":"command","command":"spawn","console":true},
		{"id":"delay","ticks":5,"action":[{"id":"message","message":"later"}]},
		{"id":"visibility","target":"door","toggle":true}
	]}`)
	a, err := cat.Actions.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	list, ok := a.(*ListAction)
	if !ok {
		t.Fatalf("decoded %T, want *ListAction", a)
	}
	wantKinds := []string{CommandActionKind, DelayActionKind, VisibilityActionKind}
	if len(list.Children) != len(wantKinds) {
		t.Fatalf("children = %d, want %d", len(list.Children), len(wantKinds))
	}
	for i, k := range wantKinds {
		if list.Children[i].Kind() != k {
			t.Errorf("child %d kind = %q, want %q", i, list.Children[i].Kind(), k)
		}
	}
	delay := list.Children[1].(*DelayAction)
	if delay.Ticks != 5 || len(delay.Actions) != 1 || delay.Actions[0].(*MessageAction).Message != "later" {
		t.Errorf("delay = %+v", delay)
	}
}

func TestNestedErrorChain(t *testing.T) {
	cat := NewCatalog()
	data := []byte(`[{"type":"Group","id":"g","children":[
		{"type":"Rect","id":"r","x":0,"y":0,"width":1,"height":1,"color":"#000000",
		 "clickAction":[{"id":"check","action":[]}]}
	]}]`)
	_, err := cat.DecodeComponents(data)
	if !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("err = %v, want ErrMalformedPayload", err)
	}
	var pe *PayloadError
	if !errors.As(err, &pe) || pe.Kind != CheckActionKind || pe.Field != "condition" {
		t.Errorf("PayloadError = %+v, want check/condition", pe)
	}
}

// --- Registration ---

func TestRegisterReplacesBeforeSeal(t *testing.T) {
	cat := NewCatalog()
	called := false
	cat.Actions.Register(MessageActionKind, func(NewContext) Action {
		called = true
		return &MessageAction{Message: "custom"}
	}, decodeMessageAction, Meta{})

	a, err := cat.NewAction(MessageActionKind, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !called || a.(*MessageAction).Message != "custom" {
		t.Error("replacement factory not used")
	}
	if got := len(cat.Actions.Kinds()); got != len(ActionKinds) {
		t.Errorf("kinds = %d after replace, want %d", got, len(ActionKinds))
	}
}

func TestRegisterDuplicateAfterSealPanics(t *testing.T) {
	cat := NewCatalog()
	cat.Seal()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration after Seal")
		}
	}()
	cat.Components.Register(RectKind, newDefaultRect, decodeRect, Meta{})
}

func TestRegisterNewKindAfterSeal(t *testing.T) {
	cat := NewCatalog()
	cat.Seal()
	cat.Components.Register("Circle", newDefaultRectAs("Circle"), decodeRect, Meta{})
	if _, ok := cat.Components.Lookup("Circle"); !ok {
		t.Error("new kind after Seal should register")
	}
}

func TestRegisterInvalidPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(r *Registry[Component])
	}{
		{"empty kind", func(r *Registry[Component]) { r.Register("", newDefaultRect, decodeRect, Meta{}) }},
		{"nil factory", func(r *Registry[Component]) { r.Register("X", nil, decodeRect, Meta{}) }},
		{"nil decoder", func(r *Registry[Component]) { r.Register("X", newDefaultRect, nil, Meta{}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn(NewCatalog().Components)
		})
	}
}

func TestKindMismatchPanics(t *testing.T) {
	cat := NewCatalog()
	cat.Components.Register("Square", newDefaultRect, decodeRect, Meta{})
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic when factory returns a different kind")
		}
	}()
	cat.Components.New("Square", NewContext{})
}

func TestNilResultPanics(t *testing.T) {
	cat := NewCatalog()
	cat.Components.Register("Void",
		func(NewContext) Component { return nil },
		func(Object, *Catalog) (Component, error) { return nil, nil },
		Meta{})

	tests := []struct {
		name string
		fn   func()
	}{
		{"New", func() { cat.Components.New("Void", NewContext{}) }},
		{"Decode", func() { cat.Components.Decode([]byte(`{"type":"Void"}`)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic when the registration returns nil")
				}
				if msg, _ := r.(string); !strings.Contains(msg, "returned nil") {
					t.Errorf("panic = %v, want a message naming the nil result", r)
				}
			}()
			tt.fn()
		})
	}
}

// newDefaultRectAs returns a factory producing a rect wrapper reporting kind.
func newDefaultRectAs(kind string) Factory[Component] {
	return func(ctx NewContext) Component {
		return &taggedRect{Rect: *NewRect(ctx.unique(kind), kind, 0, 0, 1, 1, ColorWhite), kind: kind}
	}
}

type taggedRect struct {
	Rect
	kind string
}

func (r *taggedRect) Kind() string { return r.kind }
