// Package scenedoc is the document model of a clickable 2D scene editor for
// [Ebitengine].
//
// A scene is a [Document]: an ordered list of visual components (rectangles,
// images, text and groups) that each carry an optional list of click actions.
// Documents persist as JSON and can be previewed with a [Player], which runs
// the click actions against a visibility [Session] and reports outward
// effects to an [EffectSink].
//
// # Catalogs and registries
//
// Every polymorphic family (components, actions, conditions) lives in a
// [Registry] keyed by a string tag. A registry entry pairs a default
// constructor with a decoder, so adding a kind is a single Register call:
//
//	cat := scenedoc.NewCatalog()
//	cat.Components.Register("Circle", newCircle, decodeCircle, scenedoc.Meta{})
//	cat.Seal()
//
// Components encode with a "type" field, actions and conditions with an "id"
// field. Decoding an unknown tag fails with [ErrUnknownKind]; a bad payload
// fails with [ErrMalformedPayload]. List decoding is all-or-nothing.
//
// # Documents
//
//	doc := scenedoc.NewDocument(cat)
//	if err := doc.Load(data); err != nil {
//		log.Fatal(err)
//	}
//	button, _ := doc.NewComponent(scenedoc.RectKind)
//	doc.AddAction(button.Common().ID, scenedoc.VisibilityActionKind)
//
// New components get ids that are unique in the document according to its
// [IDPolicy].
//
// # Resizing
//
// [Component.Modify] applies an editor bounding box. Images that keep their
// aspect ratio fit inside the box instead of filling it, and groups scale
// their children proportionally. [TweenBounds] animates a resize.
//
// # Preview
//
//	p := scenedoc.NewPlayer(doc, &scenedoc.EffectRecorder{})
//	p.Click("button")
//	p.Advance(20) // fire delayed actions
//
// A [ScriptRunner] drives a player from a JSON script of clicks, waits and
// visibility expectations.
//
// # Debug mode
//
// Call [SetDebugMode](true) during development to enable extra runtime checks
// and diagnostics on the standard logger.
//
// [Ebitengine]: https://ebitengine.org
package scenedoc
