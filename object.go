package scenedoc

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Object is an untyped JSON object with its member values left undecoded.
// Decoders read typed fields out of it through a FieldReader.
type Object map[string]json.RawMessage

// ParseObject parses data as a JSON object.
func ParseObject(data []byte) (Object, error) {
	var obj Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("scenedoc: %w: %w", ErrMalformedPayload, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("scenedoc: %w: expected a JSON object, got null", ErrMalformedPayload)
	}
	return obj, nil
}

// has reports whether field is present and not null.
func (o Object) has(field string) bool {
	raw, ok := o[field]
	return ok && !isNull(raw)
}

// Tag returns the string value of the discriminator field, or "" when it is
// missing or not a string.
func (o Object) Tag(field string) string {
	var s string
	if !o.has(field) || json.Unmarshal(o[field], &s) != nil {
		return ""
	}
	return s
}

// Fields returns a FieldReader that attributes errors to kind.
func (o Object) Fields(kind string) *FieldReader {
	return &FieldReader{obj: o, kind: kind}
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// FieldReader reads typed fields from an Object and records the first
// failure. Once an error is recorded later reads return zero values, so a
// decoder can read all of its fields and check Err once.
type FieldReader struct {
	obj  Object
	kind string
	err  error
}

// Err returns the first error encountered, or nil.
func (r *FieldReader) Err() error { return r.err }

// Kind returns the kind errors are attributed to.
func (r *FieldReader) Kind() string { return r.kind }

// read decodes field into dst. Missing or null fields fail only when required.
func (r *FieldReader) read(field string, dst any, required bool) bool {
	if r.err != nil {
		return false
	}
	if !r.obj.has(field) {
		if required {
			r.err = &PayloadError{Kind: r.kind, Field: field}
		}
		return false
	}
	if err := json.Unmarshal(r.obj[field], dst); err != nil {
		r.err = &PayloadError{Kind: r.kind, Field: field, Err: err}
		return false
	}
	return true
}

// String reads a required string field.
func (r *FieldReader) String(field string) string {
	var v string
	r.read(field, &v, true)
	return v
}

// OptString reads an optional string field.
func (r *FieldReader) OptString(field, def string) string {
	v := def
	r.read(field, &v, false)
	return v
}

// Float reads a required number field.
func (r *FieldReader) Float(field string) float64 {
	var v float64
	r.read(field, &v, true)
	return v
}

// OptFloat reads an optional number field.
func (r *FieldReader) OptFloat(field string, def float64) float64 {
	v := def
	r.read(field, &v, false)
	return v
}

// Int reads a required integer field.
func (r *FieldReader) Int(field string) int {
	var v int
	r.read(field, &v, true)
	return v
}

// OptInt reads an optional integer field.
func (r *FieldReader) OptInt(field string, def int) int {
	v := def
	r.read(field, &v, false)
	return v
}

// OptBool reads an optional boolean field.
func (r *FieldReader) OptBool(field string, def bool) bool {
	v := def
	r.read(field, &v, false)
	return v
}

// Color reads a required hex color field.
func (r *FieldReader) Color(field string) Color {
	var v Color
	r.read(field, &v, true)
	return v
}

// OptColor reads an optional hex color field.
func (r *FieldReader) OptColor(field string, def Color) Color {
	v := def
	r.read(field, &v, false)
	return v
}

// Raw returns the undecoded value of field, or nil when it is missing or null.
// A missing required field records an error.
func (r *FieldReader) Raw(field string, required bool) json.RawMessage {
	if r.err != nil {
		return nil
	}
	if !r.obj.has(field) {
		if required {
			r.err = &PayloadError{Kind: r.kind, Field: field}
		}
		return nil
	}
	return r.obj[field]
}

// Fail records err against field unless an error is already recorded.
func (r *FieldReader) Fail(field string, err error) {
	if r.err == nil {
		r.err = &PayloadError{Kind: r.kind, Field: field, Err: err}
	}
}

// Extent reads a required number field that must not be negative.
func (r *FieldReader) Extent(field string) float64 {
	v := r.Float(field)
	if v < 0 {
		r.Fail(field, fmt.Errorf("negative extent %v", v))
		return 0
	}
	return v
}

// Nested records err, raised while decoding the nested value in field, as
// this reader's error. It returns false when an error is now recorded.
func (r *FieldReader) Nested(field string, err error) bool {
	if r.err != nil {
		return false
	}
	if err != nil {
		r.err = fmt.Errorf("scenedoc: %s: field %q: %w", r.kind, field, err)
		return false
	}
	return true
}
