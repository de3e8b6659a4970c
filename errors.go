package scenedoc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind is returned when a tag has no registry entry, or when a
	// JSON object carries no discriminator at all.
	ErrUnknownKind = errors.New("unknown kind")

	// ErrMalformedPayload is returned when a JSON object is missing a
	// required field or a field has the wrong type.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrResourceUnavailable is returned by resource stores for names that
	// are not (yet) loaded. Draw never surfaces it.
	ErrResourceUnavailable = errors.New("resource unavailable")
)

// KindError reports a missing or unregistered discriminator.
type KindError struct {
	Registry      string // "component", "action" or "condition"
	Discriminator string // JSON field that carries the tag
	Kind          string // empty when the discriminator was missing
}

func (e *KindError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("scenedoc: %s object has no %q field", e.Registry, e.Discriminator)
	}
	return fmt.Sprintf("scenedoc: unknown %s kind %q", e.Registry, e.Kind)
}

func (e *KindError) Is(target error) bool { return target == ErrUnknownKind }

// PayloadError identifies the kind and field of a malformed JSON object.
type PayloadError struct {
	Kind  string
	Field string
	Err   error // underlying cause; nil when the field is missing
}

func (e *PayloadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("scenedoc: %s: missing required field %q", e.Kind, e.Field)
	}
	return fmt.Sprintf("scenedoc: %s: field %q: %v", e.Kind, e.Field, e.Err)
}

func (e *PayloadError) Is(target error) bool { return target == ErrMalformedPayload }

func (e *PayloadError) Unwrap() error { return e.Err }

// ElementError wraps the failure of one element of a decoded list.
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }
