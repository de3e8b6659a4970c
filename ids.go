package scenedoc

import (
	"strconv"

	"github.com/google/uuid"
)

// IDPolicy turns a candidate component id into one that does not collide
// with any id for which taken reports true.
//
// The collision-avoidance scheme is deliberately pluggable. Documents use
// SuffixIDs unless configured otherwise; PassThroughIDs keeps the historical
// behavior of returning the candidate unchanged.
type IDPolicy interface {
	Unique(candidate string, taken func(id string) bool) string
}

// PassThroughIDs returns candidates unchanged. It gives no guarantee.
type PassThroughIDs struct{}

// Unique implements IDPolicy.
func (PassThroughIDs) Unique(candidate string, _ func(string) bool) string {
	return candidate
}

// SuffixIDs keeps a free candidate as is and otherwise appends the lowest
// free counter: "Rect", "Rect-2", "Rect-3", ...
type SuffixIDs struct{}

// Unique implements IDPolicy.
func (SuffixIDs) Unique(candidate string, taken func(string) bool) string {
	if !taken(candidate) {
		return candidate
	}
	for n := 2; ; n++ {
		id := candidate + "-" + strconv.Itoa(n)
		if !taken(id) {
			return id
		}
	}
}

// UUIDIDs appends a random UUID to every candidate, retrying on the
// (practically impossible) collision.
type UUIDIDs struct{}

// Unique implements IDPolicy.
func (UUIDIDs) Unique(candidate string, taken func(string) bool) string {
	for {
		id := candidate + "-" + uuid.NewString()
		if !taken(id) {
			return id
		}
	}
}

// IDPolicyByName maps a configuration name to a policy.
func IDPolicyByName(name string) (IDPolicy, bool) {
	switch name {
	case "", "suffix":
		return SuffixIDs{}, true
	case "passthrough":
		return PassThroughIDs{}, true
	case "uuid":
		return UUIDIDs{}, true
	default:
		return nil, false
	}
}
