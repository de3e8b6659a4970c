package scenedoc

import (
	"fmt"
	"log"
)

// globalDebug enables diagnostics for operations that have no document or
// catalog at hand (component draw, resize, group edits).
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, edits on
// disposed groups panic, tree depth and child count warnings are logged, and
// unavailable resources are reported.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug mode is on.
func DebugMode() bool {
	return globalDebug
}

// debugf logs a diagnostic line when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	log.Printf("scenedoc: "+format, args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed group
// is edited. Only called in debug mode.
func debugCheckDisposed(g *Group, op string) {
	if g.disposed {
		panic(fmt.Sprintf("scenedoc debug: %s on disposed group %q", op, g.Name))
	}
}

// debugCheckTreeDepth warns if nesting exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(c Component) {
	depth := 1
	for p := c.Common().parent; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		log.Printf("scenedoc: warning: group depth %d exceeds %d (component %q)",
			depth, debugMaxTreeDepth, c.Common().ID)
	}
}

// debugCheckChildCount warns if a group has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(g *Group) {
	if len(g.children) > debugMaxChildCount {
		log.Printf("scenedoc: warning: group %q has %d children (threshold %d)",
			g.ID, len(g.children), debugMaxChildCount)
	}
}
