package scenedoc

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"
	"testing"
)

// captureLog redirects the standard logger for the duration of fn.
func captureLog(fn func()) string {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	fn()
	return buf.String()
}

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_DisposedGroupPanics(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	g := NewGroup("g", "Panel")
	g.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild to disposed group, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") || !strings.Contains(msg, "Panel") {
			t.Errorf("panic message should name the disposed group, got: %s", msg)
		}
	}()
	g.AddChild(NewRect("r", "R", 0, 0, 1, 1, ColorWhite))
}

func TestReleaseMode_DisposedGroupNoPanic(t *testing.T) {
	SetDebugMode(false)
	g := NewGroup("g", "G")
	g.Dispose()
	g.AddChild(NewRect("r", "R", 0, 0, 1, 1, ColorWhite))
	if g.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", g.NumChildren())
	}
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	output := captureLog(func() {
		current := NewGroup("root", "Root")
		for i := 0; i < debugMaxTreeDepth+5; i++ {
			child := NewGroup(fmt.Sprintf("depth_%d", i), "")
			current.AddChild(child)
			current = child
		}
	})
	if !strings.Contains(output, "warning: group depth") {
		t.Errorf("expected group depth warning, got: %q", output)
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	output := captureLog(func() {
		parent := NewGroup("many", "Many")
		for i := 0; i < debugMaxChildCount+1; i++ {
			parent.AddChild(NewRect(fmt.Sprintf("c_%d", i), "", 0, 0, 1, 1, ColorWhite))
		}
	})
	if !strings.Contains(output, `group "many" has`) {
		t.Errorf("expected child count warning, got: %q", output)
	}
}

func TestDebugMode_ResourceDiagnostics(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	output := captureLog(func() {
		img := NewImage("i", "I", 0, 0, 10, 10, "Ghost", true, false, NewImageStore())
		img.Draw(&recordSurface{})
		img.Modify(BoundingBox{0, 0, 20, 20})
	})
	if !strings.Contains(output, `image "Ghost"`) || !strings.Contains(output, "resizing without lock") {
		t.Errorf("expected resource diagnostics, got: %q", output)
	}
}

func TestReleaseMode_Silent(t *testing.T) {
	SetDebugMode(false)
	output := captureLog(func() {
		NewImage("i", "I", 0, 0, 10, 10, "Ghost", true, false, NewImageStore()).Draw(&recordSurface{})
		cat := NewCatalog()
		cat.Actions.Register(MessageActionKind, func(NewContext) Action { return &MessageAction{} }, decodeMessageAction, Meta{})
	})
	if output != "" {
		t.Errorf("release mode should log nothing, got: %q", output)
	}
}
