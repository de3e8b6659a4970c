package scenedoc

import "testing"

func TestToggleVisRestores(t *testing.T) {
	tests := []struct {
		name      string
		preHidden bool
	}{
		{"visible", false},
		{"hidden", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			if tt.preHidden {
				s.ToggleVis("x")
			}
			before := s.IsInvisible("x")
			s.ToggleVis("x")
			if s.IsInvisible("x") == before {
				t.Error("one toggle should flip membership")
			}
			s.ToggleVis("x")
			if s.IsInvisible("x") != before {
				t.Error("two toggles should restore membership")
			}
		})
	}
}

func TestSetVisible(t *testing.T) {
	s := NewSession()
	s.SetVisible("a", false)
	s.SetVisible("a", false)
	if !s.IsInvisible("a") || s.Hidden() != 1 {
		t.Errorf("hidden = %d, want a hidden once", s.Hidden())
	}
	s.SetVisible("a", true)
	if s.IsInvisible("a") || s.Hidden() != 0 {
		t.Error("a should be visible")
	}
}

func TestSessionCursor(t *testing.T) {
	s := NewSession()
	if s.Cursor("list") != 0 {
		t.Error("unset cursor should be 0")
	}
	s.SetCursor("list", 2)
	if s.Cursor("list") != 2 {
		t.Errorf("Cursor = %d, want 2", s.Cursor("list"))
	}
	s.SetCursor("list", 0)
	if s.Cursor("list") != 0 {
		t.Error("cursor should reset to 0")
	}
}

func TestSessionReset(t *testing.T) {
	s := NewSession()
	s.ToggleVis("a")
	s.SetCursor("b", 1)
	s.Reset()
	if s.IsInvisible("a") || s.Cursor("b") != 0 || s.Hidden() != 0 {
		t.Error("Reset should clear all state")
	}
}
