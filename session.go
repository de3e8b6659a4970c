package scenedoc

// Session is editor state that is not part of the persisted document: the
// set of hidden component ids and the cursors of stepping lists. It is reset
// independently of loading and saving.
type Session struct {
	hidden  map[string]struct{}
	cursors map[string]int
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{
		hidden:  make(map[string]struct{}),
		cursors: make(map[string]int),
	}
}

// IsInvisible reports whether id is currently hidden.
func (s *Session) IsInvisible(id string) bool {
	_, ok := s.hidden[id]
	return ok
}

// ToggleVis hides id if it is visible and shows it if it is hidden.
func (s *Session) ToggleVis(id string) {
	if _, ok := s.hidden[id]; ok {
		delete(s.hidden, id)
		return
	}
	s.hidden[id] = struct{}{}
}

// SetVisible shows or hides id.
func (s *Session) SetVisible(id string, visible bool) {
	if visible {
		delete(s.hidden, id)
	} else {
		s.hidden[id] = struct{}{}
	}
}

// Hidden returns the number of hidden ids.
func (s *Session) Hidden() int {
	return len(s.hidden)
}

// Cursor returns the stepping-list cursor of component id.
func (s *Session) Cursor(id string) int {
	return s.cursors[id]
}

// SetCursor sets the stepping-list cursor of component id.
func (s *Session) SetCursor(id string, index int) {
	if index == 0 {
		delete(s.cursors, id)
		return
	}
	s.cursors[id] = index
}

// Reset clears all session state.
func (s *Session) Reset() {
	clear(s.hidden)
	clear(s.cursors)
}
