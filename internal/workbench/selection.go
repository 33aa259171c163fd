package workbench

import "cx-workbench-go/internal/types"

// SelectionState tracks the single focused record and the notebook, the
// analyst's bookmarked subset. The notebook preserves insertion order and
// rejects duplicate ids silently.
type SelectionState struct {
	focused  *types.Interaction
	notebook []types.Interaction
}

func NewSelectionState() *SelectionState {
	return &SelectionState{}
}

// Select focuses a record, replacing any current focus.
func (s *SelectionState) Select(r types.Interaction) {
	rec := r
	s.focused = &rec
}

// Close clears the focus.
func (s *SelectionState) Close() {
	s.focused = nil
}

// Focused returns the focused record, if any.
func (s *SelectionState) Focused() (types.Interaction, bool) {
	if s.focused == nil {
		return types.Interaction{}, false
	}
	return *s.focused, true
}

// AddToNotebook appends the record unless one with the same id is already
// present. Reports whether the notebook changed.
func (s *SelectionState) AddToNotebook(r types.Interaction) bool {
	for _, n := range s.notebook {
		if n.ID == r.ID {
			return false
		}
	}
	s.notebook = append(s.notebook, r)
	return true
}

// RemoveFromNotebook drops the entry with the given id, if present.
func (s *SelectionState) RemoveFromNotebook(id string) bool {
	for i, n := range s.notebook {
		if n.ID == id {
			s.notebook = append(s.notebook[:i:i], s.notebook[i+1:]...)
			return true
		}
	}
	return false
}

// Notebook returns a copy of the bookmarked records in insertion order.
func (s *SelectionState) Notebook() []types.Interaction {
	out := make([]types.Interaction, len(s.notebook))
	copy(out, s.notebook)
	return out
}
