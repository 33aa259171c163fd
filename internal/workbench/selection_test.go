package workbench

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cx-workbench-go/internal/types"
)

func rec(id string) types.Interaction {
	return types.Interaction{ID: id, Kind: types.KindSurvey, Text: "text " + id}
}

func TestSelectReplacesFocus(t *testing.T) {
	s := NewSelectionState()

	_, ok := s.Focused()
	assert.False(t, ok)

	s.Select(rec("1"))
	focused, ok := s.Focused()
	assert.True(t, ok)
	assert.Equal(t, "1", focused.ID)

	s.Select(rec("2"))
	focused, _ = s.Focused()
	assert.Equal(t, "2", focused.ID, "selecting replaces the previous focus")

	s.Close()
	_, ok = s.Focused()
	assert.False(t, ok)
}

func TestNotebookAddIsIdempotent(t *testing.T) {
	s := NewSelectionState()

	assert.True(t, s.AddToNotebook(rec("1")))
	assert.False(t, s.AddToNotebook(rec("1")), "duplicate id is a silent no-op")
	assert.Len(t, s.Notebook(), 1)
}

func TestNotebookPreservesInsertionOrder(t *testing.T) {
	s := NewSelectionState()
	s.AddToNotebook(rec("3"))
	s.AddToNotebook(rec("1"))
	s.AddToNotebook(rec("2"))

	nb := s.Notebook()
	assert.Equal(t, []string{"3", "1", "2"}, []string{nb[0].ID, nb[1].ID, nb[2].ID})
}

func TestNotebookRemove(t *testing.T) {
	s := NewSelectionState()
	s.AddToNotebook(rec("1"))
	s.AddToNotebook(rec("2"))

	assert.True(t, s.RemoveFromNotebook("1"))
	assert.False(t, s.RemoveFromNotebook("1"))
	assert.False(t, s.RemoveFromNotebook("unknown"))

	nb := s.Notebook()
	assert.Len(t, nb, 1)
	assert.Equal(t, "2", nb[0].ID)
}
