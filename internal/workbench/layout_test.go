package workbench

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cx-workbench-go/internal/types"
)

func TestNewLayoutStateDefaults(t *testing.T) {
	l := NewLayoutState(false)
	assert.Equal(t, LayoutSplit, l.Mode)
	assert.Equal(t, TabViz, l.ActiveTab)
	assert.False(t, l.SplitExpanded)
	assert.False(t, l.StreamCollapsed)
}

func TestNewLayoutStateFocusOnData(t *testing.T) {
	l := NewLayoutState(true)
	assert.Equal(t, TabData, l.ActiveTab)
	assert.True(t, l.SplitExpanded)
}

func TestResetRestoresDefaults(t *testing.T) {
	l := NewLayoutState(true)
	l.Mode = LayoutTabs
	l.StreamCollapsed = true

	l.Reset()
	assert.Equal(t, *NewLayoutState(false), *l)
}

func TestVisibilityFacetRibbon(t *testing.T) {
	plain := NewFilterState(nil, nil)
	withCategory := NewFilterState(nil, &types.FilterSpec{Type: types.FacetCategory, Value: "Billing"})

	tests := []struct {
		name    string
		layout  LayoutState
		mode    EntryMode
		filters *FilterState
		focused bool
		want    bool
	}{
		{"tabs on data tab", LayoutState{Mode: LayoutTabs, ActiveTab: TabData}, EntryWidget, plain, false, true},
		{"tabs on viz tab", LayoutState{Mode: LayoutTabs, ActiveTab: TabViz}, EntryWidget, plain, false, false},
		{"split feedback mode", LayoutState{Mode: LayoutSplit}, EntryFeedback, plain, false, true},
		{"split widget mode no category", LayoutState{Mode: LayoutSplit}, EntryWidget, plain, false, false},
		{"split widget mode with category filter", LayoutState{Mode: LayoutSplit}, EntryWidget, withCategory, false, true},
		{"focused suppresses ribbon", LayoutState{Mode: LayoutTabs, ActiveTab: TabData}, EntryWidget, plain, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.layout
			got := deriveVisibility(&l, tt.mode, tt.filters, tt.focused)
			assert.Equal(t, tt.want, got.FacetRibbon)
		})
	}
}

func TestVisibilityFocusDrivenRegions(t *testing.T) {
	filters := NewFilterState(nil, nil)
	l := NewLayoutState(false)

	open := deriveVisibility(l, EntryWidget, filters, false)
	assert.True(t, open.Shelf)
	assert.False(t, open.CompactStream)
	assert.True(t, open.ChartPane)

	reading := deriveVisibility(l, EntryWidget, filters, true)
	assert.False(t, reading.Shelf, "shelf hides while a record is focused")
	assert.True(t, reading.CompactStream)
	assert.False(t, reading.ChartPane)
}

func TestVisibilityChartPane(t *testing.T) {
	filters := NewFilterState(nil, nil)

	expanded := &LayoutState{Mode: LayoutSplit, SplitExpanded: true}
	assert.False(t, deriveVisibility(expanded, EntryWidget, filters, false).ChartPane)

	tabs := &LayoutState{Mode: LayoutTabs, ActiveTab: TabViz}
	assert.False(t, deriveVisibility(tabs, EntryWidget, filters, false).ChartPane, "chart pane is a split-mode region")
}
