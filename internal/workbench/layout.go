package workbench

import "cx-workbench-go/internal/types"

// EntryMode says how the analyst arrived at the workbench; it shifts a few
// layout defaults and the facet ribbon rule.
type EntryMode string

const (
	EntryWidget   EntryMode = "widget"
	EntryFeedback EntryMode = "feedback"
	EntrySegment  EntryMode = "segment"
)

type LayoutMode string

const (
	LayoutTabs  LayoutMode = "tabs"
	LayoutSplit LayoutMode = "split"
)

type Tab string

const (
	TabViz  Tab = "viz"
	TabData Tab = "data"
)

// LayoutState holds the directly settable layout flags. Everything the
// presentation layer actually shows or hides is derived from these plus the
// filter and selection state, never stored (see Visibility).
type LayoutState struct {
	Mode            LayoutMode `json:"mode"`
	ActiveTab       Tab        `json:"active_tab"`
	SplitExpanded   bool       `json:"split_expanded"`
	StreamCollapsed bool       `json:"stream_collapsed"`
}

// NewLayoutState returns the defaults: split layout with the chart pane, data
// tab and expanded split when the session opens straight onto the data.
func NewLayoutState(focusOnData bool) *LayoutState {
	l := &LayoutState{Mode: LayoutSplit, ActiveTab: TabViz}
	if focusOnData {
		l.ActiveTab = TabData
		l.SplitExpanded = true
	}
	return l
}

// Reset restores every flag to its default. Used when the entry mode
// switches.
func (l *LayoutState) Reset() {
	*l = *NewLayoutState(false)
}

// Visibility is the derived view-region state.
type Visibility struct {
	FacetRibbon   bool `json:"facet_ribbon"`
	Shelf         bool `json:"shelf"`
	CompactStream bool `json:"compact_stream"`
	ChartPane     bool `json:"chart_pane"`
}

// deriveVisibility applies the layout rules:
//   - the facet ribbon shows on the tabs/data view, or in split mode when the
//     session entered via the feedback feed or any filter carries Category;
//     never while a record is focused
//   - the shelf hides whenever a record is focused
//   - the stream goes compact whenever a record is focused
//   - the split chart pane shows only when not expanded and nothing is focused
func deriveVisibility(l *LayoutState, mode EntryMode, filters *FilterState, focused bool) Visibility {
	ribbon := false
	if l.Mode == LayoutTabs && l.ActiveTab == TabData {
		ribbon = true
	}
	if l.Mode == LayoutSplit && (mode == EntryFeedback || filters.HasFacet(types.FacetCategory)) {
		ribbon = true
	}
	if focused {
		ribbon = false
	}

	return Visibility{
		FacetRibbon:   ribbon,
		Shelf:         !focused,
		CompactStream: focused,
		ChartPane:     l.Mode == LayoutSplit && !l.SplitExpanded && !focused,
	}
}
