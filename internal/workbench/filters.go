// Package workbench owns the mutable state behind the drill-down view: the
// filter sets, the debounced search query, the focused record and notebook,
// and the layout flags. Each concern is its own controller; Session composes
// them and is the only thing handlers talk to.
package workbench

import "cx-workbench-go/internal/types"

// DefaultGlobalFilters mirrors the dashboard's standing filter chips. Used
// when a session is created without an explicit dashboard filter list.
func DefaultGlobalFilters() []types.GlobalFilter {
	return []types.GlobalFilter{
		{ID: "dataset-survey", Type: types.FacetDataset, Value: "Survey metadata"},
		{ID: "dataset-call", Type: types.FacetDataset, Value: "Call metadata"},
		{ID: "dataset-social", Type: types.FacetDataset, Value: "Social channels"},
	}
}

// FilterState holds the ordered global and active filter sets. Seeding
// happens once, in the constructor; nothing re-seeds a live state.
type FilterState struct {
	global []types.GlobalFilter
	active []types.FilterSpec
}

// NewFilterState seeds the global set from the dashboard filters (or the
// defaults when nil) plus one filter, id "initial", for the drill-down filter
// the caller navigated in with.
func NewFilterState(dashboard []types.GlobalFilter, drill *types.FilterSpec) *FilterState {
	if dashboard == nil {
		dashboard = DefaultGlobalFilters()
	}
	global := make([]types.GlobalFilter, len(dashboard), len(dashboard)+1)
	copy(global, dashboard)
	if drill != nil {
		global = append(global, types.GlobalFilter{ID: "initial", Type: drill.Type, Value: drill.Value})
	}
	return &FilterState{global: global}
}

// Toggle removes an exactly-matching active filter, or adds one. Topic is
// additive; any other facet is single-select, so adding replaces whatever
// filter of that type was set. Two identical toggles cancel out.
func (s *FilterState) Toggle(ftype, value string) {
	for i, f := range s.active {
		if f.Type == ftype && f.Value == value {
			s.active = append(s.active[:i:i], s.active[i+1:]...)
			return
		}
	}
	if ftype != types.FacetTopic {
		kept := s.active[:0:0]
		for _, f := range s.active {
			if f.Type != ftype {
				kept = append(kept, f)
			}
		}
		s.active = kept
	}
	s.active = append(s.active, types.FilterSpec{Type: ftype, Value: value})
}

// RemoveGlobal drops the global filter with the given id; unknown ids are a
// no-op. Removed filters never come back.
func (s *FilterState) RemoveGlobal(id string) {
	for i, f := range s.global {
		if f.ID == id {
			s.global = append(s.global[:i:i], s.global[i+1:]...)
			return
		}
	}
}

// Global returns a copy of the current global filter set.
func (s *FilterState) Global() []types.GlobalFilter {
	out := make([]types.GlobalFilter, len(s.global))
	copy(out, s.global)
	return out
}

// Active returns a copy of the current active filter set.
func (s *FilterState) Active() []types.FilterSpec {
	out := make([]types.FilterSpec, len(s.active))
	copy(out, s.active)
	return out
}

// HasFacet reports whether any global or active filter carries the facet.
func (s *FilterState) HasFacet(ftype string) bool {
	for _, f := range s.global {
		if f.Type == ftype {
			return true
		}
	}
	for _, f := range s.active {
		if f.Type == ftype {
			return true
		}
	}
	return false
}
