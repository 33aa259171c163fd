package workbench

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"cx-workbench-go/internal/aggregator"
	"cx-workbench-go/internal/filter"
	"cx-workbench-go/internal/highlight"
	"cx-workbench-go/internal/store"
	"cx-workbench-go/internal/types"
)

// Session is one analyst's workbench: the four controllers over one shared
// store, behind a single mutex. HTTP handlers and the search settle timer are
// the only concurrent writers.
type Session struct {
	ID        string
	EntryMode EntryMode

	mu        sync.Mutex
	filters   *FilterState
	search    *SearchState
	selection *SelectionState
	layout    *LayoutState

	store    *store.Store
	pipeline *filter.Pipeline
	log      *logrus.Entry
}

// SessionConfig carries everything a new session is seeded with. Only the
// constructor reads it; later changes to the caller's copies have no effect.
type SessionConfig struct {
	ID               string
	EntryMode        EntryMode
	DashboardFilters []types.GlobalFilter
	InitialFilter    *types.FilterSpec
	FocusOnData      bool
	SettleDelay      time.Duration
}

func NewSession(cfg SessionConfig, st *store.Store, pl *filter.Pipeline, log *logrus.Entry) *Session {
	mode := cfg.EntryMode
	if mode == "" {
		mode = EntryWidget
	}
	s := &Session{
		ID:        cfg.ID,
		EntryMode: mode,
		filters:   NewFilterState(cfg.DashboardFilters, cfg.InitialFilter),
		search:    NewSearchState(cfg.SettleDelay),
		selection: NewSelectionState(),
		layout:    NewLayoutState(cfg.FocusOnData || cfg.InitialFilter != nil),
		store:     st,
		pipeline:  pl,
		log:       log.WithField("session_id", cfg.ID),
	}
	s.search.OnSettle(func(q string) {
		s.log.WithField("settled_query", q).Debug("search settled")
	})
	return s
}

// ToggleFilter flips an active (type,value) filter.
func (s *Session) ToggleFilter(ftype, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Toggle(ftype, value)
	s.log.WithFields(logrus.Fields{"facet": ftype, "value": value}).Debug("toggled filter")
}

// RemoveGlobalFilter drops an inherited filter by id.
func (s *Session) RemoveGlobalFilter(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.RemoveGlobal(id)
}

// SetQuery updates the raw search query; the settled value follows after the
// inactivity window.
func (s *Session) SetQuery(q string) {
	s.search.SetQuery(q)
}

// Select focuses the record with the given id.
func (s *Session) Select(id string) error {
	rec, ok := s.store.Get(id)
	if !ok {
		return fmt.Errorf("unknown interaction %q", id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Select(rec)
	return nil
}

// CloseFocus clears the focused record.
func (s *Session) CloseFocus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Close()
}

// AddToNotebook bookmarks the record with the given id.
func (s *Session) AddToNotebook(id string) error {
	rec, ok := s.store.Get(id)
	if !ok {
		return fmt.Errorf("unknown interaction %q", id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.AddToNotebook(rec)
	return nil
}

// RemoveFromNotebook drops a bookmark; unknown ids are a no-op.
func (s *Session) RemoveFromNotebook(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.RemoveFromNotebook(id)
}

// LayoutUpdate is a partial layout write; nil fields stay as they are.
type LayoutUpdate struct {
	Mode            *LayoutMode `json:"mode,omitempty"`
	ActiveTab       *Tab        `json:"active_tab,omitempty"`
	SplitExpanded   *bool       `json:"split_expanded,omitempty"`
	StreamCollapsed *bool       `json:"stream_collapsed,omitempty"`
}

// UpdateLayout applies the non-nil fields of the update.
func (s *Session) UpdateLayout(u LayoutUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.Mode != nil {
		s.layout.Mode = *u.Mode
	}
	if u.ActiveTab != nil {
		s.layout.ActiveTab = *u.ActiveTab
	}
	if u.SplitExpanded != nil {
		s.layout.SplitExpanded = *u.SplitExpanded
	}
	if u.StreamCollapsed != nil {
		s.layout.StreamCollapsed = *u.StreamCollapsed
	}
}

// SwitchEntryMode changes how the workbench is framed and resets every layout
// flag to its default.
func (s *Session) SwitchEntryMode(mode EntryMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if mode != "" {
		s.EntryMode = mode
	}
	s.layout.Reset()
}

// Results runs the filter pipeline over the current state.
func (s *Session) Results() []types.Interaction {
	s.mu.Lock()
	global := s.filters.Global()
	active := s.filters.Active()
	s.mu.Unlock()
	return s.pipeline.Evaluate(global, active, s.search.Settled())
}

// Notebook returns the bookmarked records.
func (s *Session) Notebook() []types.Interaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Notebook()
}

// Highlight segments a record's content against the settled query.
func (s *Session) Highlight(id string) ([]highlight.Segment, error) {
	rec, ok := s.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("unknown interaction %q", id)
	}
	return highlight.Apply(rec.Content(), s.search.Settled()), nil
}

// View is the full derived state of a session, one read for the presentation
// layer.
type View struct {
	SessionID    string               `json:"session_id"`
	EntryMode    EntryMode            `json:"entry_mode"`
	Results      []types.Interaction  `json:"results"`
	Total        int                  `json:"total"`
	Global       []types.GlobalFilter `json:"global_filters"`
	Active       []types.FilterSpec   `json:"active_filters"`
	RawQuery     string               `json:"raw_query"`
	SettledQuery string               `json:"settled_query"`
	Focused      *types.Interaction   `json:"focused,omitempty"`
	Notebook     []types.Interaction  `json:"notebook"`
	Layout       LayoutState          `json:"layout"`
	Visibility   Visibility           `json:"visibility"`
	Ribbon       aggregator.Breakdown `json:"ribbon"`
}

// View recomputes everything derived from current state. Nothing here is
// cached imperatively; rapid toggling always reads fresh state.
func (s *Session) View() View {
	s.mu.Lock()
	global := s.filters.Global()
	active := s.filters.Active()
	focused, hasFocus := s.selection.Focused()
	notebook := s.selection.Notebook()
	layout := *s.layout
	vis := deriveVisibility(s.layout, s.EntryMode, s.filters, hasFocus)
	mode := s.EntryMode
	s.mu.Unlock()

	settled := s.search.Settled()
	results := s.pipeline.Evaluate(global, active, settled)

	v := View{
		SessionID:    s.ID,
		EntryMode:    mode,
		Results:      results,
		Total:        len(results),
		Global:       global,
		Active:       active,
		RawQuery:     s.search.Raw(),
		SettledQuery: settled,
		Notebook:     notebook,
		Layout:       layout,
		Visibility:   vis,
		Ribbon:       aggregator.SentimentBreakdown(results),
	}
	if hasFocus {
		v.Focused = &focused
	}
	return v
}

// Stop cancels the session's pending timers. The session is unusable after.
func (s *Session) Stop() {
	s.search.Stop()
}
