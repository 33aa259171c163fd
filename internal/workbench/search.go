package workbench

import (
	"strings"
	"sync"
	"time"
)

// DefaultSettleDelay is how long the raw query must stay unchanged before it
// becomes the settled query used for filtering and highlighting.
const DefaultSettleDelay = 1500 * time.Millisecond

// SearchState decouples keystroke-rate query updates from re-filtering: the
// raw value changes synchronously, the settled value mirrors it only after an
// inactivity window. Each update cancels any pending window, so at most one
// timer is ever outstanding.
type SearchState struct {
	mu       sync.Mutex
	raw      string
	settled  string
	delay    time.Duration
	timer    *time.Timer
	gen      uint64
	onSettle func(string)
}

func NewSearchState(delay time.Duration) *SearchState {
	if delay <= 0 {
		delay = DefaultSettleDelay
	}
	return &SearchState{delay: delay}
}

// OnSettle registers a callback invoked (on the timer goroutine) whenever the
// settled value changes.
func (s *SearchState) OnSettle(fn func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSettle = fn
}

// SetQuery records the raw value and reschedules the settle timer. An empty
// query settles immediately so clearing the search box snaps back without a
// delay.
func (s *SearchState) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.raw = q
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++

	if strings.TrimSpace(q) == "" {
		s.settleLocked(q)
		return
	}

	gen := s.gen
	s.timer = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// a later SetQuery won the race; this window was cancelled
		if gen != s.gen {
			return
		}
		s.timer = nil
		s.settleLocked(s.raw)
	})
}

func (s *SearchState) settleLocked(value string) {
	if s.settled == value {
		return
	}
	s.settled = value
	if s.onSettle != nil {
		fn, v := s.onSettle, value
		go fn(v)
	}
}

// Raw returns the query as typed.
func (s *SearchState) Raw() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw
}

// Settled returns the query the pipeline and highlighter see.
func (s *SearchState) Settled() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settled
}

// Stop cancels any pending settle window. Called when the owning session is
// closed or evicted.
func (s *SearchState) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}
