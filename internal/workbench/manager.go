package workbench

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"cx-workbench-go/internal/filter"
	"cx-workbench-go/internal/store"
)

// Manager owns the live sessions. Sessions are transient: they expire after a
// TTL of inactivity-by-creation and eviction stops their pending timers.
type Manager struct {
	sessions    *gocache.Cache
	store       *store.Store
	pipeline    *filter.Pipeline
	settleDelay time.Duration
	log         *logrus.Entry
}

func NewManager(st *store.Store, ttl, settleDelay time.Duration, log *logrus.Entry) *Manager {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	c := gocache.New(ttl, 10*time.Minute)
	c.OnEvicted(func(_ string, v interface{}) {
		if s, ok := v.(*Session); ok {
			s.Stop()
		}
	})
	return &Manager{
		sessions:    c,
		store:       st,
		pipeline:    filter.NewPipeline(st),
		settleDelay: settleDelay,
		log:         log,
	}
}

// Create seeds a new session and registers it under a fresh uuid.
func (m *Manager) Create(cfg SessionConfig) *Session {
	cfg.ID = uuid.New().String()
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = m.settleDelay
	}
	s := NewSession(cfg, m.store, m.pipeline, m.log)
	m.sessions.SetDefault(cfg.ID, s)
	m.log.WithFields(logrus.Fields{
		"session_id": s.ID,
		"entry_mode": s.EntryMode,
	}).Info("workbench session created")
	return s
}

// Get returns the live session with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	v, ok := m.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("unknown session %q", id)
	}
	return v.(*Session), nil
}

// Delete ends a session immediately.
func (m *Manager) Delete(id string) {
	m.sessions.Delete(id)
}
