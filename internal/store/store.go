// Package store holds the session-lifetime interaction dataset. The record
// collection is loaded once, ordered, and never mutated; every workbench
// session filters views of it.
package store

import (
	"fmt"

	"cx-workbench-go/internal/types"
)

// Context carries the per-record lookup tables (chapters, topic-model tags,
// metadata) that the detail pane renders next to a focused interaction.
type Context struct {
	Chapters map[string][]types.Chapter
	Topics   map[string][]types.TopicGroup
	Metadata map[string]types.Metadata
}

type Store struct {
	records []types.Interaction
	byID    map[string]int
	ctx     Context
}

// New validates every record and builds the id index. Duplicate ids and
// variant-invariant violations are load errors, not runtime surprises.
func New(records []types.Interaction, ctx Context) (*Store, error) {
	byID := make(map[string]int, len(records))
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate interaction id %q", r.ID)
		}
		byID[r.ID] = i
	}
	if ctx.Chapters == nil {
		ctx.Chapters = map[string][]types.Chapter{}
	}
	if ctx.Topics == nil {
		ctx.Topics = map[string][]types.TopicGroup{}
	}
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]types.Metadata{}
	}
	return &Store{records: records, byID: byID, ctx: ctx}, nil
}

// Records returns the full ordered collection. Callers must treat it as
// read-only.
func (s *Store) Records() []types.Interaction {
	return s.records
}

func (s *Store) Len() int {
	return len(s.records)
}

// Get looks up a record by id.
func (s *Store) Get(id string) (types.Interaction, bool) {
	i, ok := s.byID[id]
	if !ok {
		return types.Interaction{}, false
	}
	return s.records[i], true
}

// ChaptersFor returns the chapter breakdown for a record, empty for unknown
// ids.
func (s *Store) ChaptersFor(id string) []types.Chapter {
	return s.ctx.Chapters[id]
}

// TopicsFor returns the topic-model groups for a record, empty for unknown
// ids.
func (s *Store) TopicsFor(id string) []types.TopicGroup {
	return s.ctx.Topics[id]
}

// MetadataFor returns the metadata for a record. The fallback sentiment fills
// the emotion key only when the store has no value for it; unknown ids yield
// metadata holding just that fallback.
func (s *Store) MetadataFor(id string, fallbackSentiment types.Sentiment) types.Metadata {
	m := s.ctx.Metadata[id]
	if m.Emotion == "" && fallbackSentiment != "" {
		m.Emotion = string(fallbackSentiment)
	}
	return m
}
