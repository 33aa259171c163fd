package filter

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"cx-workbench-go/internal/store"
	"cx-workbench-go/internal/types"
)

// Pipeline evaluates the full filter chain (globals, then actives, then the
// settled query) over one immutable store. Because evaluation is pure and the
// dataset never changes for the process lifetime, results are memoized on the
// ordered specs plus the query.
type Pipeline struct {
	store *store.Store
	cache *gocache.Cache
}

func NewPipeline(s *store.Store) *Pipeline {
	return &Pipeline{
		store: s,
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// Evaluate runs the four-stage pipeline. The returned slice is shared with
// the cache and must be treated as read-only.
func (p *Pipeline) Evaluate(global []types.GlobalFilter, active []types.FilterSpec, query string) []types.Interaction {
	key := cacheKey(global, active, query)
	if hit, ok := p.cache.Get(key); ok {
		return hit.([]types.Interaction)
	}

	result := p.store.Records()
	for _, g := range global {
		result = applyOne(result, g.Spec())
	}
	result = Apply(result, active)
	result = ApplyQuery(result, query)

	p.cache.SetDefault(key, result)
	return result
}

func cacheKey(global []types.GlobalFilter, active []types.FilterSpec, query string) string {
	var b strings.Builder
	for _, g := range global {
		b.WriteString("g:")
		b.WriteString(g.Type)
		b.WriteByte('=')
		b.WriteString(g.Value)
		b.WriteByte('\x1f')
	}
	for _, a := range active {
		b.WriteString("a:")
		b.WriteString(a.Type)
		b.WriteByte('=')
		b.WriteString(a.Value)
		b.WriteByte('\x1f')
	}
	b.WriteString("q:")
	b.WriteString(strings.ToLower(strings.TrimSpace(query)))
	return b.String()
}
