package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/dealerdesk/dealerdesk/internal/remote"
	"github.com/dealerdesk/dealerdesk/internal/table"
)

// sessionPool hands out one long-lived table.Session per scope for a single
// registry list operation. Sessions survive across requests so the dedupe
// cache and placeholder state behave the same way they would in a
// long-running client.
type sessionPool[T any] struct {
	mu        sync.Mutex
	fetcher   table.Fetcher[T]
	cacheSize int
	sessions  map[string]*table.Session[T]
}

func newSessionPool[T any](client *remote.Client, operation, rootField string, cacheSize int) *sessionPool[T] {
	return &sessionPool[T]{
		fetcher:   remote.NewFetcher[T](client, operation, rootField),
		cacheSize: cacheSize,
		sessions:  make(map[string]*table.Session[T]),
	}
}

// get returns the session for the given scope, creating it on first use.
func (p *sessionPool[T]) get(scope map[string]string) (*table.Session[T], error) {
	key := scopeKey(scope)

	p.mu.Lock()
	defer p.mu.Unlock()

	if s, ok := p.sessions[key]; ok {
		return s, nil
	}
	s, err := table.NewSession(p.fetcher, scope, p.cacheSize)
	if err != nil {
		return nil, err
	}
	p.sessions[key] = s
	return s, nil
}

// invalidateAll drops the caches of every session in the pool.
func (p *sessionPool[T]) invalidateAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.sessions {
		s.Invalidate()
	}
}

func scopeKey(scope map[string]string) string {
	if len(scope) == 0 {
		return ""
	}
	keys := make([]string, 0, len(scope))
	for k := range scope {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(scope[k])
		b.WriteString("&")
	}
	return b.String()
}
