package table

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dealerdesk/dealerdesk/internal/domain"
)

const defaultCacheSize = 64

// Fetcher loads one page of rows for a query plus a fixed scope. The scope
// carries page-level constraints (e.g. company_id) and stays separate from
// the user-adjustable query; implementations must keep the two apart on
// the wire because some backends validate them independently.
type Fetcher[T any] interface {
	Fetch(ctx context.Context, q Query, scope map[string]string) (*domain.PageResult[T], error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc[T any] func(ctx context.Context, q Query, scope map[string]string) (*domain.PageResult[T], error)

// Fetch implements Fetcher.
func (f FetcherFunc[T]) Fetch(ctx context.Context, q Query, scope map[string]string) (*domain.PageResult[T], error) {
	return f(ctx, q, scope)
}

// Session drives one table: it owns the query State, fetches through a
// Fetcher, and maintains the display result under three rules:
//
//   - dedupe: a query tuple already in the cache is served without a fetch;
//   - latest wins: every fetch carries a sequence number, and a response
//     arriving for a superseded sequence is discarded so a slow earlier
//     request can never overwrite a newer one;
//   - placeholder data: on failure the previous successful result stays
//     displayed alongside the recorded error, and retry is a plain re-issue
//     of the current tuple on explicit request (no automatic backoff).
type Session[T any] struct {
	mu      sync.Mutex
	state   *State
	scope   map[string]string
	fetcher Fetcher[T]
	cache   *lru.Cache[string, *domain.PageResult[T]]

	seq     uint64
	current *domain.PageResult[T]
	lastErr error
}

// NewSession creates a Session over the given fetcher and fixed scope.
// cacheSize bounds the per-session response cache; non-positive values use
// the default.
func NewSession[T any](fetcher Fetcher[T], scope map[string]string, cacheSize int) (*Session[T], error) {
	if fetcher == nil {
		return nil, fmt.Errorf("table: fetcher is nil")
	}
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, *domain.PageResult[T]](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("table: create cache: %w", err)
	}
	if scope == nil {
		scope = map[string]string{}
	}
	return &Session[T]{
		state:   NewState(0),
		scope:   scope,
		fetcher: fetcher,
		cache:   cache,
	}, nil
}

// Update applies fn to the session's State under the session lock.
// Callers follow it with Load to refresh the result.
func (s *Session[T]) Update(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// Load resolves the current query: from cache when the tuple is known,
// otherwise through the fetcher. On success the result replaces the
// display state; on failure the previous result is returned together with
// the error. A response that loses the latest-wins race is dropped and the
// newest display state is returned instead.
func (s *Session[T]) Load(ctx context.Context) (*domain.PageResult[T], error) {
	s.mu.Lock()
	q := s.state.Query()
	key := s.cacheKey(q)

	if res, ok := s.cache.Get(key); ok {
		s.current = res
		s.lastErr = nil
		s.mu.Unlock()
		return res, nil
	}

	s.seq++
	mySeq := s.seq
	s.mu.Unlock()

	res, err := s.fetcher.Fetch(ctx, q, s.scope)

	s.mu.Lock()
	defer s.mu.Unlock()

	if mySeq != s.seq {
		// A newer request was issued while this one was in flight; its
		// outcome owns the display state now.
		return s.current, s.lastErr
	}

	if err != nil {
		s.lastErr = err
		return s.current, err
	}

	if err := validateEcho(q, res); err != nil {
		s.lastErr = err
		return s.current, err
	}

	s.cache.Add(key, res)
	s.current = res
	s.lastErr = nil
	return res, nil
}

// Retry re-issues the current query, bypassing the cache. It is the manual
// recovery path surfaced to the user after a failed Load.
func (s *Session[T]) Retry(ctx context.Context) (*domain.PageResult[T], error) {
	s.mu.Lock()
	s.cache.Remove(s.cacheKey(s.state.Query()))
	s.mu.Unlock()
	return s.Load(ctx)
}

// Invalidate drops all cached responses. Called after a mutation on the
// underlying entity so the next Load observes fresh data.
func (s *Session[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Purge()
}

// Current returns the displayed result and the error of the most recent
// failed load, if any. During a failed refetch both are non-nil: the
// result is the previous page kept as placeholder data.
func (s *Session[T]) Current() (*domain.PageResult[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.lastErr
}

// cacheKey combines the query key with the fixed scope so sessions sharing
// a cache type never collide across scopes.
func (s *Session[T]) cacheKey(q Query) string {
	if len(s.scope) == 0 {
		return q.Key()
	}
	keys := make([]string, 0, len(s.scope))
	for k := range s.scope {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(s.scope[k])
		b.WriteString("|")
	}
	b.WriteString(q.Key())
	return b.String()
}

// validateEcho checks that a well-formed response echoes the request's
// pagination window. A mismatch means the response belongs to some other
// request and cannot be trusted for this one.
func validateEcho[T any](q Query, res *domain.PageResult[T]) error {
	if res == nil {
		return domain.NewAppError(domain.CodeMalformed, "empty result", nil)
	}
	if res.Skip != q.Skip || res.Take != q.Take {
		return domain.NewAppError(domain.CodeMalformed,
			fmt.Sprintf("response window skip=%d take=%d does not match request skip=%d take=%d",
				res.Skip, res.Take, q.Skip, q.Take), nil)
	}
	if len(res.Data) > res.Take {
		return domain.NewAppError(domain.CodeMalformed, "response page larger than requested take", nil)
	}
	return nil
}
