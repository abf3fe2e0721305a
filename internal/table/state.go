// Package table implements the client-side binding for server-driven
// paginated tables: a query state machine that centralizes the
// reset-to-first-page rule, and a fetch session that deduplicates
// identical queries, discards stale responses, and keeps the previous
// page visible while a refetch is in flight or failed.
package table

import (
	"sort"
	"strconv"
	"strings"
)

const defaultPageSize = 20

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortSpec is one (column, direction) pair of a sort order.
type SortSpec struct {
	Column    string
	Direction Direction
}

// State holds the user-adjustable controls of one table: 0-based page
// index, page size, sort order, free-text search, and column filters.
//
// The reset rule lives here and nowhere else: changing the search term, a
// column filter, or the page size resets the page index to 0, because the
// old offset would otherwise point into a differently-filtered result set.
// Changing the sort does not reset the page index.
type State struct {
	pageIndex int
	pageSize  int
	sorts     []SortSpec
	search    string
	filters   map[string]string
}

// NewState returns a State on page 0 with the given page size.
// A non-positive page size falls back to the default.
func NewState(pageSize int) *State {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &State{
		pageSize: pageSize,
		filters:  make(map[string]string),
	}
}

// SetPageIndex moves to the given 0-based page. Used by next/prev/jump
// controls; negative values clamp to 0. No side effects on other fields.
func (s *State) SetPageIndex(n int) {
	if n < 0 {
		n = 0
	}
	s.pageIndex = n
}

// SetSearch replaces the free-text search term and resets to page 0.
func (s *State) SetSearch(term string) {
	s.search = strings.TrimSpace(term)
	s.pageIndex = 0
}

// SetFilter sets a column filter and resets to page 0.
func (s *State) SetFilter(key, value string) {
	s.filters[key] = value
	s.pageIndex = 0
}

// ClearFilter removes a column filter and resets to page 0.
func (s *State) ClearFilter(key string) {
	delete(s.filters, key)
	s.pageIndex = 0
}

// SetPageSize changes the page size and resets to page 0.
// Non-positive sizes are ignored.
func (s *State) SetPageSize(n int) {
	if n <= 0 {
		return
	}
	s.pageSize = n
	s.pageIndex = 0
}

// SetSort replaces the sort for a column, keeping the current page.
func (s *State) SetSort(column string, dir Direction) {
	for i := range s.sorts {
		if s.sorts[i].Column == column {
			s.sorts[i].Direction = dir
			return
		}
	}
	s.sorts = append(s.sorts, SortSpec{Column: column, Direction: dir})
}

// SetSorts replaces the whole sort order, keeping the current page.
func (s *State) SetSorts(specs []SortSpec) {
	s.sorts = append([]SortSpec(nil), specs...)
}

// ClearSort removes the sort for a column, keeping the current page.
func (s *State) ClearSort(column string) {
	for i := range s.sorts {
		if s.sorts[i].Column == column {
			s.sorts = append(s.sorts[:i], s.sorts[i+1:]...)
			return
		}
	}
}

// PageIndex returns the current 0-based page index.
func (s *State) PageIndex() int { return s.pageIndex }

// PageSize returns the current page size.
func (s *State) PageSize() int { return s.pageSize }

// Skip returns the row offset of the current page: pageIndex * pageSize.
func (s *State) Skip() int { return s.pageIndex * s.pageSize }

// Query snapshots the state into an immutable query value.
func (s *State) Query() Query {
	q := Query{
		Skip:   s.Skip(),
		Take:   s.pageSize,
		Search: s.search,
		Sorts:  append([]SortSpec(nil), s.sorts...),
	}
	if len(s.filters) > 0 {
		q.Filters = make(map[string]string, len(s.filters))
		for k, v := range s.filters {
			q.Filters[k] = v
		}
	}
	return q
}

// Query is one fully-resolved table request: the pagination window plus
// search, sort, and column filters. Two queries with the same Key() are
// interchangeable and may share a cached response.
type Query struct {
	Skip    int
	Take    int
	Search  string
	Sorts   []SortSpec
	Filters map[string]string
}

// Key serializes the query deterministically for cache keying and request
// deduplication. Filter keys are emitted in sorted order so insertion
// order never changes the key.
func (q Query) Key() string {
	var b strings.Builder
	b.WriteString("skip=")
	b.WriteString(strconv.Itoa(q.Skip))
	b.WriteString("&take=")
	b.WriteString(strconv.Itoa(q.Take))
	if q.Search != "" {
		b.WriteString("&search=")
		b.WriteString(q.Search)
	}
	for _, s := range q.Sorts {
		b.WriteString("&sort=")
		b.WriteString(s.Column)
		b.WriteString(":")
		b.WriteString(string(s.Direction))
	}
	if len(q.Filters) > 0 {
		keys := make([]string, 0, len(q.Filters))
		for k := range q.Filters {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString("&")
			b.WriteString(k)
			b.WriteString("=")
			b.WriteString(q.Filters[k])
		}
	}
	return b.String()
}

// SortParam renders the sort list in the "column:dir" wire form, multiple
// entries joined by commas. Empty when the server default order applies.
func (q Query) SortParam() string {
	if len(q.Sorts) == 0 {
		return ""
	}
	parts := make([]string, len(q.Sorts))
	for i, s := range q.Sorts {
		parts[i] = s.Column + ":" + string(s.Direction)
	}
	return strings.Join(parts, ",")
}
