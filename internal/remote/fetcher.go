package remote

import (
	"context"
	"encoding/json"

	"github.com/dealerdesk/dealerdesk/internal/domain"
	"github.com/dealerdesk/dealerdesk/internal/table"
)

// SearchPaginationInput is the registry's pagination argument object.
// Search and Sort are omitted when empty so the registry applies its
// defaults.
type SearchPaginationInput struct {
	Skip   int    `json:"skip"`
	Take   int    `json:"take"`
	Search string `json:"search,omitempty"`
	Sort   string `json:"sort,omitempty"`
}

// pageVariables carries the two argument objects of a registry list
// operation. Pagination and the scope where-clause stay separate sibling
// objects on the wire; the registry validates them independently, so they
// must never be merged into one.
type pageVariables struct {
	Pagination SearchPaginationInput `json:"searchPaginationInput"`
	Where      map[string]string     `json:"whereSearchInput"`
}

// Fetcher adapts a registry list operation to the table.Fetcher interface.
type Fetcher[T any] struct {
	client    *Client
	operation string
	rootField string
}

// NewFetcher creates a Fetcher for one registry list operation whose reply
// lives under the given root field.
func NewFetcher[T any](client *Client, operation, rootField string) *Fetcher[T] {
	return &Fetcher[T]{client: client, operation: operation, rootField: rootField}
}

// Fetch issues the operation for one query window and normalizes the
// registry's {skip, take, total, data} reply. It performs no reshaping
// beyond unwrapping the root field.
func (f *Fetcher[T]) Fetch(ctx context.Context, q table.Query, scope map[string]string) (*domain.PageResult[T], error) {
	vars := pageVariables{
		Pagination: SearchPaginationInput{
			Skip:   q.Skip,
			Take:   q.Take,
			Search: q.Search,
			Sort:   q.SortParam(),
		},
		Where: scope,
	}

	data, err := f.client.Call(ctx, f.operation, vars)
	if err != nil {
		return nil, err
	}

	root, err := UnwrapRoot(data, f.rootField)
	if err != nil {
		return nil, err
	}

	var res domain.PageResult[T]
	if err := json.Unmarshal(root, &res); err != nil {
		return nil, domain.NewAppError(domain.CodeMalformed, "decode registry page", err)
	}
	return &res, nil
}
