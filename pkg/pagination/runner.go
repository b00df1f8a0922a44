// Package pagination walks paged search endpoints to completion.
package pagination

import (
	"context"
	"time"
)

// Query is the date-range search sent to a paged endpoint. A nil Page lets the
// endpoint choose its default (the first page); a nil MaxResults its default size.
type Query struct {
	InitialDate time.Time
	FinalDate   time.Time
	Page        *int
	MaxResults  *int
}

// Page is one parsed page of results.
type Page[T any] struct {
	Items       []T
	CurrentPage *int
	TotalPages  *int
}

// Last reports whether no further page should be requested. Missing pagination
// metadata counts as the last page, as does a current page at or past the total.
func (p Page[T]) Last() bool {
	return p.CurrentPage == nil || p.TotalPages == nil || *p.CurrentPage >= *p.TotalPages
}

// FetchFunc performs one round-trip for the page in q.
type FetchFunc[T any] func(ctx context.Context, q Query) (Page[T], error)

// Collect fetches pages sequentially, starting at q.Page, and returns every item in
// page order. The first failing fetch aborts the walk; items from earlier pages are
// discarded and only the error is returned. A cancelled ctx stops the walk between pages.
func Collect[T any](ctx context.Context, q Query, fetch FetchFunc[T]) ([]T, error) {
	results := make([]T, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := fetch(ctx, q)
		if err != nil {
			return nil, err
		}
		results = append(results, page.Items...)
		if page.Last() {
			return results, nil
		}
		next := *page.CurrentPage + 1
		q.Page = &next
	}
}

// Int returns a pointer to v, for building queries.
func Int(v int) *int {
	return &v
}
