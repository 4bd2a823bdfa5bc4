package listens

import (
	"context"
	"fmt"
	"time"

	"github.com/morningfm/front/internal/domain"
)

// DefaultPageSize is used when a caller sets neither first nor last.
const DefaultPageSize = 50

// PageArgs are the four optional cursor-pagination arguments. A well-formed
// caller sets exactly one of First/Last; when both are set, Last wins for
// both scan direction and limit. Cursors are listen times, and both bounds
// are exclusive of their own listen.
type PageArgs struct {
	First  *int
	Last   *int
	Before *time.Time
	After  *time.Time
}

// SortOrder is the scan direction the args imply: descending iff Last is set.
func (a PageArgs) SortOrder() domain.SortOrder {
	if a.Last != nil {
		return domain.SortOrderDescending
	}
	return domain.SortOrderAscending
}

// Limit is the page size the args imply. Negative values are treated as 0.
func (a PageArgs) Limit() int {
	limit := DefaultPageSize
	switch {
	case a.Last != nil:
		limit = *a.Last
	case a.First != nil:
		limit = *a.First
	}
	if limit < 0 {
		limit = 0
	}
	return limit
}

// Edge is one listen in a page, annotated with its cursor.
type Edge struct {
	Listen domain.Listen
	Cursor time.Time
}

// Page is an ordered run of listens. Edges are always in ascending
// chronological order regardless of the scan direction used to fetch them.
type Page struct {
	Edges           []Edge
	HasNextPage     bool
	HasPreviousPage bool
	StartCursor     *time.Time
	EndCursor       *time.Time
}

// GetPage fetches one page of listens. It asks the gateway for limit+1
// items (the extra item is a peek that only reveals whether more exist),
// trims the peek, and reverses descending scans so the page always reads
// oldest-first. Pure apart from the single gateway fetch; nothing is cached.
func (s *Service) GetPage(ctx context.Context, args PageArgs) (*Page, error) {
	order := args.SortOrder()
	limit := args.Limit()

	fetched, err := s.listens.FetchListens(ctx, limit+1, order, args.Before, args.After)
	if err != nil {
		if domain.IsDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("get listens page: %w", err)
	}

	hasMore := len(fetched) == limit+1
	if hasMore {
		fetched = fetched[:limit]
	}

	if order == domain.SortOrderDescending {
		reverse(fetched)
	}

	edges := make([]Edge, 0, len(fetched))
	for _, listen := range fetched {
		edges = append(edges, Edge{Listen: listen, Cursor: listen.ListenTimeUTC})
	}

	page := &Page{Edges: edges}
	if args.Last != nil {
		page.HasPreviousPage = hasMore
	} else {
		page.HasNextPage = hasMore
	}
	if len(edges) > 0 {
		start := edges[0].Cursor
		end := edges[len(edges)-1].Cursor
		page.StartCursor = &start
		page.EndCursor = &end
	}
	return page, nil
}

func reverse(listens []domain.Listen) {
	for i, j := 0, len(listens)-1; i < j; i, j = i+1, j-1 {
		listens[i], listens[j] = listens[j], listens[i]
	}
}
