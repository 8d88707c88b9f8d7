package processor

import (
	"context"
	"strings"
)

// Sort directions accepted by list processors.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// DefaultPageLimit is the page size applied when the request omits "limit".
const DefaultPageLimit = 20

// QuerySpec carries the merged pagination and sort criteria for one list
// request. Count/Fetch hooks translate it onto the ent query builder;
// BeforeCount/AfterCount adjusters may rewrite it in place.
type QuerySpec struct {
	Start   int
	Limit   int // <= 0 means unbounded
	SortBy  string
	SortDir string
	Search  string

	// Props is the full request property map for criteria beyond the
	// standard four.
	Props Properties
}

// ListProcessor produces one page of entities with a pre-filter total.
type ListProcessor[T any] struct {
	Runtime *Runtime
	Props   Properties

	RequiredPermission string
	LexTopics          []string

	// DefaultSortBy defaults to "name", DefaultSortDir to ASC,
	// DefaultLimit to DefaultPageLimit.
	DefaultSortBy  string
	DefaultSortDir string
	DefaultLimit   int

	// BeforeCount adjusts the spec before the match count is taken.
	BeforeCount func(ctx context.Context, spec *QuerySpec) error
	// Count returns the number of rows matching the criteria, ignoring
	// pagination.
	Count func(ctx context.Context, spec QuerySpec) (int, error)
	// AfterCount adjusts the spec between counting and fetching.
	AfterCount func(ctx context.Context, spec *QuerySpec) error
	// Fetch returns the page rows with sort and limit applied.
	Fetch func(ctx context.Context, spec QuerySpec) ([]*T, error)
	// CanList filters individual rows after the fetch. Rows failing the
	// check are dropped from the results but still counted in Total.
	CanList func(ctx context.Context, item *T) bool
	// Project shapes each row; nil passes rows through.
	Project func(*T) interface{}

	spec QuerySpec
}

// Permission implements Processor.
func (p *ListProcessor[T]) Permission() string { return p.RequiredPermission }

// Topics implements Processor.
func (p *ListProcessor[T]) Topics() []string { return p.LexTopics }

// Initialize merges the default pagination and sort properties.
func (p *ListProcessor[T]) Initialize(ctx context.Context) error {
	sortBy := p.DefaultSortBy
	if sortBy == "" {
		sortBy = "name"
	}
	limit := p.DefaultLimit
	if limit == 0 {
		limit = DefaultPageLimit
	}
	sortDir := p.DefaultSortDir
	if sortDir == "" {
		sortDir = SortAsc
	}

	p.spec = QuerySpec{
		Start:   p.Props.IntOr("start", 0),
		Limit:   p.Props.IntOr("limit", limit),
		SortBy:  p.Props.StringOr("sort", sortBy),
		SortDir: normalizeSortDir(p.Props.StringOr("dir", sortDir)),
		Search:  p.Props.String("query"),
		Props:   p.Props,
	}
	if p.spec.Start < 0 {
		p.spec.Start = 0
	}
	return nil
}

// Process counts, fetches, filters and projects one page.
func (p *ListProcessor[T]) Process(ctx context.Context) *Response {
	if p.BeforeCount != nil {
		if err := p.BeforeCount(ctx, &p.spec); err != nil {
			return p.Runtime.failureFrom(err, "internal_error")
		}
	}

	total, err := p.Count(ctx, p.spec)
	if err != nil {
		return p.Runtime.failureFrom(err, "internal_error")
	}

	if p.AfterCount != nil {
		if err := p.AfterCount(ctx, &p.spec); err != nil {
			return p.Runtime.failureFrom(err, "internal_error")
		}
	}

	items, err := p.Fetch(ctx, p.spec)
	if err != nil {
		return p.Runtime.failureFrom(err, "internal_error")
	}

	results := make([]interface{}, 0, len(items))
	for _, item := range items {
		if p.CanList != nil && !p.CanList(ctx, item) {
			continue
		}
		if p.Project != nil {
			results = append(results, p.Project(item))
		} else {
			results = append(results, item)
		}
	}

	// Total stays the pre-filter count even when policy checks dropped
	// rows; consumers were built against that contract.
	return OK(ListResult{Total: total, Results: results})
}

// Run drives the processor through the shared lifecycle.
func (p *ListProcessor[T]) Run(ctx context.Context) *Response {
	return Run(ctx, p.Runtime, p)
}

func normalizeSortDir(dir string) string {
	if strings.EqualFold(dir, SortDesc) {
		return SortDesc
	}
	return SortAsc
}
