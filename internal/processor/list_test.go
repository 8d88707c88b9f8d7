package processor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListDefaults(t *testing.T) {
	rt := newTestRuntime(t, allowAll)

	var got QuerySpec
	p := &ListProcessor[widget]{
		Runtime: rt,
		Props:   Properties{},
		Count: func(ctx context.Context, spec QuerySpec) (int, error) {
			got = spec
			return 0, nil
		},
		Fetch: func(ctx context.Context, spec QuerySpec) ([]*widget, error) {
			return nil, nil
		},
	}

	resp := p.Run(context.Background())
	require.True(t, resp.Success)
	require.Equal(t, 0, got.Start)
	require.Equal(t, DefaultPageLimit, got.Limit)
	require.Equal(t, "name", got.SortBy)
	require.Equal(t, SortAsc, got.SortDir)
}

func TestListMergesRequestProperties(t *testing.T) {
	rt := newTestRuntime(t, allowAll)

	var got QuerySpec
	p := &ListProcessor[widget]{
		Runtime: rt,
		Props: Properties{
			"start": "40",
			"limit": "5",
			"sort":  "created_at",
			"dir":   "desc",
			"query": "blog",
		},
		Count: func(ctx context.Context, spec QuerySpec) (int, error) {
			got = spec
			return 0, nil
		},
		Fetch: func(ctx context.Context, spec QuerySpec) ([]*widget, error) {
			return nil, nil
		},
	}

	resp := p.Run(context.Background())
	require.True(t, resp.Success)
	require.Equal(t, 40, got.Start)
	require.Equal(t, 5, got.Limit)
	require.Equal(t, "created_at", got.SortBy)
	require.Equal(t, SortDesc, got.SortDir)
	require.Equal(t, "blog", got.Search)
}

func TestListTotalStaysPreFilter(t *testing.T) {
	rt := newTestRuntime(t, allowAll)

	rows := []*widget{
		{ID: "w-1", Name: "visible"},
		{ID: "w-2", Name: "hidden"},
		{ID: "w-3", Name: "visible"},
	}
	p := &ListProcessor[widget]{
		Runtime: rt,
		Props:   Properties{},
		Count: func(ctx context.Context, spec QuerySpec) (int, error) {
			return len(rows), nil
		},
		Fetch: func(ctx context.Context, spec QuerySpec) ([]*widget, error) {
			return rows, nil
		},
		CanList: func(ctx context.Context, item *widget) bool {
			return item.Name == "visible"
		},
		Project: func(w *widget) interface{} { return w.ID },
	}

	resp := p.Run(context.Background())
	require.True(t, resp.Success)

	result, ok := resp.Object.(ListResult)
	require.True(t, ok)
	// Policy-filtered rows are dropped from the page but the total still
	// reflects the unfiltered match count.
	require.Equal(t, 3, result.Total)
	require.Equal(t, []interface{}{"w-1", "w-3"}, result.Results)
}

func TestListAdjustersRunAroundCount(t *testing.T) {
	rt := newTestRuntime(t, allowAll)

	var order []string
	p := &ListProcessor[widget]{
		Runtime: rt,
		Props:   Properties{},
		BeforeCount: func(ctx context.Context, spec *QuerySpec) error {
			order = append(order, "before_count")
			spec.Limit = 2
			return nil
		},
		Count: func(ctx context.Context, spec QuerySpec) (int, error) {
			order = append(order, "count")
			return 0, nil
		},
		AfterCount: func(ctx context.Context, spec *QuerySpec) error {
			order = append(order, "after_count")
			return nil
		},
		Fetch: func(ctx context.Context, spec QuerySpec) ([]*widget, error) {
			order = append(order, "fetch")
			require.Equal(t, 2, spec.Limit)
			return nil, nil
		},
	}

	resp := p.Run(context.Background())
	require.True(t, resp.Success)
	require.Equal(t, []string{"before_count", "count", "after_count", "fetch"}, order)
}

func TestNormalizeSortDir(t *testing.T) {
	require.Equal(t, SortDesc, normalizeSortDir("desc"))
	require.Equal(t, SortDesc, normalizeSortDir("DESC"))
	require.Equal(t, SortAsc, normalizeSortDir("asc"))
	require.Equal(t, SortAsc, normalizeSortDir("sideways"))
	require.Equal(t, SortAsc, normalizeSortDir(""))
}
