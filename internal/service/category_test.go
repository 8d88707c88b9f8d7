package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"lattice-cms.io/lattice/ent/category"
	"lattice-cms.io/lattice/ent/propertyset"
	"lattice-cms.io/lattice/internal/processor"
	"lattice-cms.io/lattice/internal/testutil"
)

func TestCategoryCreateAndList(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "category_create_list")
	rt := newTestRuntime(t, client, allowAllPolicy{})
	svc := NewCategoryService(client, rt)
	ctx := context.Background()

	resp := svc.Create(ctx, "tester", processor.Properties{"name": "Layouts", "rank": 2})
	require.True(t, resp.Success, "create failed: %s", resp.Message)

	resp = svc.Create(ctx, "tester", processor.Properties{"name": "Partials", "rank": 1})
	require.True(t, resp.Success, "create failed: %s", resp.Message)

	t.Run("duplicate name rejected", func(t *testing.T) {
		resp := svc.Create(ctx, "tester", processor.Properties{"name": "Layouts"})
		require.False(t, resp.Success)
		_, ok := resp.FieldError("name")
		require.True(t, ok)
	})

	t.Run("unknown parent rejected", func(t *testing.T) {
		resp := svc.Create(ctx, "tester", processor.Properties{
			"name":   "Nested",
			"parent": "cat-missing",
		})
		require.False(t, resp.Success)
		_, ok := resp.FieldError("parent")
		require.True(t, ok)
	})

	t.Run("list sorts by rank by default", func(t *testing.T) {
		resp := svc.List(ctx, processor.Properties{})
		require.True(t, resp.Success, "list failed: %s", resp.Message)

		result := resp.Object.(processor.ListResult)
		require.Equal(t, 2, result.Total)
		first := result.Results[0].(categoryView)
		require.Equal(t, "Partials", first.Name)
	})
}

func TestCategoryRemoveDetachesChildrenAndSets(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "category_remove")
	rt := newTestRuntime(t, client, allowAllPolicy{})
	svc := NewCategoryService(client, rt)
	psSvc := NewPropertySetService(client, rt)
	ctx := context.Background()

	resp := svc.Create(ctx, "tester", processor.Properties{"name": "Parent"})
	require.True(t, resp.Success)
	parentID := resp.Object.(categoryView).ID

	resp = svc.Create(ctx, "tester", processor.Properties{"name": "Child", "parent": parentID})
	require.True(t, resp.Success)
	childID := resp.Object.(categoryView).ID

	resp = psSvc.Create(ctx, "tester", processor.Properties{
		"name":     "Categorized Set",
		"category": parentID,
	})
	require.True(t, resp.Success, "create set failed: %s", resp.Message)
	setID := resp.Object.(propertySetView).ID

	resp = svc.Remove(ctx, "tester", processor.Properties{"id": parentID})
	require.True(t, resp.Success, "remove failed: %s", resp.Message)

	// The child survives as a root category.
	child, err := client.Category.Query().
		Where(category.IDEQ(childID)).
		WithParent().
		Only(ctx)
	require.NoError(t, err)
	require.Nil(t, child.Edges.Parent)

	// The property set survives uncategorized.
	ps, err := client.PropertySet.Query().
		Where(propertyset.IDEQ(setID)).
		WithCategory().
		Only(ctx)
	require.NoError(t, err)
	require.Nil(t, ps.Edges.Category)
}
