package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/category"
	"lattice-cms.io/lattice/ent/elementbinding"
	"lattice-cms.io/lattice/ent/propertyset"
	"lattice-cms.io/lattice/internal/audit"
	"lattice-cms.io/lattice/internal/domain"
	"lattice-cms.io/lattice/internal/lexicon"
	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
	"lattice-cms.io/lattice/internal/pkg/logger"
	"lattice-cms.io/lattice/internal/processor"
	"lattice-cms.io/lattice/internal/testutil"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

type allowAllPolicy struct{}

func (allowAllPolicy) Can(context.Context, string) bool { return true }

type denyAllPolicy struct{}

func (denyAllPolicy) Can(context.Context, string) bool { return false }

func newTestRuntime(t *testing.T, client *ent.Client, policy processor.Policy) *processor.Runtime {
	t.Helper()
	lex, err := lexicon.New()
	require.NoError(t, err)
	return &processor.Runtime{
		Lexicon: lex,
		Events:  domain.NewDispatcher(nil),
		Audit:   audit.NewLogger(client),
		Policy:  policy,
	}
}

func objectMap(t *testing.T, resp *processor.Response) map[string]interface{} {
	t.Helper()
	view, ok := resp.Object.(propertySetView)
	require.True(t, ok, "unexpected object type %T", resp.Object)
	return map[string]interface{}{
		"id":       view.ID,
		"name":     view.Name,
		"category": view.Category,
	}
}

func TestPropertySetCRUDLifecycle(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "property_set_crud")
	rt := newTestRuntime(t, client, allowAllPolicy{})
	svc := NewPropertySetService(client, rt)
	ctx := context.Background()

	// Create
	resp := svc.Create(ctx, "tester", processor.Properties{
		"name":        "SEO Fields",
		"description": "Meta tags",
		"properties":  map[string]interface{}{"meta_title": ""},
	})
	require.True(t, resp.Success, "create failed: %s", resp.Message)
	created := objectMap(t, resp)
	id := created["id"].(string)
	require.NotEmpty(t, id)

	// Get
	resp = svc.Get(ctx, processor.Properties{"id": id})
	require.True(t, resp.Success)
	require.Equal(t, "SEO Fields", objectMap(t, resp)["name"])

	// Update
	resp = svc.Update(ctx, "tester", processor.Properties{
		"id":          id,
		"name":        "SEO Fields v2",
		"description": "Meta tags",
	})
	require.True(t, resp.Success, "update failed: %s", resp.Message)
	require.Equal(t, "SEO Fields v2", objectMap(t, resp)["name"])

	// Remove
	resp = svc.Remove(ctx, "tester", processor.Properties{"id": id})
	require.True(t, resp.Success, "remove failed: %s", resp.Message)

	exists, err := client.PropertySet.Query().Where(propertyset.IDEQ(id)).Exist(ctx)
	require.NoError(t, err)
	require.False(t, exists)

	// The audit trail recorded each mutation.
	count, err := client.AuditLog.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestPropertySetCreateValidation(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "property_set_validation")
	rt := newTestRuntime(t, client, allowAllPolicy{})
	svc := NewPropertySetService(client, rt)
	ctx := context.Background()

	t.Run("name required", func(t *testing.T) {
		resp := svc.Create(ctx, "tester", processor.Properties{"name": "   "})
		require.False(t, resp.Success)
		_, ok := resp.FieldError("name")
		require.True(t, ok)
	})

	t.Run("name taken", func(t *testing.T) {
		resp := svc.Create(ctx, "tester", processor.Properties{"name": "Banner"})
		require.True(t, resp.Success)

		resp = svc.Create(ctx, "tester", processor.Properties{"name": "Banner"})
		require.False(t, resp.Success)
		fe, ok := resp.FieldError("name")
		require.True(t, ok)
		require.Contains(t, fe.Message, "Banner")
	})

	t.Run("unknown category", func(t *testing.T) {
		resp := svc.Create(ctx, "tester", processor.Properties{
			"name":     "Categorized",
			"category": "cat-missing",
		})
		require.False(t, resp.Success)
		_, ok := resp.FieldError("category")
		require.True(t, ok)
	})
}

func TestPropertySetPermissionGate(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "property_set_permission")
	rt := newTestRuntime(t, client, denyAllPolicy{})
	svc := NewPropertySetService(client, rt)

	resp := svc.Create(context.Background(), "tester", processor.Properties{"name": "Blocked"})
	require.False(t, resp.Success)
	require.Equal(t, rt.Lexicon.Get("permission_denied"), resp.Message)

	count, err := client.PropertySet.Query().Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestPropertySetRemoveDeletesBindings(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "property_set_bindings")
	rt := newTestRuntime(t, client, allowAllPolicy{})
	svc := NewPropertySetService(client, rt)
	ctx := context.Background()

	resp := svc.Create(ctx, "tester", processor.Properties{"name": "Attached"})
	require.True(t, resp.Success)
	id := objectMap(t, resp)["id"].(string)

	_, err := client.ElementBinding.Create().
		SetID("eb-1").
		SetElementType("snippet").
		SetElementID("snip-1").
		SetPropertySetID(id).
		Save(ctx)
	require.NoError(t, err)

	resp = svc.Remove(ctx, "tester", processor.Properties{"id": id})
	require.True(t, resp.Success, "remove failed: %s", resp.Message)

	orphans, err := client.ElementBinding.Query().
		Where(elementbinding.IDEQ("eb-1")).
		Count(ctx)
	require.NoError(t, err)
	require.Zero(t, orphans)
}

func TestPropertySetDuplicate(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "property_set_duplicate")
	rt := newTestRuntime(t, client, allowAllPolicy{})
	svc := NewPropertySetService(client, rt)
	ctx := context.Background()

	resp := svc.Create(ctx, "tester", processor.Properties{
		"name":       "Gallery",
		"properties": map[string]interface{}{"columns": "3"},
	})
	require.True(t, resp.Success)
	sourceID := objectMap(t, resp)["id"].(string)

	t.Run("derived name", func(t *testing.T) {
		resp := svc.Duplicate(ctx, "tester", processor.Properties{"id": sourceID})
		require.True(t, resp.Success, "duplicate failed: %s", resp.Message)
		view := resp.Object.(propertySetView)
		require.Equal(t, "Duplicate of Gallery", view.Name)
		require.NotEqual(t, sourceID, view.ID)
		require.Equal(t, map[string]interface{}{"columns": "3"}, view.Properties)
	})

	t.Run("name collision", func(t *testing.T) {
		resp := svc.Duplicate(ctx, "tester", processor.Properties{"id": sourceID})
		require.False(t, resp.Success)
		_, ok := resp.FieldError("name")
		require.True(t, ok)
	})

	t.Run("explicit name", func(t *testing.T) {
		resp := svc.Duplicate(ctx, "tester", processor.Properties{
			"id":   sourceID,
			"name": "Gallery Two",
		})
		require.True(t, resp.Success, "duplicate failed: %s", resp.Message)
		require.Equal(t, "Gallery Two", resp.Object.(propertySetView).Name)
	})
}

func TestPropertySetListPagination(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "property_set_list")
	rt := newTestRuntime(t, client, allowAllPolicy{})
	svc := NewPropertySetService(client, rt)
	ctx := context.Background()

	for _, name := range []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"} {
		resp := svc.Create(ctx, "tester", processor.Properties{"name": name})
		require.True(t, resp.Success, "create %s failed: %s", name, resp.Message)
	}

	resp := svc.List(ctx, processor.Properties{"start": "1", "limit": "2"})
	require.True(t, resp.Success, "list failed: %s", resp.Message)

	result := resp.Object.(processor.ListResult)
	require.Equal(t, 5, result.Total)
	require.Len(t, result.Results, 2)

	// Default sort is name ascending: Alpha, [Beta, Delta], ...
	first := result.Results[0].(propertySetView)
	second := result.Results[1].(propertySetView)
	require.Equal(t, "Beta", first.Name)
	require.Equal(t, "Delta", second.Name)
}

// sortOrder must remain assignable to the per-entity order option types the
// generated query builders accept.
var (
	_ propertyset.OrderOption = sortOrder(processor.QuerySpec{}, map[string]string{"name": propertyset.FieldName})
	_ category.OrderOption    = sortOrder(processor.QuerySpec{}, map[string]string{"name": category.FieldName})
)

func TestPropertySetListSortDescending(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "property_set_sort")
	rt := newTestRuntime(t, client, allowAllPolicy{})
	svc := NewPropertySetService(client, rt)
	ctx := context.Background()

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		resp := svc.Create(ctx, "tester", processor.Properties{"name": name})
		require.True(t, resp.Success, "create %s failed: %s", name, resp.Message)
	}

	resp := svc.List(ctx, processor.Properties{"sort": "name", "dir": "DESC"})
	require.True(t, resp.Success, "list failed: %s", resp.Message)

	result := resp.Object.(processor.ListResult)
	require.Equal(t, 3, result.Total)
	require.Equal(t, "Gamma", result.Results[0].(propertySetView).Name)
	require.Equal(t, "Alpha", result.Results[2].(propertySetView).Name)

	// Unknown sort fields fall back to name ascending.
	resp = svc.List(ctx, processor.Properties{"sort": "bogus"})
	require.True(t, resp.Success)
	result = resp.Object.(processor.ListResult)
	require.Equal(t, "Alpha", result.Results[0].(propertySetView).Name)
}

func TestPropertySetSaveErrorWrapsStorageFailure(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "property_set_save_err")
	rt := newTestRuntime(t, client, allowAllPolicy{})
	svc := NewPropertySetService(client, rt)

	err := svc.saveError(errors.New("connection reset"), "SEO Fields")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodePropertySetSaveFail, appErr.Code)
	require.Equal(t, "An error occurred while saving the property set.", appErr.Message)
	require.EqualError(t, appErr.Err, "connection reset")
}
