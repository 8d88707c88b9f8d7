package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"lattice-cms.io/lattice/ent/contenttype"
	"lattice-cms.io/lattice/internal/processor"
	"lattice-cms.io/lattice/internal/testutil"
)

func TestContentTypeCreate(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "content_type_create")
	rt := newTestRuntime(t, client, allowAllPolicy{})
	svc := NewContentTypeService(client, rt)
	ctx := context.Background()

	resp := svc.Create(ctx, "tester", processor.Properties{
		"name":            "Markdown",
		"mime_type":       "text/markdown",
		"file_extensions": ".md",
		"headers":         []interface{}{"X-Content-Type-Options: nosniff"},
	})
	require.True(t, resp.Success, "create failed: %s", resp.Message)

	view := resp.Object.(ContentTypeView)
	require.Equal(t, "text/markdown", view.MimeType)
	require.Equal(t, ".md", view.FileExtensions)
	require.False(t, view.Binary)

	t.Run("mime type defaults to text/html", func(t *testing.T) {
		resp := svc.Create(ctx, "tester", processor.Properties{"name": "Page"})
		require.True(t, resp.Success, "create failed: %s", resp.Message)
		require.Equal(t, "text/html", resp.Object.(ContentTypeView).MimeType)
	})

	t.Run("extension must start with a dot", func(t *testing.T) {
		resp := svc.Create(ctx, "tester", processor.Properties{
			"name":            "Broken",
			"file_extensions": "txt",
		})
		require.False(t, resp.Success)
		_, ok := resp.FieldError("file_extensions")
		require.True(t, ok)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		resp := svc.Create(ctx, "tester", processor.Properties{"name": "Markdown"})
		require.False(t, resp.Success)
		_, ok := resp.FieldError("name")
		require.True(t, ok)
	})
}

func TestContentTypeRemove(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "content_type_remove")
	rt := newTestRuntime(t, client, allowAllPolicy{})
	svc := NewContentTypeService(client, rt)
	ctx := context.Background()

	resp := svc.Create(ctx, "tester", processor.Properties{"name": "Doomed"})
	require.True(t, resp.Success)
	id := resp.Object.(ContentTypeView).ID

	resp = svc.Remove(ctx, "tester", processor.Properties{"id": id})
	require.True(t, resp.Success, "remove failed: %s", resp.Message)

	exists, err := client.ContentType.Query().
		Where(contenttype.IDEQ(id)).
		Exist(ctx)
	require.NoError(t, err)
	require.False(t, exists)

	t.Run("missing id", func(t *testing.T) {
		resp := svc.Remove(ctx, "tester", processor.Properties{})
		require.False(t, resp.Success)
		require.Equal(t, rt.Lexicon.Get("missing_primary_key"), resp.Message)
	})

	t.Run("unknown id", func(t *testing.T) {
		resp := svc.Remove(ctx, "tester", processor.Properties{"id": "ct-missing"})
		require.False(t, resp.Success)
		require.Equal(t, rt.Lexicon.Get("content_type_not_found"), resp.Message)
	})
}
