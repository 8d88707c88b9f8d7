package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/internal/api/middleware"
	"lattice-cms.io/lattice/internal/audit"
	"lattice-cms.io/lattice/internal/domain"
	"lattice-cms.io/lattice/internal/lexicon"
	"lattice-cms.io/lattice/internal/pkg/logger"
	"lattice-cms.io/lattice/internal/processor"
	"lattice-cms.io/lattice/internal/service"
	"lattice-cms.io/lattice/internal/testutil"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

type listEnvelope struct {
	Total   int                       `json:"total"`
	Results []service.ContentTypeView `json:"results"`
}

func newContentTypeRouter(t *testing.T, client *ent.Client, permissions []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	lex, err := lexicon.New()
	require.NoError(t, err)
	rt := &processor.Runtime{
		Lexicon: lex,
		Events:  domain.NewDispatcher(nil),
		Audit:   audit.NewLogger(client),
		Policy:  middleware.ContextPolicy{},
	}

	server := NewServer(ServerDeps{
		Client:       client,
		ContentTypes: service.NewContentTypeService(client, rt),
	})

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(
			middleware.SetUserContext(c.Request.Context(), "u-1", "tester", permissions),
		)
		c.Next()
	})
	router.GET("/api/v1/content-types", server.ListContentTypes)
	return router
}

func seedContentTypes(t *testing.T, client *ent.Client, names ...string) {
	t.Helper()
	for i, name := range names {
		_, err := client.ContentType.Create().
			SetID(fmt.Sprintf("ct-%03d", i)).
			SetName(name).
			SetMimeType("text/html").
			Save(context.Background())
		require.NoError(t, err)
	}
}

func getList(t *testing.T, router *gin.Engine, query string) (int, listEnvelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/content-types"+query, nil)
	router.ServeHTTP(w, req)

	var envelope listEnvelope
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	}
	return w.Code, envelope
}

func TestListContentTypesDefaults(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "ct_list_defaults")
	seedContentTypes(t, client, "HTML", "CSS", "JSON", "XML")

	router := newContentTypeRouter(t, client, []string{service.PermContentTypeList})

	code, envelope := getList(t, router, "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 4, envelope.Total)
	require.Len(t, envelope.Results, 4)
	// Default sort: name ascending.
	require.Equal(t, "CSS", envelope.Results[0].Name)
	require.Equal(t, "XML", envelope.Results[3].Name)
}

func TestListContentTypesPaging(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "ct_list_paging")
	seedContentTypes(t, client, "A", "B", "C", "D", "E")

	router := newContentTypeRouter(t, client, []string{service.PermContentTypeList})

	code, envelope := getList(t, router, "?start=1&limit=2")
	require.Equal(t, http.StatusOK, code)
	// Total reflects all matches, not the page size.
	require.Equal(t, 5, envelope.Total)
	require.Len(t, envelope.Results, 2)
	require.Equal(t, "B", envelope.Results[0].Name)
	require.Equal(t, "C", envelope.Results[1].Name)
}

func TestListContentTypesSortDirection(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "ct_list_sort")
	seedContentTypes(t, client, "A", "B", "C")

	router := newContentTypeRouter(t, client, []string{service.PermContentTypeList})

	code, envelope := getList(t, router, "?sort=name&dir=DESC")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "C", envelope.Results[0].Name)

	// Unknown sort fields fall back to name.
	code, envelope = getList(t, router, "?sort=nonsense")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "A", envelope.Results[0].Name)
}

func TestListContentTypesUnboundedLimit(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "ct_list_unbounded")
	names := make([]string, 30)
	for i := range names {
		names[i] = fmt.Sprintf("Type %02d", i)
	}
	seedContentTypes(t, client, names...)

	router := newContentTypeRouter(t, client, []string{service.PermContentTypeList})

	code, envelope := getList(t, router, "?limit=0")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 30, envelope.Total)
	require.Len(t, envelope.Results, 30)
}

func TestListContentTypesRequiresPermission(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "ct_list_denied")
	seedContentTypes(t, client, "HTML")

	router := newContentTypeRouter(t, client, []string{"property_set:view"})

	code, _ := getList(t, router, "")
	require.Equal(t, http.StatusForbidden, code)
}
