package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(permission string, userPerms []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("permissions", userPerms)
		c.Next()
	})
	router.Use(RequirePermission(permission))
	router.GET("/guarded", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestRequirePermission(t *testing.T) {
	cases := []struct {
		name       string
		required   string
		userPerms  []string
		wantStatus int
	}{
		{"exact match", "property_set:save", []string{"property_set:save"}, http.StatusNoContent},
		{"admin implies all", "property_set:save", []string{AdminPermission}, http.StatusNoContent},
		{"missing permission", "property_set:save", []string{"property_set:view"}, http.StatusForbidden},
		{"no permissions", "property_set:save", nil, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newGuardedRouter(tc.required, tc.userPerms)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
			require.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestContextPolicyCan(t *testing.T) {
	policy := ContextPolicy{}

	ctx := SetUserContext(context.Background(), "u-1", "alice", []string{"content_type:list"})
	require.True(t, policy.Can(ctx, "content_type:list"))
	require.False(t, policy.Can(ctx, "content_type:save"))

	adminCtx := SetUserContext(context.Background(), "u-2", "root", []string{AdminPermission})
	require.True(t, policy.Can(adminCtx, "anything:at_all"))

	require.False(t, policy.Can(context.Background(), "content_type:list"))
}
