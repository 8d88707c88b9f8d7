package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
)

func testJWTConfig() JWTConfig {
	return JWTConfig{
		SigningKey: []byte("test-signing-key-1234567890123456"),
		Issuer:     "lattice",
		ExpiresIn:  time.Hour,
	}
}

func newAuthedRouter(t *testing.T, signingKey []byte) (*gin.Engine, *JWTClaims) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	captured := &JWTClaims{}
	router := gin.New()
	router.Use(JWTAuth(signingKey))
	router.GET("/protected", func(c *gin.Context) {
		ctx := c.Request.Context()
		captured.UserID = GetUserID(ctx)
		captured.Username = GetUsername(ctx)
		captured.Permissions = GetPermissions(ctx)
		c.Status(http.StatusNoContent)
	})
	return router, captured
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	cfg := testJWTConfig()
	token, expiresAt, err := GenerateToken(cfg, "u-1", "alice", []string{"property_set:save"})
	require.NoError(t, err)
	require.True(t, expiresAt.After(time.Now()))

	router, captured := newAuthedRouter(t, cfg.SigningKey)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "u-1", captured.UserID)
	assert.Equal(t, "alice", captured.Username)
	assert.Equal(t, []string{"property_set:save"}, captured.Permissions)
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	router, _ := newAuthedRouter(t, testJWTConfig().SigningKey)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsWrongKey(t *testing.T) {
	cfg := testJWTConfig()
	token, _, err := GenerateToken(cfg, "u-1", "alice", nil)
	require.NoError(t, err)

	router, _ := newAuthedRouter(t, []byte("a-different-signing-key-654321000"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.ExpiresIn = -time.Minute

	token, _, err := GenerateToken(cfg, "u-1", "alice", nil)
	require.NoError(t, err)

	router, _ := newAuthedRouter(t, cfg.SigningKey)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token expired")
	assert.Contains(t, w.Body.String(), apperrors.CodeTokenExpired)
}

func TestJWTAuthRejectsMalformedHeader(t *testing.T) {
	router, _ := newAuthedRouter(t, testJWTConfig().SigningKey)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
