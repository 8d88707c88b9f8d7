// Package handlers implements the HTTP endpoints of the Lattice manager API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/internal/api/middleware"
	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
	"lattice-cms.io/lattice/internal/processor"
	"lattice-cms.io/lattice/internal/service"
)

// Server carries the handler dependencies.
type Server struct {
	client       *ent.Client
	propertySets *service.PropertySetService
	categories   *service.CategoryService
	contentTypes *service.ContentTypeService
	jwtConfig    middleware.JWTConfig
	readiness    ReadinessChecker
}

// ReadinessChecker reports whether the service dependencies are reachable.
type ReadinessChecker interface {
	Ready(c *gin.Context) error
}

// ServerDeps bundles the dependencies for NewServer.
type ServerDeps struct {
	Client       *ent.Client
	PropertySets *service.PropertySetService
	Categories   *service.CategoryService
	ContentTypes *service.ContentTypeService
	JWTConfig    middleware.JWTConfig
	Readiness    ReadinessChecker
}

// NewServer creates the handler set.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:       deps.Client,
		propertySets: deps.PropertySets,
		categories:   deps.Categories,
		contentTypes: deps.ContentTypes,
		jwtConfig:    deps.JWTConfig,
		readiness:    deps.Readiness,
	}
}

// actorFromCtx resolves the audit actor for the current request.
func actorFromCtx(c *gin.Context) string {
	ctx := c.Request.Context()
	if username := middleware.GetUsername(ctx); username != "" {
		return username
	}
	if userID := middleware.GetUserID(ctx); userID != "" {
		return userID
	}
	return "anonymous"
}

// hasPermission reports whether the request principal holds the permission.
func hasPermission(c *gin.Context, permission string) bool {
	return middleware.ContextPolicy{}.Can(c.Request.Context(), permission)
}

// requestProps merges the JSON body, the query string and the path id into
// one property map. Path and body win over query so callers cannot smuggle
// a different id through the query string.
func requestProps(c *gin.Context) processor.Properties {
	props := processor.Properties{}

	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			props[key] = values[0]
		}
	}

	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		body := map[string]interface{}{}
		if err := c.ShouldBindJSON(&body); err == nil {
			for key, value := range body {
				props[key] = value
			}
		}
	}

	if id := c.Param("id"); id != "" {
		props["id"] = id
	}

	return props
}

// respond renders a processor response. Processor outcomes are carried in
// the envelope, not the status code; transport-level failures are handled
// by the middleware chain before the processor runs.
func respond(c *gin.Context, resp *processor.Response) {
	c.JSON(http.StatusOK, resp)
}

// respondList renders a list response. Successful lists return the bare
// {total, results} envelope; failures map onto HTTP status codes.
func respondList(c *gin.Context, resp *processor.Response) {
	if resp.Success {
		c.JSON(http.StatusOK, resp.Object)
		return
	}

	status := resp.Status
	code := apperrors.CodeInternalError
	if status == http.StatusForbidden {
		code = apperrors.CodePermissionDenied
	}
	if status == 0 {
		status = http.StatusBadRequest
		code = apperrors.CodeValidationFailed
	}
	c.JSON(status, gin.H{
		"code":    code,
		"message": resp.Message,
	})
}
