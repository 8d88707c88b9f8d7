package middleware

import (
	"context"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
)

// AdminPermission is the explicit super-admin permission; it implies every
// other permission string.
const AdminPermission = "platform:admin"

// RequirePermission returns middleware that checks whether the authenticated
// user holds a specific permission.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		perms, exists := c.Get("permissions")
		if !exists {
			abortForbidden(c, "no permissions in context")
			return
		}
		permList, ok := perms.([]string)
		if !ok {
			abortForbidden(c, "invalid permissions type")
			return
		}

		if slices.Contains(permList, AdminPermission) || slices.Contains(permList, permission) {
			c.Next()
			return
		}

		abortForbidden(c, "insufficient permissions")
	}
}

// ContextPolicy evaluates permissions from the request context. It backs the
// processor permission gates and the per-row list policy filter.
type ContextPolicy struct{}

// Can reports whether the context principal holds the permission.
func (ContextPolicy) Can(ctx context.Context, permission string) bool {
	perms := GetPermissions(ctx)
	return slices.Contains(perms, AdminPermission) || slices.Contains(perms, permission)
}

func abortForbidden(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"code":    apperrors.CodePermissionDenied,
		"message": msg,
	})
}
