package app

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lattice-cms.io/lattice/internal/api/handlers"
	"lattice-cms.io/lattice/internal/api/middleware"
	"lattice-cms.io/lattice/internal/config"
)

// Public routes that do NOT require JWT authentication.
var publicPrefixes = []string{
	"/api/v1/auth/login",
	"/healthz",
	"/readyz",
}

// adminPrefixes are routes that additionally require platform:admin.
var adminPrefixes = []string{
	"/api/v1/audit-logs",
}

func newRouter(cfg *config.Config, server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())

	if len(cfg.Server.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.Server.CORSOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", middleware.RequestIDHeader)
		router.Use(cors.New(corsCfg))
	}

	router.Use(jwtSkipPublic([]byte(cfg.Auth.SigningSecret)))
	router.Use(rbacAdminRoutes())
	router.Use(middleware.MustOpenAPIValidator())

	router.GET("/healthz", server.Healthz)
	router.GET("/readyz", server.Readyz)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", server.Login)

		v1.GET("/property-sets", server.ListPropertySets)
		v1.POST("/property-sets", server.CreatePropertySet)
		v1.GET("/property-sets/:id", server.GetPropertySet)
		v1.PUT("/property-sets/:id", server.UpdatePropertySet)
		v1.DELETE("/property-sets/:id", server.RemovePropertySet)
		v1.POST("/property-sets/:id/duplicate", server.DuplicatePropertySet)

		v1.GET("/categories", server.ListCategories)
		v1.POST("/categories", server.CreateCategory)
		v1.DELETE("/categories/:id", server.RemoveCategory)

		v1.GET("/content-types", server.ListContentTypes)
		v1.POST("/content-types", server.CreateContentType)
		v1.DELETE("/content-types/:id", server.RemoveContentType)

		v1.GET("/audit-logs", server.ListAuditLogs)
	}

	return router
}

// jwtSkipPublic returns middleware that applies JWT auth only on non-public
// routes.
func jwtSkipPublic(signingKey []byte) gin.HandlerFunc {
	jwtMw := middleware.JWTAuth(signingKey)
	return func(c *gin.Context) {
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}
		jwtMw(c)
	}
}

// rbacAdminRoutes returns middleware enforcing platform:admin on admin
// endpoints.
func rbacAdminRoutes() gin.HandlerFunc {
	adminMw := middleware.RequirePermission(middleware.AdminPermission)
	return func(c *gin.Context) {
		for _, prefix := range adminPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				adminMw(c)
				return
			}
		}
		c.Next()
	}
}
