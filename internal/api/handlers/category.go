package handlers

import (
	"github.com/gin-gonic/gin"
)

// ListCategories handles GET /api/v1/categories.
func (s *Server) ListCategories(c *gin.Context) {
	respondList(c, s.categories.List(c.Request.Context(), requestProps(c)))
}

// CreateCategory handles POST /api/v1/categories.
func (s *Server) CreateCategory(c *gin.Context) {
	respond(c, s.categories.Create(c.Request.Context(), actorFromCtx(c), requestProps(c)))
}

// RemoveCategory handles DELETE /api/v1/categories/:id.
func (s *Server) RemoveCategory(c *gin.Context) {
	respond(c, s.categories.Remove(c.Request.Context(), actorFromCtx(c), requestProps(c)))
}
