package handlers

import (
	"github.com/gin-gonic/gin"
)

// GetPropertySet handles GET /api/v1/property-sets/:id.
func (s *Server) GetPropertySet(c *gin.Context) {
	respond(c, s.propertySets.Get(c.Request.Context(), requestProps(c)))
}

// ListPropertySets handles GET /api/v1/property-sets.
func (s *Server) ListPropertySets(c *gin.Context) {
	respondList(c, s.propertySets.List(c.Request.Context(), requestProps(c)))
}

// CreatePropertySet handles POST /api/v1/property-sets.
func (s *Server) CreatePropertySet(c *gin.Context) {
	respond(c, s.propertySets.Create(c.Request.Context(), actorFromCtx(c), requestProps(c)))
}

// UpdatePropertySet handles PUT /api/v1/property-sets/:id.
func (s *Server) UpdatePropertySet(c *gin.Context) {
	respond(c, s.propertySets.Update(c.Request.Context(), actorFromCtx(c), requestProps(c)))
}

// RemovePropertySet handles DELETE /api/v1/property-sets/:id.
func (s *Server) RemovePropertySet(c *gin.Context) {
	respond(c, s.propertySets.Remove(c.Request.Context(), actorFromCtx(c), requestProps(c)))
}

// DuplicatePropertySet handles POST /api/v1/property-sets/:id/duplicate.
func (s *Server) DuplicatePropertySet(c *gin.Context) {
	respond(c, s.propertySets.Duplicate(c.Request.Context(), actorFromCtx(c), requestProps(c)))
}
