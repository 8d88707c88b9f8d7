package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/contenttype"
	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
	"lattice-cms.io/lattice/internal/pkg/logger"
	"lattice-cms.io/lattice/internal/processor"
	"lattice-cms.io/lattice/internal/service"
)

// contentTypeSortFields maps request sort keys onto storage columns.
var contentTypeSortFields = map[string]string{
	"name":       contenttype.FieldName,
	"mime_type":  contenttype.FieldMimeType,
	"created_at": contenttype.FieldCreatedAt,
}

// ListContentTypes handles GET /api/v1/content-types.
//
// Listing is written directly against the query builder rather than the
// generic list base: the endpoint predates the processor framework and its
// callers depend on its exact paging behavior.
func (s *Server) ListContentTypes(c *gin.Context) {
	ctx := c.Request.Context()

	if !hasPermission(c, service.PermContentTypeList) {
		c.JSON(http.StatusForbidden, gin.H{
			"code":    apperrors.CodePermissionDenied,
			"message": "insufficient permissions",
		})
		return
	}

	start := intQuery(c, "start", 0)
	if start < 0 {
		start = 0
	}
	limit := intQuery(c, "limit", processor.DefaultPageLimit)

	column, ok := contentTypeSortFields[c.DefaultQuery("sort", "name")]
	if !ok {
		column = contenttype.FieldName
	}
	order := ent.Asc(column)
	if strings.EqualFold(c.DefaultQuery("dir", processor.SortAsc), processor.SortDesc) {
		order = ent.Desc(column)
	}

	query := s.client.ContentType.Query()

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("Failed to count content types", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": apperrors.CodeInternalError})
		return
	}

	query = query.Order(order).Offset(start)
	if limit > 0 {
		query = query.Limit(limit)
	}
	items, err := query.All(ctx)
	if err != nil {
		logger.Error("Failed to list content types", zap.Error(err), zap.Int("start", start))
		c.JSON(http.StatusInternalServerError, gin.H{"code": apperrors.CodeInternalError})
		return
	}

	results := make([]service.ContentTypeView, 0, len(items))
	for _, item := range items {
		results = append(results, service.ProjectContentType(item))
	}

	c.JSON(http.StatusOK, gin.H{
		"total":   total,
		"results": results,
	})
}

// CreateContentType handles POST /api/v1/content-types.
func (s *Server) CreateContentType(c *gin.Context) {
	respond(c, s.contentTypes.Create(c.Request.Context(), actorFromCtx(c), requestProps(c)))
}

// RemoveContentType handles DELETE /api/v1/content-types/:id.
func (s *Server) RemoveContentType(c *gin.Context) {
	respond(c, s.contentTypes.Remove(c.Request.Context(), actorFromCtx(c), requestProps(c)))
}

func intQuery(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
